package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/game"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one round (the default command)",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	out := cmd.OutOrStdout()
	rep := game.NewReporter(out, rt.color)

	d := deck.New()
	if rt.cfg.ShowDeck {
		rep.Listing("Card in the deck", d)
	}

	d.Shuffle(rt.rng)
	if rt.cfg.ShowDeck {
		rep.Listing("Shuffled deck", d)
	}

	round := game.NewRound(d, rt.log)
	outcome, err := round.Play(commandContext(cmd), game.NewConsolePrompter(cmd.InOrStdin(), out), rep)
	if err != nil {
		return fmt.Errorf("round %s aborted: %w", round.ID, err)
	}

	rep.Outcome(outcome)
	return nil
}
