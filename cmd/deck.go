package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/game"
)

// deckCmd prints the deck before and after shuffling without playing
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Print the canonical deck and a shuffled copy",
	Long: `Deck prints the 52 cards in canonical order (clubs, diamonds, hearts,
spades; two through ace) and then the same deck after one shuffle.
Use --seed to reproduce a shuffle.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		rep := game.NewReporter(cmd.OutOrStdout(), rt.color)

		d := deck.New()
		rep.Listing("Card in the deck", d)

		d.Shuffle(rt.rng)
		rep.Listing("Shuffled deck", d)

		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
}
