package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/game"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the round state machine as a Graphviz DOT graph",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), game.NewRound(deck.New(), nil).Graph())
	},
}

func init() {
	RootCmd.AddCommand(graphCmd)
}
