package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command; without a subcommand it plays a round
var RootCmd = &cobra.Command{
	Use:   "blackjack",
	Short: "Play a round of blackjack against the dealer",
	Long: `Blackjack deals one round of simplified blackjack on the console.
A standard 52-card deck is built, shown, shuffled and shown again. You are
dealt two cards and the dealer one; choose to hit or stand until you stand
or reach 21, then the dealer draws until reaching 17.`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	RootCmd.PersistentFlags().Uint64("seed", 0, "Shuffle seed (0 derives one from the current time)")
	RootCmd.PersistentFlags().String("color", "", "Color mode: auto, always or never (overrides config)")
	RootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides config)")

	RootCmd.AddCommand(playCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
