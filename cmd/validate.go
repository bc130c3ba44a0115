package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the deck builder and shuffler",
	Long: `Validate builds the canonical deck and a number of shuffled decks and checks
that every deck holds exactly the 52 rank/suit pairs once each, that every
card renders to a unique two-character token, and that each shuffle is a
permutation of the canonical deck.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		rounds, _ := cmd.Flags().GetInt("rounds")
		if rounds < 0 {
			return fmt.Errorf("--rounds must not be negative")
		}

		var results validator.ValidationResults
		merge := func(r validator.ValidationResults) {
			results.Errors = append(results.Errors, r.Errors...)
			results.Warnings = append(results.Warnings, r.Warnings...)
		}

		merge(validator.NewValidator("canonical deck", deck.New()).Validate())
		for i := 1; i <= rounds; i++ {
			d := deck.New()
			d.Shuffle(rt.rng)
			merge(validator.NewValidator(fmt.Sprintf("shuffle %d", i), d).ValidateShuffled())
		}

		// Display validation results
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Canonical deck and %d shuffles are valid.\n", rounds)
		} else {
			fmt.Fprintf(out, "❌ Found %d validation errors:\n", len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)

	validateCmd.Flags().IntP("rounds", "n", 100, "Number of shuffled decks to check")
}
