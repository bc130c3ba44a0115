package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/blackjack/internal/card"
)

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	RootCmd.SetIn(strings.NewReader(input))
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetIn(nil)
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
		resetFlags(RootCmd)
	})

	err := RootCmd.Execute()
	return out.String(), err
}

// resetFlags puts every flag back to its default so runs do not leak into
// each other through the package-level commands
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestPlayCommand(t *testing.T) {
	out, err := run(t, "s\n", "play", "--seed", "11", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, out, "\n\n\t\t***Card in the deck***\n\n2C 3C 4C")
	assert.Contains(t, out, "***Shuffled deck***")
	assert.Contains(t, out, "Initial Scores--->\tDealer: ")
	assert.NotContains(t, out, "\x1b[")

	finals := 0
	for _, banner := range []string{"***CONGRATULATIONS! YOU WON***", "***OOPS! YOU LOST***", "***PUSH! IT'S TIE***"} {
		finals += strings.Count(out, banner)
	}
	assert.Equal(t, 1, finals)
}

func TestPlayCommandIsReproducible(t *testing.T) {
	a, err := run(t, "", "play", "--seed", "5", "--color", "never")
	require.NoError(t, err)
	b, err := run(t, "", "play", "--seed", "5", "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDeckCommand(t *testing.T) {
	out, err := run(t, "", "deck", "--seed", "3", "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "***Card in the deck***"))
	assert.Equal(t, 1, strings.Count(out, "***Shuffled deck***"))
	assert.Len(t, strings.Fields(out), 2*52+6)
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "", "validate", "--rounds", "20", "--seed", "9", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "Canonical deck and 20 shuffles are valid.")
}

func TestShowCommand(t *testing.T) {
	out, err := run(t, "", "show", "as", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "Ace of Spades")
	assert.Contains(t, out, "♠")
	assert.Contains(t, out, "11 / 1")
}

func TestShowCommandRejectsBadToken(t *testing.T) {
	_, err := run(t, "", "show", "ZZ")
	assert.ErrorIs(t, err, card.ErrInvalidToken)
}

func TestBadColorFlag(t *testing.T) {
	_, err := run(t, "", "deck", "--color", "sometimes")
	assert.Error(t, err)
}

func TestGraphCommand(t *testing.T) {
	out, err := run(t, "", "graph")
	require.NoError(t, err)
	assert.Contains(t, out, "PlayerTurn")
	assert.Contains(t, out, "digraph")
}

func TestDisplayCardNarrowTerminal(t *testing.T) {
	var out bytes.Buffer
	c, err := card.Parse("7H")
	require.NoError(t, err)

	displayCard(&out, c, 20)
	lines := strings.Split(out.String(), "\n")
	assert.Contains(t, out.String(), "Seven of Hearts")
	for _, line := range lines {
		if strings.Contains(line, "┌") {
			assert.NotContains(t, line, "Card:")
		}
	}
}
