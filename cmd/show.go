package cmd

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/game"
)

var showCmd = &cobra.Command{
	Use:   "show [card]",
	Short: "Display a card and its blackjack value",
	Long: `Show draws a card and lists its name, rank, suit and the points it is
worth in blackjack. Cards are named by their two-character token: rank
(2-9, T, J, Q, K, A) followed by suit (C, D, H, S).

Examples:
  blackjack show AS
  blackjack show td`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.Parse(args[0])
		if err != nil {
			return err
		}

		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		out := cmd.OutOrStdout()
		displayCard(out, c, terminalWidth(out))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// getSuitSymbol returns the symbol printed in the middle of a card
func getSuitSymbol(s card.Suit) string {
	switch s {
	case card.Clubs:
		return "♣"
	case card.Diamonds:
		return "♦"
	case card.Hearts:
		return "♥"
	case card.Spades:
		return "♠"
	default:
		return "•"
	}
}

// cardArt draws a small card face
func cardArt(c card.Card) []string {
	rank := string(c.Rank.Token())
	suit := getSuitSymbol(c.Suit)

	return []string{
		"┌─────────┐",
		"│" + rank + "        │",
		"│         │",
		"│    " + suit + "    │",
		"│         │",
		"│        " + rank + "│",
		"└─────────┘",
	}
}

// valueText describes the points a card adds to a hand
func valueText(c card.Card) string {
	soft, hard := game.CardValue(c, 0), game.CardValue(c, game.Blackjack)
	if soft == hard {
		return fmt.Sprintf("%d", soft)
	}
	return fmt.Sprintf("%d / %d (soft / hard)", soft, hard)
}

// displayCard prints the card art with its details on the right, or below
// when the terminal is too narrow
func displayCard(w io.Writer, c card.Card, width int) {
	art := cardArt(c)
	artWidth := 0
	for _, line := range art {
		artWidth = max(artWidth, utf8.RuneCountInString(line))
	}

	paint := colorize.New(colorize.FgHiWhite)
	if c.Suit == card.Hearts || c.Suit == card.Diamonds {
		paint = colorize.New(colorize.FgRed)
	}

	info := []string{
		colorize.CyanString("Card:  ") + colorize.HiWhiteString("%s", c.Name()),
		colorize.CyanString("Token: ") + colorize.HiWhiteString("%s", c.String()),
		colorize.CyanString("Rank:  ") + colorize.HiWhiteString("%s", c.Rank.Name()),
		colorize.CyanString("Suit:  ") + colorize.HiWhiteString("%s %s", c.Suit.Name(), getSuitSymbol(c.Suit)),
		colorize.CyanString("Value: ") + colorize.HiWhiteString("%s", valueText(c)),
	}

	spacing := 4
	fmt.Fprintln(w)

	// Stack vertically when the details would not fit beside the art
	if width < artWidth+spacing+30 {
		for _, line := range art {
			fmt.Fprintln(w, "  "+paint.Sprint(line))
		}
		fmt.Fprintln(w)
		for _, line := range info {
			fmt.Fprintln(w, "  "+line)
		}
		fmt.Fprintln(w)
		return
	}

	rows := max(len(art), len(info))
	for i := 0; i < rows; i++ {
		fmt.Fprint(w, "  ")
		if i < len(art) {
			fmt.Fprint(w, paint.Sprint(art[i]))
			fmt.Fprint(w, strings.Repeat(" ", artWidth-utf8.RuneCountInString(art[i])+spacing))
		} else {
			fmt.Fprint(w, strings.Repeat(" ", artWidth+spacing))
		}

		if i < len(info) {
			fmt.Fprint(w, info[i])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
}
