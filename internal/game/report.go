package game

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/arcanaland/blackjack/internal/deck"
)

// ScoreKind selects which score banner is printed
type ScoreKind int

const (
	ScoreInitial ScoreKind = iota
	ScorePlayer
	ScoreDealer
)

const blackjackBanner = "\n\n---HOORAY! BLACKJACK---\n"

// FormatScores renders a score banner
func FormatScores(kind ScoreKind, dealer, player int) string {
	switch kind {
	case ScoreInitial:
		return fmt.Sprintf("\n\nInitial Scores--->\tDealer: %d\tPlayer: %d\n\n", dealer, player)
	case ScorePlayer:
		return fmt.Sprintf("\nPlayer played--->\tDealer: %d\tPlayer: %d\n\n", dealer, player)
	default:
		return fmt.Sprintf("\nDealer played--->\tDealer: %d\tPlayer: %d\n\n", dealer, player)
	}
}

// OutcomeMessage is the text of the final banner
func OutcomeMessage(o Outcome) string {
	switch o {
	case Win:
		return "***CONGRATULATIONS! YOU WON***"
	case Lose:
		return "***OOPS! YOU LOST***"
	default:
		return "***PUSH! IT'S TIE***"
	}
}

// FormatListing renders a titled deck listing
func FormatListing(title string, d *deck.Deck) string {
	return fmt.Sprintf("\n\n\t\t***%s***\n\n%s", title, d.String())
}

// Reporter writes game banners to a stream
type Reporter struct {
	w     io.Writer
	good  *color.Color
	bad   *color.Color
	tie   *color.Color
	score *color.Color
}

// NewReporter returns a Reporter writing to w. With colored false no escape
// codes are ever written.
func NewReporter(w io.Writer, colored bool) *Reporter {
	r := &Reporter{
		w:     w,
		good:  color.New(color.FgGreen, color.Bold),
		bad:   color.New(color.FgRed, color.Bold),
		tie:   color.New(color.FgYellow, color.Bold),
		score: color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{r.good, r.bad, r.tie, r.score} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Listing prints the deck under a title
func (r *Reporter) Listing(title string, d *deck.Deck) {
	fmt.Fprint(r.w, FormatListing(title, d))
}

// Scores prints a score banner
func (r *Reporter) Scores(kind ScoreKind, dealer, player int) {
	r.score.Fprint(r.w, FormatScores(kind, dealer, player))
}

// Blackjack prints the blackjack banner
func (r *Reporter) Blackjack() {
	r.good.Fprint(r.w, blackjackBanner)
}

// Outcome prints the final banner
func (r *Reporter) Outcome(o Outcome) {
	c := r.tie
	switch o {
	case Win:
		c = r.good
	case Lose:
		c = r.bad
	}
	fmt.Fprint(r.w, "\n\n\t\t")
	c.Fprint(r.w, OutcomeMessage(o))
	fmt.Fprint(r.w, "\n")
}
