package game

import "github.com/arcanaland/blackjack/internal/card"

const (
	// Blackjack is the best possible total; anything above busts
	Blackjack = 21
	// DealerStandsOn is the total at which the dealer stops drawing
	DealerStandsOn = 17
)

// CardValue returns the points c adds to a hand whose running total is total.
// An ace counts 11 when that does not take the total past 21, otherwise 1.
// Earlier aces are never re-scored.
func CardValue(c card.Card, total int) int {
	switch {
	case c.Rank >= card.Two && c.Rank <= card.Ten:
		return int(c.Rank) + 2
	case c.Rank == card.Jack, c.Rank == card.Queen, c.Rank == card.King:
		return 10
	case c.Rank == card.Ace:
		if total+11 <= Blackjack {
			return 11
		}
		return 1
	default:
		return 0
	}
}
