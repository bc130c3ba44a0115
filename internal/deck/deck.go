package deck

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/arcanaland/blackjack/internal/card"
)

// Size is the number of cards in a standard deck
const Size = int(card.MaxSuits) * int(card.MaxRanks)

// Deck is a fixed-size ordered sequence of 52 playing cards
type Deck [Size]card.Card

// New builds a deck in canonical order: suit-major, rank-minor
func New() *Deck {
	var d Deck

	i := 0
	for s := card.Clubs; s < card.MaxSuits; s++ {
		for r := card.Two; r < card.MaxRanks; r++ {
			d[i] = card.Card{Rank: r, Suit: s}
			i++
		}
	}

	return &d
}

// NewRand returns the PRNG used to shuffle decks.
// A zero seed derives one from the current time.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle permutes the deck in place
func (d *Deck) Shuffle(r *rand.Rand) {
	r.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Cards returns a copy of the deck as a slice
func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d))
	copy(cards, d[:])
	return cards
}

// String lists every card token followed by a space, newline-terminated
func (d *Deck) String() string {
	var b strings.Builder
	b.Grow(len(d)*3 + 1)
	for _, c := range d {
		b.WriteString(c.String())
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
	return b.String()
}
