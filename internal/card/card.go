package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidToken is returned when a two-character card token cannot be parsed
var ErrInvalidToken = errors.New("invalid card token")

// Suit of a playing card, in canonical deck order
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades

	MaxSuits
)

// Rank of a playing card, from Two up to Ace
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace

	MaxRanks
)

const rankTokens = "23456789TJQKA"
const suitTokens = "CDHS"

var rankNames = []string{
	"two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
	"jack", "queen", "king", "ace",
}

var suitNames = []string{"clubs", "diamonds", "hearts", "spades"}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// Valid reports whether r is one of the thirteen ranks
func (r Rank) Valid() bool {
	return r >= Two && r < MaxRanks
}

// Token returns the single-character display token of the rank, or '?'
func (r Rank) Token() byte {
	if !r.Valid() {
		return '?'
	}
	return rankTokens[r]
}

// Name returns the lower-case English name of the rank
func (r Rank) Name() string {
	if !r.Valid() {
		return "unknown"
	}
	return rankNames[r]
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Clubs && s < MaxSuits
}

// Token returns the single-character display token of the suit, or '?'
func (s Suit) Token() byte {
	if !s.Valid() {
		return '?'
	}
	return suitTokens[s]
}

// Name returns the lower-case English name of the suit
func (s Suit) Name() string {
	if !s.Valid() {
		return "unknown"
	}
	return suitNames[s]
}

// String renders the card as rank token followed by suit token, e.g. "TH"
func (c Card) String() string {
	return string([]byte{c.Rank.Token(), c.Suit.Token()})
}

// Name returns the long form of the card, e.g. "Ace of Spades"
func (c Card) Name() string {
	return titleCase(c.Rank.Name()) + " of " + titleCase(c.Suit.Name())
}

// Parse reads a two-character token such as "AS" or "td" back into a Card
func Parse(token string) (Card, error) {
	t := strings.ToUpper(strings.TrimSpace(token))
	if len(t) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}

	r := strings.IndexByte(rankTokens, t[0])
	s := strings.IndexByte(suitTokens, t[1])
	if r < 0 || s < 0 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}

	return Card{Rank: Rank(r), Suit: Suit(s)}, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
