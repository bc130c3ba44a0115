package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCard_String(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{Card{Rank: Ace, Suit: Hearts}, "AH"},
		{Card{Rank: King, Suit: Spades}, "KS"},
		{Card{Rank: Two, Suit: Diamonds}, "2D"},
		{Card{Rank: Ten, Suit: Clubs}, "TC"},
		{Card{Rank: MaxRanks, Suit: Clubs}, "?C"},
		{Card{Rank: Nine, Suit: Suit(-1)}, "9?"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.card.String())
		})
	}
}

func TestTokensAreUnique(t *testing.T) {
	seen := make(map[string]Card)

	for s := Clubs; s < MaxSuits; s++ {
		for r := Two; r < MaxRanks; r++ {
			c := Card{Rank: r, Suit: s}
			tok := c.String()

			require.Len(t, tok, 2)
			assert.Contains(t, rankTokens, tok[:1])
			assert.Contains(t, suitTokens, tok[1:])

			prev, dup := seen[tok]
			assert.Falsef(t, dup, "%v and %v both render as %s", prev, c, tok)
			seen[tok] = c
		}
	}

	assert.Len(t, seen, 52)
}

func TestParse(t *testing.T) {
	c, err := Parse("AS")
	require.NoError(t, err)
	assert.Equal(t, Card{Rank: Ace, Suit: Spades}, c)

	c, err = Parse(" td ")
	require.NoError(t, err)
	assert.Equal(t, Card{Rank: Ten, Suit: Diamonds}, c)

	for _, bad := range []string{"", "A", "10H", "1S", "AX", "??"} {
		_, err := Parse(bad)
		assert.ErrorIsf(t, err, ErrInvalidToken, "token %q", bad)
	}
}

func TestParseRoundTripsEveryCard(t *testing.T) {
	for s := Clubs; s < MaxSuits; s++ {
		for r := Two; r < MaxRanks; r++ {
			c := Card{Rank: r, Suit: s}
			got, err := Parse(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, got)
		}
	}
}

func TestCard_Name(t *testing.T) {
	assert.Equal(t, "Ace of Spades", Card{Rank: Ace, Suit: Spades}.Name())
	assert.Equal(t, "Two of Clubs", Card{Rank: Two, Suit: Clubs}.Name())
	assert.Equal(t, "Unknown of Hearts", Card{Rank: Rank(20), Suit: Hearts}.Name())
}
