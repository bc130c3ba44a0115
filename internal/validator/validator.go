package validator

import (
	"fmt"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were recorded
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Label   string
	Deck    *deck.Deck
	Results ValidationResults
}

func NewValidator(label string, d *deck.Deck) *Validator {
	return &Validator{
		Label:   label,
		Deck:    d,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() ValidationResults {
	v.validateCards()
	v.validateCoverage()
	v.validateTokens()

	return v.Results
}

// ValidateShuffled runs Validate and additionally checks that the deck is a
// permutation of the canonical deck. A shuffle that left the canonical order
// intact is only a warning.
func (v *Validator) ValidateShuffled() ValidationResults {
	v.Validate()

	canonical := deck.New()
	if *v.Deck == *canonical {
		v.addWarning("deck is still in canonical order after shuffling")
	}

	counts := make(map[card.Card]int, deck.Size)
	for _, c := range v.Deck {
		counts[c]++
	}
	for _, c := range canonical {
		if counts[c] != 1 {
			v.addError("shuffle is not a permutation: %s appears %d times", c, counts[c])
		}
	}

	return v.Results
}

func (v *Validator) validateCards() {
	for i, c := range v.Deck {
		if !c.Rank.Valid() {
			v.addError("card %d has invalid rank %d", i, c.Rank)
		}
		if !c.Suit.Valid() {
			v.addError("card %d has invalid suit %d", i, c.Suit)
		}
	}
}

func (v *Validator) validateCoverage() {
	seen := make(map[card.Card]int, deck.Size)
	for i, c := range v.Deck {
		if prev, ok := seen[c]; ok {
			v.addError("duplicate card %s at positions %d and %d", c, prev, i)
			continue
		}
		seen[c] = i
	}

	for s := card.Clubs; s < card.MaxSuits; s++ {
		for r := card.Two; r < card.MaxRanks; r++ {
			c := card.Card{Rank: r, Suit: s}
			if _, ok := seen[c]; !ok {
				v.addError("missing card: %s", c.Name())
			}
		}
	}
}

func (v *Validator) validateTokens() {
	tokens := make(map[string]card.Card, deck.Size)
	for _, c := range v.Deck {
		tok := c.String()
		if len(tok) != 2 {
			v.addError("card %v renders as %q, want two characters", c, tok)
		}
		if prev, ok := tokens[tok]; ok && prev != c {
			v.addError("cards %v and %v both render as %s", prev, c, tok)
		}
		tokens[tok] = c
	}
}

func (v *Validator) addError(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, v.prefix()+fmt.Sprintf(format, args...))
}

func (v *Validator) addWarning(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, v.prefix()+fmt.Sprintf(format, args...))
}

func (v *Validator) prefix() string {
	if v.Label == "" {
		return ""
	}
	return v.Label + ": "
}
