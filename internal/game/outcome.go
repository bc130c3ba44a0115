package game

// Outcome of a round from the player's point of view
type Outcome int

const (
	Lose Outcome = iota
	Win
	Tie
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// Resolve compares the final totals. A busted player loses even when the
// dealer busts too.
func Resolve(player, dealer int) Outcome {
	switch {
	case player > Blackjack:
		return Lose
	case dealer > Blackjack:
		return Win
	case player > dealer:
		return Win
	case player < dealer:
		return Lose
	default:
		return Tie
	}
}
