package elo

// Points is the actual score of a match from one player's side.
type Points float64

const (
	Win  Points = 1
	Draw Points = 0.5
	Lose Points = 0
)

// Opposite returns the score of the other player in the same match.
func (p Points) Opposite() Points {
	return 1 - p
}

func (p Points) String() string {
	switch p {
	case Win:
		return "win"
	case Draw:
		return "draw"
	case Lose:
		return "lose"
	}
	return "unknown"
}
