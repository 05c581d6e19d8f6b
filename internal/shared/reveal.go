package shared

// PlayedCard stores a card along with the seat (0 or 1) that played it.
type PlayedCard struct {
	Card Card `json:"card"`
	Seat int  `json:"seat"`
}

// CompareReveal orders two reveal cards: higher value first, then suit priority.
// It returns >0 when a outranks b, <0 when b outranks a and 0 on an exact tie.
func CompareReveal(a, b Card) int {
	if a.Value() != b.Value() {
		return a.Value() - b.Value()
	}
	return a.Suit.Priority() - b.Suit.Priority()
}

// DetermineFirst returns the seat whose reveal card goes first.
// Seat 0 goes first on equal-or-higher rank; tied reports an exact tie.
func DetermineFirst(reveals [2]PlayedCard) (seat int, tied bool) {
	cmp := CompareReveal(reveals[0].Card, reveals[1].Card)
	if cmp < 0 {
		return reveals[1].Seat, false
	}
	return reveals[0].Seat, cmp == 0
}
