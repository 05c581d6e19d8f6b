package game

import "aceduel/internal/shared"

// IsValidFollow reports whether card may be played on the enforced suit.
// Jokers are wild and anything goes before a suit is set.
func IsValidFollow(card shared.Card, current shared.Suit) bool {
	if card.IsJoker() || current == shared.NoSuit {
		return true
	}
	return card.Suit == current
}

// ApplySuitRule charges own the suit-break penalty when card does not follow,
// then moves the enforced suit to card's suit unless a joker followed validly.
// It returns true when the penalty was applied.
func ApplySuitRule(card shared.Card, own *int, st *State) (penalized bool) {
	if !IsValidFollow(card, st.CurrentSuit) {
		*own -= AcePenalty
		st.CurrentSuit = card.Suit
		return true
	}
	if !card.IsJoker() {
		st.CurrentSuit = card.Suit
	}
	return false
}
