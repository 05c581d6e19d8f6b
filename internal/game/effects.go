package game

import (
	"fmt"

	"aceduel/internal/shared"
)

// EffectKind names the special effect a played card triggered.
type EffectKind string

const (
	EffectNone     EffectKind = ""
	EffectDamage   EffectKind = "damage_opponent"
	EffectBlock    EffectKind = "block_draw"
	EffectRestrict EffectKind = "restrict_numbers"
	EffectHeal     EffectKind = "heal_self"
)

// Effect describes what an ace did when it was played.
type Effect struct {
	Kind    EffectKind
	Message string
}

// ResolveEffect applies the ace effect of card for the player in seat.
// own and opp point at the life totals of the playing side and its opponent.
// Only aces of the four standard suits do anything; ok is false otherwise.
func ResolveEffect(card shared.Card, seat int, own, opp *int, st *State) (effect Effect, ok bool) {
	if card.IsJoker() || card.Rank != shared.Ace {
		return Effect{}, false
	}

	switch card.Suit {
	case shared.Hearts:
		*opp -= AcePenalty
		return Effect{Kind: EffectDamage, Message: fmt.Sprintf("Ace of Hearts: opponent loses %d life", AcePenalty)}, true
	case shared.Diamonds:
		st.BlockDraw = true
		st.BlockSeat = opponent(seat)
		return Effect{Kind: EffectBlock, Message: "Ace of Diamonds: opponent skips their next draw"}, true
	case shared.Spades:
		st.RestrictNumbers = true
		return Effect{Kind: EffectRestrict, Message: "Ace of Spades: opponent restricted to low cards this round"}, true
	case shared.Clubs:
		*own += AcePenalty
		return Effect{Kind: EffectHeal, Message: fmt.Sprintf("Ace of Clubs: gain %d life", AcePenalty)}, true
	}
	return Effect{}, false
}
