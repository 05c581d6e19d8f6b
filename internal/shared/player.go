package shared

import "github.com/google/uuid"

// StartingLife is the life total both players begin with.
const StartingLife = 15

// Player represents one side of the duel.
type Player struct {
	ID       string // Unique identifier for the player
	Name     string // Display name
	Life     int    // May drop below zero before the game-over check runs
	Hand     *Hand  // Cards currently held
	Computer bool   // Seat driven by the random chooser
}

// NewPlayer creates a player with full life and an empty hand.
func NewPlayer(name string, computer bool) *Player {
	return &Player{
		ID:       uuid.NewString(),
		Name:     name,
		Life:     StartingLife,
		Hand:     NewHand(),
		Computer: computer,
	}
}

// HasSuit reports whether the player holds a card of the given suit.
func (p *Player) HasSuit(suit Suit) bool {
	for _, card := range p.Hand.cards {
		if card.Suit == suit {
			return true
		}
	}
	return false
}

// CanFollow reports whether some card in hand would be a legal follow of suit.
// Any card follows when no suit is enforced; a joker follows anything.
func (p *Player) CanFollow(suit Suit) bool {
	if suit == NoSuit {
		return p.Hand.Len() > 0
	}
	return p.HasSuit(suit) || p.HasSuit(Joker)
}
