package shared

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a hand position does not exist.
var ErrIndexOutOfRange = errors.New("card index out of range")

// Hand is an ordered collection of held cards.
type Hand struct {
	cards []Card
}

// NewHand returns a hand holding the given cards in order.
func NewHand(cards ...Card) *Hand {
	h := &Hand{}
	h.cards = append(h.cards, cards...)
	return h
}

// Add appends a card to the hand.
func (h *Hand) Add(card Card) {
	h.cards = append(h.cards, card)
}

// Len returns the number of held cards.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the held cards.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// At returns the card at a 0-based position.
func (h *Hand) At(i int) (Card, error) {
	if i < 0 || i >= len(h.cards) {
		return Card{}, fmt.Errorf("position %d of %d: %w", i, len(h.cards), ErrIndexOutOfRange)
	}
	return h.cards[i], nil
}

// RemoveAt takes the card at a 0-based position out of the hand.
func (h *Hand) RemoveAt(i int) (Card, error) {
	card, err := h.At(i)
	if err != nil {
		return Card{}, err
	}
	h.cards = append(h.cards[:i], h.cards[i+1:]...)
	return card, nil
}

// Refill draws from the deck until the hand holds target cards or the deck runs out.
// It returns how many cards were drawn.
func (h *Hand) Refill(deck *Deck, target int) int {
	drawn := 0
	for h.Len() < target {
		card, ok := deck.Draw()
		if !ok {
			break
		}
		h.Add(card)
		drawn++
	}
	return drawn
}
