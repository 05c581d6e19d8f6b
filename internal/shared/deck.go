package shared

// DeckSize is 52 standard cards plus two jokers.
const DeckSize = 54

// Deck is the draw pile. Draws remove from the front and it is never refilled.
type Deck struct {
	Cards []Card
	src   Source
}

// NewDeck creates the 54-card deck and shuffles it with src.
func NewDeck(src Source) *Deck {
	ranks := []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

	cards := make([]Card, 0, DeckSize)
	id := 0
	for _, suit := range StandardSuits {
		for _, rank := range ranks {
			id++
			cards = append(cards, Card{ID: id, Suit: suit, Rank: rank})
		}
	}
	for i := 0; i < 2; i++ {
		id++
		cards = append(cards, Card{ID: id, Suit: Joker, Rank: RankJoker})
	}

	d := &Deck{Cards: cards, src: src}
	d.Shuffle()
	return d
}

// Shuffle permutes the remaining cards with a Fisher-Yates pass over the source.
func (d *Deck) Shuffle() {
	if d.src == nil {
		d.src = NewRandSource()
	}
	for i := len(d.Cards) - 1; i > 0; i-- {
		j := d.src.Intn(i + 1)
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw removes and returns the front card. ok is false when the deck is empty.
func (d *Deck) Draw() (card Card, ok bool) {
	if len(d.Cards) == 0 {
		return Card{}, false
	}
	card = d.Cards[0]
	d.Cards = d.Cards[1:]
	return card, true
}

// Count returns the number of cards left.
func (d *Deck) Count() int {
	return len(d.Cards)
}
