package shared

import "strconv"

// Suit represents the suit of a card. The zero value means "no suit enforced yet".
type Suit string

const (
	NoSuit   Suit = ""
	Hearts   Suit = "Hearts"
	Spades   Suit = "Spades"
	Diamonds Suit = "Diamonds"
	Clubs    Suit = "Clubs"
	Joker    Suit = "Joker"
)

// StandardSuits lists the four non-joker suits in deck construction order.
var StandardSuits = []Suit{Hearts, Spades, Diamonds, Clubs}

// Letter returns the single-letter form used in card text (H/S/D/C).
func (s Suit) Letter() string {
	switch s {
	case Hearts:
		return "H"
	case Spades:
		return "S"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	}
	return ""
}

// Priority orders suits for reveal tie-breaks: Spades > Hearts > Diamonds > Clubs > Joker.
func (s Suit) Priority() int {
	switch s {
	case Spades:
		return 4
	case Hearts:
		return 3
	case Diamonds:
		return 2
	case Clubs:
		return 1
	}
	return 0
}

// Rank is the rank of a card; Ace is 1 and King is 13. Jokers use RankJoker.
type Rank int

const (
	RankJoker Rank = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (r Rank) String() string {
	switch r {
	case RankJoker:
		return "Joker"
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return strconv.Itoa(int(r))
}

// JokerText is how a joker is rendered.
const JokerText = "Joker"

// Card represents a single physical card. ID is unique within a deck, so two
// cards with the same suit and rank are still different cards.
type Card struct {
	ID   int  `json:"id"`
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// IsJoker reports whether the card is one of the two jokers.
func (c Card) IsJoker() bool {
	return c.Suit == Joker
}

// Value is the numeric worth of the card: A=1, 2-10 face value, J/Q/K=10, Joker=0.
func (c Card) Value() int {
	if c.IsJoker() {
		return 0
	}
	if c.Rank >= Ten {
		return 10
	}
	return int(c.Rank)
}

func (c Card) String() string {
	if c.IsJoker() {
		return JokerText
	}
	return c.Suit.Letter() + c.Rank.String()
}
