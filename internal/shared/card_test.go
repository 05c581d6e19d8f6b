package shared

import "testing"

func TestCard_ValueAndString(t *testing.T) {
	tests := []struct {
		card  Card
		value int
		text  string
	}{
		{Card{Suit: Hearts, Rank: Ace}, 1, "HA"},
		{Card{Suit: Spades, Rank: Two}, 2, "S2"},
		{Card{Suit: Diamonds, Rank: Nine}, 9, "D9"},
		{Card{Suit: Clubs, Rank: Ten}, 10, "C10"},
		{Card{Suit: Hearts, Rank: Jack}, 10, "HJ"},
		{Card{Suit: Spades, Rank: Queen}, 10, "SQ"},
		{Card{Suit: Diamonds, Rank: King}, 10, "DK"},
		{Card{Suit: Joker, Rank: RankJoker}, 0, JokerText},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := tt.card.Value(); got != tt.value {
				t.Errorf("Value() = %d, want %d", got, tt.value)
			}
			if got := tt.card.String(); got != tt.text {
				t.Errorf("String() = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestCard_EveryDeckCardHasMappedValue(t *testing.T) {
	for _, c := range NewDeck(NewSeededSource(9)).Cards {
		want := int(c.Rank)
		switch {
		case c.IsJoker():
			want = 0
		case c.Rank >= Ten:
			want = 10
		}
		if c.Value() != want {
			t.Fatalf("card %s: expected value %d, got %d", c, want, c.Value())
		}
	}
}

func TestCompareReveal(t *testing.T) {
	tests := []struct {
		name string
		a, b Card
		sign int
	}{
		{"higher value wins", Card{Suit: Clubs, Rank: Nine}, Card{Suit: Spades, Rank: Eight}, 1},
		{"face equals ten, suit breaks tie", Card{Suit: Hearts, Rank: King}, Card{Suit: Spades, Rank: Ten}, -1},
		{"spades over hearts", Card{Suit: Spades, Rank: Five}, Card{Suit: Hearts, Rank: Five}, 1},
		{"diamonds over clubs", Card{Suit: Diamonds, Rank: Ace}, Card{Suit: Clubs, Rank: Ace}, 1},
		{"joker is lowest", Card{Suit: Joker}, Card{Suit: Clubs, Rank: Ace}, -1},
		{"exact tie", Card{Suit: Hearts, Rank: Jack}, Card{Suit: Hearts, Rank: Queen}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareReveal(tt.a, tt.b)
			if (got > 0) != (tt.sign > 0) || (got < 0) != (tt.sign < 0) {
				t.Fatalf("expected sign %d, got %d", tt.sign, got)
			}
		})
	}
}

func TestDetermineFirst(t *testing.T) {
	low := PlayedCard{Card: Card{Suit: Clubs, Rank: Two}, Seat: 0}
	high := PlayedCard{Card: Card{Suit: Clubs, Rank: Three}, Seat: 1}

	if seat, tied := DetermineFirst([2]PlayedCard{low, high}); seat != 1 || tied {
		t.Fatalf("expected seat 1 untied, got %d tied=%v", seat, tied)
	}

	same := PlayedCard{Card: Card{Suit: Clubs, Rank: Two}, Seat: 1}
	if seat, tied := DetermineFirst([2]PlayedCard{low, same}); seat != 0 || !tied {
		t.Fatalf("expected seat 0 on tie, got %d tied=%v", seat, tied)
	}
}
