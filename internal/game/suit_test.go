package game

import (
	"testing"

	"aceduel/internal/shared"
)

func TestApplySuitRule_Combinations(t *testing.T) {
	joker := shared.Card{Suit: shared.Joker, Rank: shared.RankJoker}
	tests := []struct {
		name     string
		current  shared.Suit
		card     shared.Card
		wantSuit shared.Suit
		wantLife int
		penalty  bool
	}{
		{"valid non-joker", shared.Hearts, shared.Card{Suit: shared.Hearts, Rank: shared.Seven}, shared.Hearts, 15, false},
		{"invalid non-joker", shared.Spades, shared.Card{Suit: shared.Diamonds, Rank: shared.Seven}, shared.Diamonds, 13, true},
		{"joker keeps suit", shared.Clubs, joker, shared.Clubs, 15, false},
		{"joker on unset suit", shared.NoSuit, joker, shared.NoSuit, 15, false},
		{"first play sets suit", shared.NoSuit, shared.Card{Suit: shared.Spades, Rank: shared.King}, shared.Spades, 15, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &State{CurrentSuit: tt.current}
			life := 15
			if got := ApplySuitRule(tt.card, &life, st); got != tt.penalty {
				t.Fatalf("expected penalty=%v, got %v", tt.penalty, got)
			}
			if st.CurrentSuit != tt.wantSuit {
				t.Fatalf("expected suit %q, got %q", tt.wantSuit, st.CurrentSuit)
			}
			if life != tt.wantLife {
				t.Fatalf("expected life %d, got %d", tt.wantLife, life)
			}
		})
	}
}

func TestApplySuitRule_PenaltyIndependentOfRank(t *testing.T) {
	for r := shared.Ace; r <= shared.King; r++ {
		st := &State{CurrentSuit: shared.Hearts}
		life := 9
		ApplySuitRule(shared.Card{Suit: shared.Clubs, Rank: r}, &life, st)
		if life != 7 {
			t.Fatalf("rank %s: expected life 7, got %d", r, life)
		}
	}
}
