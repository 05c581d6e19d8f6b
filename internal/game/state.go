package game

import "aceduel/internal/shared"

// Phase represents the lifecycle stage of a duel.
type Phase string

const (
	Dealing   Phase = "Dealing"   // Waiting for the opening deal
	Revealing Phase = "Revealing" // Each side picks a reveal card
	Playing   Phase = "Playing"   // Alternating plays
	GameOver  Phase = "GameOver"  // A terminal condition was reached
)

const (
	// HandTarget is the size every draw phase refills a hand to.
	HandTarget = 3
	// OpeningHand is the number of cards dealt before the reveal.
	OpeningHand = 4
	// AcePenalty is the life swing of Hearts/Clubs aces and of breaking suit.
	AcePenalty = 2
)

// State is the mutable session shared by every rule of the duel.
type State struct {
	Phase       Phase
	CurrentSuit shared.Suit // NoSuit until the first non-joker play
	Turn        int         // seat (0 or 1) that plays next
	VsComputer  bool        // fixed for the session
	Round       int         // plays resolved so far

	// BlockDraw suppresses BlockSeat's next refill, then clears.
	BlockDraw bool
	BlockSeat int

	// RestrictNumbers is raised by the Spades ace. Nothing reads it during play.
	RestrictNumbers bool
}

// IsPlayer1Turn reports whether seat 0 is active.
func (s *State) IsPlayer1Turn() bool {
	return s.Turn == 0
}

// SuitText renders the enforced suit, or "any" before one is set.
func (s *State) SuitText() string {
	if s.CurrentSuit == shared.NoSuit {
		return "any"
	}
	return string(s.CurrentSuit)
}

func opponent(seat int) int {
	return 1 - seat
}
