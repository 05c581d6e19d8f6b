package game

import (
	"fmt"

	"aceduel/internal/shared"
)

// Status is the snapshot a presentation layer needs after every round.
type Status struct {
	Round           int
	Names           [2]string
	Lives           [2]int
	DeckCount       int
	HandSizes       [2]int
	NextSeat        int
	CurrentSuit     string // "any" until a suit is enforced
	BlockDraw       bool
	RestrictNumbers bool
}

// RoundReport describes one resolved play.
type RoundReport struct {
	Status
	Seat     int
	Played   *shared.PlayedCard // nil when the seat had nothing to play
	Effect   Effect
	Penalty  bool
	Messages []string
}

// Reasons a duel ended.
const (
	ReasonLifeDepleted = "life depleted"
	ReasonExhausted    = "deck and hands exhausted"
)

// Result is the final outcome. Winner is -1 on a draw.
type Result struct {
	Winner int
	Draw   bool
	Reason string
	Lives  [2]int
	Rounds int
}

// Summary renders the result as a single line.
func (r Result) Summary(names [2]string) string {
	if r.Draw {
		return fmt.Sprintf("Draw (%s): %s %d, %s %d", r.Reason, names[0], r.Lives[0], names[1], r.Lives[1])
	}
	return fmt.Sprintf("%s wins (%s): %s %d, %s %d", names[r.Winner], r.Reason, names[0], r.Lives[0], names[1], r.Lives[1])
}
