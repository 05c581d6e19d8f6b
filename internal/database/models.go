package database

import (
	"time"

	"aceduel/internal/game"
)

// DuelResult is one finished duel as stored in the history table.
type DuelResult struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Player1   string `json:"player1"`
	Player2   string `json:"player2"`
	Mode      string `json:"mode"` // "pvp" or "pve"
	P1Life    int    `json:"p1_life"`
	P2Life    int    `json:"p2_life"`
	Winner    string `json:"winner"` // player name, empty on a draw
	Reason    string `json:"reason"`
	Rounds    int    `json:"rounds"`
}

// FromGame builds the history row for a finished duel.
func FromGame(g *game.Game, res game.Result, at time.Time) DuelResult {
	names := g.Names()
	mode := "pvp"
	if g.State.VsComputer {
		mode = "pve"
	}
	winner := ""
	if !res.Draw {
		winner = names[res.Winner]
	}
	return DuelResult{
		ID:        g.ID,
		CreatedAt: at.UTC().Format(time.RFC3339Nano),
		Player1:   names[0],
		Player2:   names[1],
		Mode:      mode,
		P1Life:    res.Lives[0],
		P2Life:    res.Lives[1],
		Winner:    winner,
		Reason:    res.Reason,
		Rounds:    res.Rounds,
	}
}
