package protocol

import (
	"encoding/json"

	"aceduel/internal/shared"
)

// Message represents a generic WebSocket message structure.
type Message struct {
	Type    string          `json:"type"`              // e.g. "watch", "round_end"
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload, allows flexible structures
}

// Message types published by a running duel.
const (
	TypeGameStart = "game_start"
	TypeRoundEnd  = "round_end"
	TypeGameOver  = "game_over"
	TypeWatch     = "watch"
	TypeWatching  = "watching"
	TypePing      = "ping"
	TypePong      = "pong"
	TypeError     = "error"
)

// --- Client -> Server Payload Structs ---

type WatchPayload struct {
	GameID string `json:"game_id"`
}

// --- Server -> Client Payload Structs ---

type PlayerInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Seat     int    `json:"seat"`
	Computer bool   `json:"computer"`
}

type GameStartPayload struct {
	GameID     string               `json:"game_id"`
	Players    []PlayerInfo         `json:"players"`
	VsComputer bool                 `json:"vs_computer"`
	Reveals    [2]shared.PlayedCard `json:"reveals"`
	FirstSeat  int                  `json:"first_seat"`
}

type RoundEndPayload struct {
	GameID          string             `json:"game_id"`
	Round           int                `json:"round"`
	Played          *shared.PlayedCard `json:"played,omitempty"`
	P1Life          int                `json:"p1_life"`
	P2Life          int                `json:"p2_life"`
	DeckCount       int                `json:"deck_count"`
	NextSeat        int                `json:"next_seat"`
	CurrentSuit     string             `json:"current_suit"`
	BlockDraw       bool               `json:"block_draw"`
	RestrictNumbers bool               `json:"restrict_numbers"`
	Messages        []string           `json:"messages,omitempty"`
}

type GameOverPayload struct {
	GameID     string `json:"game_id"`
	WinnerID   string `json:"winner_id,omitempty"`
	WinnerSeat int    `json:"winner_seat"` // -1 on a draw
	Draw       bool   `json:"draw"`
	Reason     string `json:"reason"`
	P1Life     int    `json:"p1_life"`
	P2Life     int    `json:"p2_life"`
	Rounds     int    `json:"rounds"`
}

type WatchingPayload struct {
	GameID string `json:"game_id"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// Helper function to create a JSON message
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	msg := Message{
		Type:    msgType,
		Payload: payloadBytes,
	}
	return json.Marshal(msg)
}
