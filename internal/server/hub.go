package server

import (
	"context"
	"encoding/json"
	"sync"

	"aceduel/internal/protocol"

	"go.uber.org/zap"
)

// clientMessage is a helper struct to pass messages along with the client reference.
type clientMessage struct {
	client  *Client
	message protocol.Message
}

// Hub tracks spectator connections and which duel each one watches.
type Hub struct {
	clients        map[*Client]bool
	watchers       map[string]map[*Client]bool // game id -> watching clients
	clientToGame   map[*Client]string
	processMessage chan clientMessage
	register       chan *Client
	unregister     chan *Client
	done           chan struct{} // closed when Run returns
	clientMu       sync.RWMutex
	watchMu        sync.RWMutex
	logger         *zap.Logger
}

// NewHub creates a new Hub instance.
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:        make(map[*Client]bool),
		watchers:       make(map[string]map[*Client]bool),
		clientToGame:   make(map[*Client]string),
		processMessage: make(chan clientMessage),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		done:           make(chan struct{}),
		logger:         logger,
	}
}

// Run starts the Hub's main loop. It returns when ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.clientMu.Lock()
			h.clients[client] = true
			h.clientMu.Unlock()
			h.logger.Info("spectator connected", zap.String("client_id", client.ID))

		case client := <-h.unregister:
			h.removeClient(client)

		case clientMsg := <-h.processMessage:
			h.handleMessage(clientMsg.client, clientMsg.message)
		}
	}
}

// join, leave and submit hand work to Run; they give up once Run has returned.
func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) submit(msg clientMessage) bool {
	select {
	case h.processMessage <- msg:
		return true
	case <-h.done:
		return false
	}
}

// removeClient forgets a client and closes its send channel.
func (h *Hub) removeClient(client *Client) {
	h.clientMu.Lock()
	gameID, watching := h.clientToGame[client]
	_, exists := h.clients[client]
	if exists {
		delete(h.clients, client)
		delete(h.clientToGame, client)
		close(client.send)
	}
	h.clientMu.Unlock()

	if watching {
		h.watchMu.Lock()
		delete(h.watchers[gameID], client)
		if len(h.watchers[gameID]) == 0 {
			delete(h.watchers, gameID)
		}
		h.watchMu.Unlock()
	}
	if exists {
		h.logger.Info("spectator disconnected", zap.String("client_id", client.ID), zap.String("game_id", gameID))
	}
}

// handleMessage processes a message received from a client.
func (h *Hub) handleMessage(client *Client, msg protocol.Message) {
	switch msg.Type {
	case protocol.TypeWatch:
		h.handleWatch(client, msg)
	case protocol.TypePing:
		pongMsg, _ := protocol.NewMessage(protocol.TypePong, nil)
		h.sendToClient(client, pongMsg)
	default:
		h.logger.Warn("unknown message type", zap.String("type", msg.Type), zap.String("client_id", client.ID))
		h.sendErrorToClient(client, "Unknown message type.")
	}
}

// handleWatch subscribes a client to one duel, replacing any earlier subscription.
func (h *Hub) handleWatch(client *Client, msg protocol.Message) {
	var payload protocol.WatchPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.GameID == "" {
		h.sendErrorToClient(client, "Invalid watch message.")
		return
	}

	h.clientMu.Lock()
	previous, had := h.clientToGame[client]
	h.clientToGame[client] = payload.GameID
	h.clientMu.Unlock()

	h.watchMu.Lock()
	if had {
		delete(h.watchers[previous], client)
		if len(h.watchers[previous]) == 0 {
			delete(h.watchers, previous)
		}
	}
	if h.watchers[payload.GameID] == nil {
		h.watchers[payload.GameID] = make(map[*Client]bool)
	}
	h.watchers[payload.GameID][client] = true
	h.watchMu.Unlock()

	h.logger.Info("spectator watching", zap.String("client_id", client.ID), zap.String("game_id", payload.GameID))
	ack, _ := protocol.NewMessage(protocol.TypeWatching, protocol.WatchingPayload{GameID: payload.GameID})
	h.sendToClient(client, ack)
}

// Publish fans a duel event out to everyone watching gameID.
// It has the game.MessageSender signature.
func (h *Hub) Publish(gameID string, message []byte) {
	h.watchMu.RLock()
	targets := make([]*Client, 0, len(h.watchers[gameID]))
	for c := range h.watchers[gameID] {
		targets = append(targets, c)
	}
	h.watchMu.RUnlock()

	for _, c := range targets {
		h.sendToClient(c, message)
	}
}

// Watchers returns how many clients follow gameID.
func (h *Hub) Watchers(gameID string) int {
	h.watchMu.RLock()
	defer h.watchMu.RUnlock()
	return len(h.watchers[gameID])
}

// sendToClient does a non-blocking send; a client that cannot keep up is dropped.
func (h *Hub) sendToClient(client *Client, message []byte) {
	h.clientMu.RLock()
	_, connected := h.clients[client]
	if !connected {
		h.clientMu.RUnlock()
		return
	}
	select {
	case client.send <- message:
		h.clientMu.RUnlock()
	default:
		h.clientMu.RUnlock()
		h.logger.Warn("spectator channel full, dropping", zap.String("client_id", client.ID))
		go h.leave(client)
	}
}

// sendErrorToClient sends a generic error message to a specific client.
func (h *Hub) sendErrorToClient(client *Client, errorMsg string) {
	msgBytes, err := protocol.NewMessage(protocol.TypeError, protocol.ErrorPayload{Message: errorMsg})
	if err != nil {
		h.logger.Error("failed to encode error message", zap.Error(err))
		return
	}
	h.sendToClient(client, msgBytes)
}
