package server

import (
	"encoding/json"

	"aceduel/internal/protocol"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Client represents a single spectator WebSocket connection.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	ID   string // Unique identifier assigned before registration
}

// ReadPump handles incoming messages from the WebSocket connection.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.leave(c)
		c.conn.Close()
	}()

	for {
		_, messageBytes, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("unexpected close", zap.String("client_id", c.ID), zap.Error(err))
			}
			break
		}

		var msg protocol.Message
		if err := json.Unmarshal(messageBytes, &msg); err != nil {
			c.hub.logger.Warn("bad message from spectator", zap.String("client_id", c.ID), zap.Error(err))
			continue
		}
		if !c.hub.submit(clientMessage{client: c, message: msg}) {
			break
		}
	}
}

// WritePump handles outgoing messages to the WebSocket connection.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			c.hub.logger.Warn("write to spectator failed", zap.String("client_id", c.ID), zap.Error(err))
			break
		}
	}
}
