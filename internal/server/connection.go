package server

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/gravitas-games/hextile/internal/network"
	"github.com/gravitas-games/hextile/pkg/models"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

// Connection represents a WebSocket connection to a client
type Connection struct {
	id     string
	ws     *websocket.Conn
	server *Server
	player *models.Player

	// Buffered channel for outbound messages
	send chan []byte

	done      chan struct{}
	closeOnce sync.Once
}

// NewConnection creates a new connection for an authenticated player
func NewConnection(ws *websocket.Conn, server *Server, player *models.Player) *Connection {
	return &Connection{
		id:     uuid.NewString(),
		ws:     ws,
		server: server,
		player: player,
		send:   make(chan []byte, 256),
		done:   make(chan struct{}),
	}
}

// Handle manages the connection lifecycle
func (c *Connection) Handle() {
	c.ws.SetReadLimit(maxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	go c.writePump()
	c.readPump() // Blocking
}

// readPump pumps messages from the WebSocket connection to the session
func (c *Connection) readPump() {
	defer c.Close()

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}

		var clientMsg network.ClientMessage
		if err := json.Unmarshal(message, &clientMsg); err != nil {
			log.Printf("Failed to parse client message: %v", err)
			c.SendError("invalid_message", "Failed to parse message")
			continue
		}

		reply, update := c.server.session.Handle(c.player, &clientMsg)
		c.SendMessage(reply)
		if update != nil {
			c.server.session.BroadcastExcept(c, update)
		}
	}
}

// writePump pumps messages from the send channel to the WebSocket connection
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case message := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("WebSocket write error: %v", err)
				return
			}

		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			c.ws.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case <-c.server.ctx.Done():
			return
		}
	}
}

// SendMessage queues a message for the client. Messages to a closed
// connection or a full buffer are dropped.
func (c *Connection) SendMessage(msg *network.ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Failed to marshal message: %v", err)
		return
	}

	select {
	case <-c.done:
	case c.send <- data:
	default:
		log.Printf("Send buffer full for %s, dropping message", c.id)
	}
}

// SendError sends an error message to the client
func (c *Connection) SendError(code, message string) {
	c.SendMessage(&network.ServerMessage{
		Type: network.MsgTypeError,
		Payload: network.ErrorPayload{
			Code:    code,
			Message: message,
		},
	})
}

// Close leaves the session and stops the write pump. Safe to call more than once.
func (c *Connection) Close() {
	c.closeOnce.Do(func() {
		c.server.session.Remove(c)
		close(c.done)
	})
}
