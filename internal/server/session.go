package server

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gravitas-games/hextile/internal/config"
	"github.com/gravitas-games/hextile/internal/gamemap"
	"github.com/gravitas-games/hextile/internal/network"
	"github.com/gravitas-games/hextile/pkg/hex"
)

var errSessionFull = errors.New("session is full")

// Session serves queries against one tile map to a set of connections
type Session struct {
	ID        string
	CreatedAt time.Time

	connections map[string]*Connection // connection ID -> Connection
	mu          sync.RWMutex

	gameMap *gamemap.GameMap
	layout  hex.Layout
	config  *config.Config
}

// SessionStatus represents the current state of the session
type SessionStatus struct {
	Clients    int   `json:"clients"`
	MaxClients int   `json:"max_clients"`
	Tiles      int   `json:"tiles"`
	Uptime     int64 `json:"uptime"` // seconds
}

// NewSession creates a session over gm
func NewSession(cfg *config.Config, gm *gamemap.GameMap) (*Session, error) {
	layout, err := hex.ParseLayout(cfg.Grid.Layout)
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now(),
		connections: make(map[string]*Connection),
		gameMap:     gm,
		layout:      layout,
		config:      cfg,
	}

	log.Printf("Session %s created over %d tiles", session.ID, gm.Len())
	return session, nil
}

// Add registers a connection with the session
func (s *Session) Add(conn *Connection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.connections) >= s.config.Session.MaxClients {
		return errSessionFull
	}
	s.connections[conn.id] = conn

	log.Printf("Client %s (%s) joined session %s", conn.player.Username, conn.id, s.ID)
	return nil
}

// Remove drops a connection from the session
func (s *Session) Remove(conn *Connection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.connections[conn.id]; exists {
		delete(s.connections, conn.id)
		log.Printf("Client %s (%s) left session %s", conn.player.Username, conn.id, s.ID)
	}
}

// BroadcastExcept sends a message to every connection but exclude
func (s *Session) BroadcastExcept(exclude *Connection, msg *network.ServerMessage) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, conn := range s.connections {
		if conn != exclude {
			conn.SendMessage(msg)
		}
	}
}

// Summary describes the session's map for the welcome message
func (s *Session) Summary() network.MapSummary {
	return network.MapSummary{
		Radius:  s.gameMap.Radius(),
		Backend: s.gameMap.Backend(),
		Tiles:   s.gameMap.Len(),
		Layout:  s.layout.String(),
	}
}

// GetStatus returns the current session status
func (s *Session) GetStatus() SessionStatus {
	s.mu.RLock()
	clients := len(s.connections)
	s.mu.RUnlock()

	return SessionStatus{
		Clients:    clients,
		MaxClients: s.config.Session.MaxClients,
		Tiles:      s.gameMap.Len(),
		Uptime:     int64(time.Since(s.CreatedAt).Seconds()),
	}
}
