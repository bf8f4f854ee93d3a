package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/gravitas-games/hextile/internal/config"
	"github.com/gravitas-games/hextile/internal/gamemap"
	"github.com/gravitas-games/hextile/internal/network"
	"github.com/gravitas-games/hextile/pkg/models"
)

// Server accepts websocket query clients for one tile map
type Server struct {
	config       *config.Config
	session      *Session
	upgrader     websocket.Upgrader
	httpSrv      *http.Server
	jwtValidator *JWTValidator // nil when authentication is disabled
	redis        *redis.Client

	// Connection tracking
	connections map[*Connection]bool
	connMu      sync.RWMutex

	// Shutdown
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a server over gm. Redis and JWT are only set up when their
// addresses are configured.
func New(cfg *config.Config, gm *gamemap.GameMap) (*Server, error) {
	log.Println("Initializing server...")

	ctx, cancel := context.WithCancel(context.Background())

	srv := &Server{
		config:      cfg,
		connections: make(map[*Connection]bool),
		ctx:         ctx,
		cancel:      cancel,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			Subprotocols:    []string{"access_token"},
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	if cfg.Redis.Address != "" {
		srv.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := srv.redis.Ping(ctx).Err(); err != nil {
			cancel()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Println("Connected to Redis")
	}

	if cfg.JWT.PublicKeyURL != "" {
		jwtValidator, err := NewJWTValidator(ctx, cfg, srv.redis)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed to initialize JWT validator: %w", err)
		}
		srv.jwtValidator = jwtValidator
	} else {
		log.Println("No public key URL configured, clients join as guests")
	}

	session, err := NewSession(cfg, gm)
	if err != nil {
		cancel()
		return nil, err
	}
	srv.session = session

	log.Println("Server initialized successfully")
	return srv, nil
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start begins listening for connections
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("WebSocket endpoint: ws://%s/ws", addr)
	log.Printf("Health endpoint: http://%s/health", addr)

	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	log.Println("Shutting down server...")

	s.cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.httpSrv != nil {
		if err := s.httpSrv.Shutdown(ctx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
		}
	}

	s.connMu.RLock()
	for conn := range s.connections {
		conn.Close()
	}
	s.connMu.RUnlock()

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			log.Printf("Redis close error: %v", err)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}

// authenticate resolves the player behind a request. Without a validator
// everyone is a guest allowed to edit tiles.
func (s *Server) authenticate(r *http.Request) (*models.Player, error) {
	if s.jwtValidator == nil {
		id := uuid.NewString()
		return &models.Player{
			ID:          id,
			Username:    "guest-" + id[:8],
			AuthMethod:  "guest",
			Permissions: models.PermEditTiles,
			Activated:   1,
		}, nil
	}

	tokenString := extractToken(r)
	if tokenString == "" {
		return nil, fmt.Errorf("missing authentication token")
	}
	return s.jwtValidator.ValidateToken(r.Context(), tokenString)
}

// handleWebSocket handles WebSocket connection requests
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	player, err := s.authenticate(r)
	if err != nil {
		log.Printf("Rejected connection from %s: %v", r.RemoteAddr, err)
		http.Error(w, fmt.Sprintf("Unauthorized: %v", err), http.StatusUnauthorized)
		return
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	player.Connected = true
	player.ConnectedAt = time.Now()
	player.SessionID = s.session.ID
	conn := NewConnection(ws, s, player)

	if err := s.session.Add(conn); err != nil {
		ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseTryAgainLater, err.Error()))
		ws.Close()
		return
	}

	s.connMu.Lock()
	s.connections[conn] = true
	s.connMu.Unlock()

	conn.SendMessage(&network.ServerMessage{
		Type: network.MsgTypeWelcome,
		Payload: network.WelcomePayload{
			ClientID:  conn.id,
			Username:  player.Username,
			SessionID: s.session.ID,
			Map:       s.session.Summary(),
		},
	})

	log.Printf("WebSocket connection established: %s (%s)", player.Username, r.RemoteAddr)

	conn.Handle()

	s.connMu.Lock()
	delete(s.connections, conn)
	s.connMu.Unlock()

	log.Printf("WebSocket connection closed: %s (%s)", player.Username, r.RemoteAddr)
}

// handleHealth reports liveness and session status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"session": s.session.GetStatus(),
	})
}
