// Package server runs games for remote players over websockets, with a
// small REST API for inspecting and playing rooms.
package server

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/lgbarn/duel-chess/internal/chess"
	"github.com/lgbarn/duel-chess/internal/config"
	"github.com/lgbarn/duel-chess/internal/engine"
	"github.com/lgbarn/duel-chess/internal/errors"
	"github.com/lgbarn/duel-chess/internal/game"
)

// DefaultRoom is used when a client does not name a room.
const DefaultRoom = "default"

// Server owns the game rooms and the HTTP handler serving them.
type Server struct {
	cfg      *config.Config
	rules    engine.Rules
	upgrader websocket.Upgrader
	router   *gin.Engine

	// start is shared by every new room; sessions copy it.
	start     *chess.Board
	startTurn chess.Colour

	// roomMu is taken before any room's mu, never after.
	roomMu sync.Mutex
	rooms  map[string]*Room

	srvMu sync.Mutex
	srv   *http.Server
}

// New builds a Server from the configuration.
func New(cfg *config.Config) (*Server, error) {
	start, err := cfg.Start.Board()
	if err != nil {
		return nil, err
	}
	if cfg.Server.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:       cfg,
		rules:     cfg.Rules.Engine(),
		start:     start,
		startTurn: cfg.Start.Turn,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.Server.ReadBufferSize,
			WriteBufferSize: cfg.Server.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		rooms: make(map[string]*Room),
	}
	s.router = s.routes()
	return s, nil
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if s.cfg.Verbosity > 0 && s.cfg.LogFile != nil {
		r.Use(gin.LoggerWithWriter(s.cfg.LogFile))
	}

	r.GET("/ws", s.handleWebSocket)

	api := r.Group("/api")
	api.GET("/rooms/:id", s.handleGetRoom)
	api.POST("/rooms/:id/moves", s.handlePostMove)
	api.POST("/rooms/:id/reset", s.handleReset)

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

// Listen serves until Close is called or the listener fails.
func (s *Server) Listen() error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	s.srvMu.Lock()
	s.srv = srv
	s.srvMu.Unlock()
	defer func() {
		s.srvMu.Lock()
		s.srv = nil
		s.srvMu.Unlock()
	}()

	log.Printf("Server starting on %s (rules: %s)", srv.Addr, s.cfg.Rules.Describe())
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close attempts a graceful shutdown of the HTTP server.
func (s *Server) Close(ctx context.Context) error {
	s.srvMu.Lock()
	srv := s.srv
	s.srvMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// room returns the named room, creating it when create is set. created
// reports whether this call made the room.
func (s *Server) room(id string, create bool) (room *Room, created bool, err error) {
	s.roomMu.Lock()
	defer s.roomMu.Unlock()
	return s.roomLocked(id, create)
}

// joinRoom finds or creates the named room and seats conn in it. Both
// steps happen under roomMu so the room cannot be dropped in between.
func (s *Server) joinRoom(id string, conn *websocket.Conn) (*Room, chess.Colour, error) {
	s.roomMu.Lock()
	defer s.roomMu.Unlock()

	room, created, err := s.roomLocked(id, true)
	if err != nil {
		return nil, chess.White, err
	}
	colour, err := room.join(conn)
	if err != nil {
		if created {
			s.dropLocked(room, false)
		}
		return nil, chess.White, err
	}
	return room, colour, nil
}

// roomLocked is room with roomMu held.
func (s *Server) roomLocked(id string, create bool) (*Room, bool, error) {
	if room, ok := s.rooms[id]; ok {
		return room, false, nil
	}
	if !create {
		return nil, false, errors.Wrapf(errors.ErrRoomNotFound, "room %q", id)
	}
	if limit := s.cfg.Server.MaxRooms; limit > 0 && len(s.rooms) >= limit {
		return nil, false, errors.Wrapf(errors.ErrTooManyRooms, "limit %d", limit)
	}

	room := newRoom(id, game.NewSessionFromBoard(s.start, s.rules, s.startTurn), s.cfg.Server.WriteTimeout)
	s.rooms[id] = room
	log.Printf("Created new room: %s", id)
	return room, true, nil
}

// dropIfEmpty forgets a room once its last client has gone. The dropped
// room is closed, so a caller still holding it cannot seat anyone or move.
func (s *Server) dropIfEmpty(room *Room) bool {
	s.roomMu.Lock()
	defer s.roomMu.Unlock()
	return s.dropLocked(room, false)
}

// dropIfUnplayed forgets a room that has no clients and no moves.
func (s *Server) dropIfUnplayed(room *Room) bool {
	s.roomMu.Lock()
	defer s.roomMu.Unlock()
	return s.dropLocked(room, true)
}

func (s *Server) dropLocked(room *Room, unplayed bool) bool {
	if s.rooms[room.ID] != room || !room.closeIfIdle(unplayed) {
		return false
	}
	delete(s.rooms, room.ID)
	log.Printf("Closed empty room: %s", room.ID)
	return true
}
