package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/duel-chess/internal/errors"
)

// ServerConfig holds settings for the websocket game server.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// MaxRooms caps concurrently open game rooms (0 = unlimited)
	MaxRooms int

	// ReadBufferSize and WriteBufferSize size the websocket buffers
	ReadBufferSize  int
	WriteBufferSize int

	// WriteTimeout bounds each websocket write
	WriteTimeout time.Duration

	// ReleaseMode switches gin out of debug mode
	ReleaseMode bool
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:            ":8080",
		MaxRooms:        64,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		WriteTimeout:    10 * time.Second,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.MaxRooms < 0 {
		return fmt.Errorf("max rooms (%d) is negative: %w", s.MaxRooms, errors.ErrInvalidConfig)
	}
	if s.ReadBufferSize <= 0 || s.WriteBufferSize <= 0 {
		return fmt.Errorf("buffer sizes must be positive (%d, %d): %w",
			s.ReadBufferSize, s.WriteBufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
