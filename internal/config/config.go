// Package config provides configuration for duel-chess.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/duel-chess/internal/errors"
)

// Mode selects the front end that drives a game.
type Mode int

const (
	ConsoleMode Mode = iota // Line-oriented prompt on stdin/stdout
	TUIMode                 // Full-screen terminal UI
	ServeMode               // Websocket/HTTP server
)

// String returns the string representation of a mode.
func (m Mode) String() string {
	switch m {
	case TUIMode:
		return "tui"
	case ServeMode:
		return "serve"
	default:
		return "console"
	}
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "console":
		return ConsoleMode, nil
	case "tui":
		return TUIMode, nil
	case "serve", "server":
		return ServeMode, nil
	}
	return ConsoleMode, fmt.Errorf("unknown mode %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Mode      Mode
	Verbosity int // 0=nothing, 1=game events, 2=every ply

	// Sub-configurations
	Rules   *RulesConfig
	Display *DisplayConfig
	Server  *ServerConfig
	Start   *StartConfig

	// Streams
	Input   io.Reader
	Output  io.Writer
	LogFile io.Writer
	History io.Writer // receives every position of a console session as one JSON document; nil disables
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Mode:      ConsoleMode,
		Verbosity: 1,
		Rules:     NewRulesConfig(),
		Display:   NewDisplayConfig(),
		Server:    NewServerConfig(),
		Start:     NewStartConfig(),
		Input:     os.Stdin,
		Output:    os.Stdout,
		LogFile:   os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.Output = w
}

// SetLogFile sets the log writer.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if err := c.Start.Validate(); err != nil {
		return err
	}
	if c.Mode == ServeMode {
		if err := c.Server.Validate(); err != nil {
			return err
		}
	}
	return nil
}
