package config

import (
	"fmt"

	"github.com/lgbarn/duel-chess/internal/chess"
	"github.com/lgbarn/duel-chess/internal/engine"
	"github.com/lgbarn/duel-chess/internal/errors"
)

// StartConfig holds the position new games begin from.
type StartConfig struct {
	// Placement is a FEN piece-placement field; empty means the standard position
	Placement string

	// Turn is the colour to move first
	Turn chess.Colour
}

// NewStartConfig creates a StartConfig for the standard opening position.
func NewStartConfig() *StartConfig {
	return &StartConfig{Turn: chess.White}
}

// Board returns a fresh board set up from Placement.
func (s *StartConfig) Board() (*chess.Board, error) {
	if s.Placement == "" {
		return chess.NewInitialBoard(), nil
	}
	board, err := engine.NewBoardFromPlacement(s.Placement)
	if err != nil {
		return nil, fmt.Errorf("start position: %w", err)
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		king := chess.W(chess.King)
		if colour == chess.Black {
			king = chess.B(chess.King)
		}
		if n := board.Count(king); n > 1 {
			return nil, fmt.Errorf("start position has %d %s kings: %w",
				n, colour, errors.ErrInvalidConfig)
		}
	}
	return board, nil
}

// Validate checks that Placement describes a playable position.
func (s *StartConfig) Validate() error {
	_, err := s.Board()
	return err
}
