package tui

import (
	"strings"

	"github.com/lgbarn/duel-chess/internal/config"
	"github.com/lgbarn/duel-chess/internal/game"
	"github.com/lgbarn/duel-chess/internal/output"
)

// renderBoard draws the position for the board pane. The screen is owned by
// bubbletea, so the clear-screen setting is ignored here.
func renderBoard(snap game.Snapshot, display *config.DisplayConfig) string {
	opts := config.NewDisplayConfig()
	if display != nil {
		opts.ShowCoordinates = display.ShowCoordinates
		opts.EmptySquare = display.EmptySquare
	}

	var sb strings.Builder
	output.RenderBoard(&sb, snap.Board, opts) //nolint:errcheck // strings.Builder never fails
	return strings.TrimRight(sb.String(), "\n")
}
