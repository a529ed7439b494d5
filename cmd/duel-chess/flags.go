// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lgbarn/duel-chess/internal/chess"
	"github.com/lgbarn/duel-chess/internal/config"
	"github.com/lgbarn/duel-chess/internal/errors"
)

var (
	// Front ends
	tuiMode   = flag.Bool("tui", false, "Play in a full-screen terminal UI")
	serveAddr = flag.String("serve", "", "Serve games over websockets on this address (e.g. :8080)")
	maxRooms  = flag.Int("maxrooms", 64, "Maximum concurrent rooms when serving (0 = unlimited)")
	release   = flag.Bool("release", false, "Run the server in release mode")

	// Rules
	rulesPreset       = flag.String("rules", config.LiteralPreset, "Rule set: literal or standard")
	bishopPath        = flag.Bool("bishop-path", false, "Bishops may not jump over pieces")
	pawnHome          = flag.Bool("pawn-home", false, "Pawns may double-step only from their home row")
	commitKingCapture = flag.Bool("commit-king-capture", false, "Move the capturing piece onto a taken king's square")

	// Display
	noCoords    = flag.Bool("nocoords", false, "Don't print rank and file labels")
	clearScreen = flag.Bool("clear", false, "Clear the terminal before drawing the board")
	jsonOutput  = flag.Bool("J", false, "Write positions as JSON lines")
	historyFile = flag.String("history", "", "Write every position of a console game to this file as JSON")

	// Start position
	startFEN  = flag.String("fen", "", "Start from this FEN piece placement instead of the standard position")
	startTurn = flag.String("turn", "white", "Side to move first: white or black")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0 quiet, 1 game events, 2 every ply")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	appendLog = flag.String("L", "", "Append diagnostics to this file")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// buildConfig turns the command-line flags into a validated configuration
// reading from in and writing to out and log.
func buildConfig(in io.Reader, out, log io.Writer) (*config.Config, error) {
	b := config.NewConfigBuilder().
		WithInput(in).
		WithOutput(out).
		WithLogFile(log)

	applyModeFlags(b)
	applyRulesFlags(b)
	applyDisplayFlags(b)
	if err := applyStartFlags(b); err != nil {
		return nil, err
	}

	level := *verbosity
	if *quiet {
		level = 0
	}
	return b.WithVerbosity(level).Build()
}

// applyModeFlags picks the front end and server settings.
func applyModeFlags(b *config.ConfigBuilder) {
	switch {
	case *serveAddr != "":
		b.WithMode(config.ServeMode).WithServerAddr(*serveAddr)
	case *tuiMode:
		b.WithMode(config.TUIMode)
	default:
		b.WithMode(config.ConsoleMode)
	}
	b.WithMaxRooms(*maxRooms).WithReleaseMode(*release)
}

// applyRulesFlags applies the preset first; the individual switches can
// only turn corrections on.
func applyRulesFlags(b *config.ConfigBuilder) {
	b.WithRulePreset(*rulesPreset)
	if *bishopPath {
		b.WithBishopPathCheck(true)
	}
	if *pawnHome {
		b.WithPawnDoubleStepFromHome(true)
	}
	if *commitKingCapture {
		b.WithCommitKingCapture(true)
	}
}

// applyDisplayFlags configures board drawing.
func applyDisplayFlags(b *config.ConfigBuilder) {
	b.WithCoordinates(!*noCoords).
		WithClearScreen(*clearScreen).
		WithJSON(*jsonOutput)
}

// applyStartFlags sets the position games begin from.
func applyStartFlags(b *config.ConfigBuilder) error {
	turn, ok := chess.ParseColour(*startTurn)
	if !ok {
		return fmt.Errorf("-turn must be white or black, got %q: %w", *startTurn, errors.ErrInvalidConfig)
	}
	b.WithStartPosition(*startFEN, turn)
	return nil
}
