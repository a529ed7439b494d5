package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/duel-chess/internal/chess"
	"github.com/lgbarn/duel-chess/internal/config"
	"github.com/lgbarn/duel-chess/internal/errors"
	"github.com/lgbarn/duel-chess/internal/testutil"
)

// playConsole runs the console loop over the given lines and returns what
// it printed.
func playConsole(t *testing.T, cfg *config.Config, lines ...string) string {
	t.Helper()
	var out, log bytes.Buffer
	cfg.Input = strings.NewReader(strings.Join(lines, "\n") + "\n")
	cfg.SetOutput(&out)
	cfg.SetLogFile(&log)

	c, err := newConsole(cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, c.run())
	return out.String()
}

func TestConsole_OpeningMoves(t *testing.T) {
	got := playConsole(t, config.NewConfig(), "e2 e4", "e7 e5")

	testutil.AssertContains(t, got, "White to move: ")
	testutil.AssertContains(t, got, "Black to move: ")
	testutil.AssertContains(t, got, "4 . . . . P . . .")
	testutil.AssertContains(t, got, "5 . . . . p . . .")
}

func TestConsole_Messages(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"bad format", []string{"e2e4e5"}, `Invalid input. Enter a move like "e2 e4".`},
		{"bad square", []string{"e2 e9"}, "Invalid square."},
		{"wrong piece", []string{"e7 e5"}, "That is not your piece. Try again."},
		{"empty square", []string{"e4 e5"}, "That is not your piece. Try again."},
		{"illegal", []string{"e2 e5"}, "Illegal move. Try again."},
		{"check", []string{"e2 e4", "f7 f6", "d1 h5"}, "Check!"},
		{"help", []string{"help"}, "Commands:"},
		{"king capture", []string{"f2 f3", "e7 e5", "g2 g4", "d8 h4", "a2 a3", "h4 e1"}, "Black wins!"},
		{"after the game", []string{"f2 f3", "e7 e5", "g2 g4", "d8 h4", "a2 a3", "h4 e1", "a3 a4"}, "The game is over."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := playConsole(t, config.NewConfig(), tt.lines...)
			testutil.AssertContains(t, got, tt.want)
		})
	}
}

func TestConsole_TurnHeldAfterError(t *testing.T) {
	got := playConsole(t, config.NewConfig(), "e2 e5", "e2 e4")
	// White is asked twice, then Black.
	testutil.AssertEqual(t, strings.Count(got, "White to move: "), 2)
	testutil.AssertEqual(t, strings.Count(got, "Black to move: "), 1)
}

func TestConsole_QuitStopsReading(t *testing.T) {
	got := playConsole(t, config.NewConfig(), "quit", "e2 e4")
	testutil.AssertNotContains(t, got, "Black to move")
}

func TestConsole_NewGame(t *testing.T) {
	got := playConsole(t, config.NewConfig(), "e2 e4", "new")
	lastBoard := got[strings.LastIndex(got, "8 r n b"):]
	testutil.AssertContains(t, lastBoard, "2 P P P P P P P P")
}

func TestConsole_Rules(t *testing.T) {
	// Pawn double step from e3 is allowed by default and refused with
	// the home-row rule.
	lines := []string{"e2 e3", "a7 a6", "e3 e5"}

	literal := playConsole(t, config.NewConfig(), lines...)
	testutil.AssertNotContains(t, literal, "Illegal move")

	cfg := config.NewConfig()
	testutil.AssertNoError(t, cfg.Rules.ApplyPreset(config.StandardPreset))
	standard := playConsole(t, cfg, lines...)
	testutil.AssertContains(t, standard, "Illegal move")
}

func TestConsole_JSON(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Display.JSON = true
	got := playConsole(t, cfg, "e2 e4", "e2 e4")

	lines := strings.Split(strings.TrimSpace(got), "\n")
	testutil.AssertEqual(t, len(lines), 3)

	var snap struct {
		Turn string `json:"turn"`
		Ply  int    `json:"ply"`
	}
	testutil.AssertNoError(t, json.Unmarshal([]byte(lines[1]), &snap))
	testutil.AssertEqual(t, snap.Turn, "black")
	testutil.AssertEqual(t, snap.Ply, 1)

	var msg map[string]string
	testutil.AssertNoError(t, json.Unmarshal([]byte(lines[2]), &msg))
	testutil.AssertEqual(t, msg["message"], "That is not your piece. Try again.")
}

func TestConsole_Logging(t *testing.T) {
	var out, log bytes.Buffer
	cfg := config.NewConfig()
	cfg.Verbosity = 2
	cfg.Input = strings.NewReader("e2 e4\n")
	cfg.SetOutput(&out)
	cfg.SetLogFile(&log)

	c, err := newConsole(cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, c.run())
	testutil.AssertContains(t, log.String(), "new game (rules: literal)")
	testutil.AssertContains(t, log.String(), "ply 1: White e2 e4 -> Applied")
}

func TestConsole_StartPosition(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Start.Placement = "4k3/8/8/8/8/8/4R3/4K3"
	cfg.Start.Turn = chess.Black

	got := playConsole(t, cfg, "e8 d8", "new")
	testutil.AssertEqual(t, strings.Count(got, "Black to move: "), 2)
	testutil.AssertEqual(t, strings.Count(got, "8 . . . k . . . ."), 1)
	testutil.AssertEqual(t, strings.Count(got, "8 . . . . k . . ."), 2)
}

func TestConsole_BadStartPosition(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Start.Placement = "4k3"
	_, err := newConsole(cfg)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
}

func TestConsole_History(t *testing.T) {
	var history bytes.Buffer
	cfg := config.NewConfig()
	cfg.History = &history

	playConsole(t, cfg, "e2 e4", "e2 e5", "new", "d2 d4", "quit")

	var got struct {
		Snapshots []struct {
			Ply       int    `json:"ply"`
			Placement string `json:"placement"`
		} `json:"snapshots"`
	}
	testutil.AssertNoError(t, json.Unmarshal(history.Bytes(), &got))

	var plies []int
	for _, snap := range got.Snapshots {
		plies = append(plies, snap.Ply)
	}
	testutil.AssertEqual(t, plies, []int{0, 1, 0, 1})
	testutil.AssertEqual(t, got.Snapshots[1].Placement, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR")
}
