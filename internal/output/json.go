package output

import (
	"strings"

	"github.com/lgbarn/duel-chess/internal/chess"
	"github.com/lgbarn/duel-chess/internal/engine"
	"github.com/lgbarn/duel-chess/internal/game"
)

// JSONSnapshot represents a session in JSON format.
type JSONSnapshot struct {
	Board     []string `json:"board"` // eight rows, rank 8 first
	Placement string   `json:"placement"`
	Turn      string   `json:"turn"`
	Status    string   `json:"status"`
	Winner    string   `json:"winner,omitempty"`
	Check     bool     `json:"check"`
	CheckedBy []string `json:"checkedBy,omitempty"`
	Ply       int      `json:"ply"`
}

// JSONReport represents one played move in JSON format.
type JSONReport struct {
	Ply      int    `json:"ply"`
	Move     string `json:"move"`
	Colour   string `json:"colour"`
	Piece    string `json:"piece"`
	Outcome  string `json:"outcome"`
	Captured string `json:"captured,omitempty"`
	Check    bool   `json:"check,omitempty"`
	Winner   string `json:"winner,omitempty"`
	Message  string `json:"message,omitempty"`
}

// BoardJSON returns the board as eight strings of piece symbols.
func BoardJSON(board *chess.Board) []string {
	rows := make([]string, chess.BoardSize)
	for row := range rows {
		buf := make([]byte, chess.BoardSize)
		for col := range buf {
			buf[col] = board.Get(chess.Sq(row, col)).Symbol()
		}
		rows[row] = string(buf)
	}
	return rows
}

// SnapshotJSON converts a snapshot to its JSON form.
func SnapshotJSON(snap game.Snapshot) *JSONSnapshot {
	js := &JSONSnapshot{
		Board:     BoardJSON(snap.Board),
		Placement: engine.BoardToPlacement(snap.Board),
		Turn:      colourName(snap.Turn),
		Status:    snap.Status.String(),
		Check:     snap.InCheck,
		Ply:       snap.Ply,
	}
	if snap.Status == game.Concluded {
		js.Winner = colourName(snap.Winner)
	}
	for _, sq := range snap.CheckedBy {
		js.CheckedBy = append(js.CheckedBy, sq.String())
	}
	return js
}

// ReportJSON converts a move report to its JSON form.
func ReportJSON(r game.Report) *JSONReport {
	jr := &JSONReport{
		Ply:     r.Ply,
		Move:    r.Move.String(),
		Colour:  colourName(r.Piece.Colour),
		Piece:   strings.ToLower(r.Piece.Kind.String()),
		Outcome: r.Outcome.Kind.String(),
		Check:   r.Outcome.Check,
		Message: DescribeOutcome(r.Outcome),
	}
	if !r.Outcome.Captured.IsEmpty() {
		jr.Captured = strings.ToLower(r.Outcome.Captured.Kind.String())
	}
	if r.Outcome.Kind == engine.KingCaptured {
		jr.Winner = colourName(r.Outcome.Winner)
	}
	return jr
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}
