package server

import (
	"strings"

	"github.com/lgbarn/duel-chess/internal/chess"
	"github.com/lgbarn/duel-chess/internal/game"
	"github.com/lgbarn/duel-chess/internal/output"
)

// ClientMessage is what a websocket client sends.
//
//	{"type":"move","move":"e2 e4"}
//	{"type":"state"}
//	{"type":"new"}
type ClientMessage struct {
	Type string `json:"type"`
	Move string `json:"move,omitempty"`
}

// Message is what the server sends to websocket clients.
type Message struct {
	Type     string               `json:"type"`
	Colour   string               `json:"colour,omitempty"`
	Players  int                  `json:"players,omitempty"`
	Message  string               `json:"message,omitempty"`
	Error    string               `json:"error,omitempty"`
	Report   *output.JSONReport   `json:"report,omitempty"`
	Snapshot *output.JSONSnapshot `json:"snapshot,omitempty"`
}

// MoveRequest is the body of POST /api/rooms/:id/moves.
type MoveRequest struct {
	Move   string `json:"move" binding:"required"`
	Player string `json:"player" binding:"required"`
}

func errorMessage(err error) Message {
	return Message{Type: "error", Message: output.DescribeError(err), Error: err.Error()}
}

func snapshotJSON(s *game.Session) *output.JSONSnapshot {
	return output.SnapshotJSON(s.Snapshot())
}

func snapshotJSONFrom(snap game.Snapshot) *output.JSONSnapshot {
	return output.SnapshotJSON(snap)
}

func reportJSON(r game.Report) *output.JSONReport {
	return output.ReportJSON(r)
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}
