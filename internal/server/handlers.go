package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/lgbarn/duel-chess/internal/chess"
	"github.com/lgbarn/duel-chess/internal/errors"
	"github.com/lgbarn/duel-chess/internal/output"
)

func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	roomID := c.Query("room")
	if roomID == "" {
		roomID = DefaultRoom
	}

	room, colour, err := s.joinRoom(roomID, conn)
	if err != nil {
		sendError(conn, err)
		return
	}
	s.cfg.Logf(1, "%s joined room %s", colour, roomID)

	defer func() {
		room.leave(conn)
		s.dropIfEmpty(room)
	}()

	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.cfg.Logf(2, "read from %s in room %s: %v", colour, roomID, err)
			}
			return
		}

		switch msg.Type {
		case "move":
			report, _, err := room.play(colour, msg.Move)
			if err != nil {
				room.reply(conn, errorMessage(err))
				s.cfg.Logf(2, "room %s: %v", roomID, err)
				continue
			}
			s.cfg.Logf(2, "room %s ply %d: %s %s -> %s", roomID, report.Ply, colour, report.Move, report.Outcome.Kind)
		case "state":
			room.reply(conn, Message{Type: "state", Colour: colourName(colour), Players: room.players(), Snapshot: snapshotJSONFrom(room.snapshot())})
		case "new":
			room.reset()
		default:
			room.reply(conn, Message{Type: "error", Message: "unknown message type", Error: msg.Type})
		}
	}
}

func (s *Server) handleGetRoom(c *gin.Context) {
	room, _, err := s.room(c.Param("id"), false)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"room":     room.ID,
		"players":  room.players(),
		"snapshot": output.SnapshotJSON(room.snapshot()),
	})
}

func (s *Server) handlePostMove(c *gin.Context) {
	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request", "detail": err.Error()})
		return
	}
	colour, ok := chess.ParseColour(req.Player)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request", "detail": "player must be white or black"})
		return
	}

	room, created, err := s.room(c.Param("id"), true)
	if err != nil {
		writeError(c, err)
		return
	}

	report, snap, err := room.play(colour, req.Move)
	if err != nil {
		// A rejected first move must not leave an empty room holding a slot.
		if created {
			s.dropIfUnplayed(room)
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"report":   output.ReportJSON(report),
		"snapshot": output.SnapshotJSON(snap),
	})
}

func (s *Server) handleReset(c *gin.Context) {
	room, _, err := s.room(c.Param("id"), false)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshot": output.SnapshotJSON(room.reset())})
}

// statusFor maps an error to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrTooManyRooms):
		return http.StatusServiceUnavailable
	case errors.Is(err, errors.ErrNotYourTurn), errors.Is(err, errors.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, errors.ErrInvalidFormat), errors.Is(err, errors.ErrInvalidSquare):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrWrongPiece), errors.Is(err, errors.ErrIllegalMove):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": output.DescribeError(err), "detail": err.Error()})
}

func sendError(conn *websocket.Conn, err error) {
	if err := conn.WriteJSON(errorMessage(err)); err != nil {
		log.Println("Error sending error message:", err)
	}
}
