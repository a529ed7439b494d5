// Package game owns the state a two-player game needs beyond the board:
// whose turn it is and whether a king has fallen.
package game

import (
	"github.com/lgbarn/duel-chess/internal/chess"
	"github.com/lgbarn/duel-chess/internal/engine"
	"github.com/lgbarn/duel-chess/internal/errors"
	"github.com/lgbarn/duel-chess/internal/parser"
)

// Status is the lifecycle state of a session.
type Status int

const (
	InProgress Status = iota
	Concluded
)

// String returns the string representation of a status.
func (s Status) String() string {
	if s == Concluded {
		return "concluded"
	}
	return "in progress"
}

// Report describes one successfully played ply.
type Report struct {
	Ply     int
	Move    parser.Move
	Piece   chess.Piece
	Outcome engine.Outcome
}

// Session is a single game. It is not safe for concurrent use; the server
// guards each session with its room's mutex.
type Session struct {
	board  *chess.Board
	rules  engine.Rules
	turn   chess.Colour
	status Status
	winner chess.Colour
	check  bool
	ply    int

	// start and startTurn are what Reset returns to.
	start     *chess.Board
	startTurn chess.Colour
}

// NewSession starts a game from the standard position with White to move.
func NewSession(rules engine.Rules) *Session {
	return NewSessionFromBoard(chess.NewInitialBoard(), rules, chess.White)
}

// NewSessionFromBoard starts a game from an arbitrary position. The board
// is copied; later changes to it do not reach the session.
func NewSessionFromBoard(board *chess.Board, rules engine.Rules, turn chess.Colour) *Session {
	s := &Session{
		rules:     rules,
		start:     board.Copy(),
		startTurn: turn,
	}
	s.Reset()
	return s
}

// Reset starts a new game from the starting position with the same rules.
func (s *Session) Reset() {
	*s = Session{
		board:     s.start.Copy(),
		rules:     s.rules,
		turn:      s.startTurn,
		start:     s.start,
		startTurn: s.startTurn,
	}
	s.check = s.rules.IsKingInCheck(s.board, s.turn)
}

// Turn returns the colour to move.
func (s *Session) Turn() chess.Colour { return s.turn }

// Status returns whether the game is still being played.
func (s *Session) Status() Status { return s.status }

// Winner returns the colour that captured a king, if the game is over.
func (s *Session) Winner() (chess.Colour, bool) {
	return s.winner, s.status == Concluded
}

// Ply returns how many plies have been played.
func (s *Session) Ply() int { return s.ply }

// Rules returns the rule set in force.
func (s *Session) Rules() engine.Rules { return s.rules }

// Play parses a line such as "e2 e4" and plays it for the side to move.
func (s *Session) Play(input string) (Report, error) {
	move, err := parser.ParseMove(input)
	if err != nil {
		return Report{}, s.moveError(err, input)
	}
	return s.play(move)
}

// Move plays an already-parsed move for the side to move.
func (s *Session) Move(from, to chess.Square) (Report, error) {
	if !from.Valid() || !to.Valid() {
		return Report{}, s.moveError(errors.ErrInvalidSquare, "")
	}
	return s.play(parser.Move{From: from, To: to, Text: from.String() + " " + to.String()})
}

func (s *Session) play(move parser.Move) (Report, error) {
	if s.status == Concluded {
		return Report{}, s.moveError(errors.ErrGameOver, move.Text)
	}

	piece, ok := s.board.PieceAt(move.From)
	if !ok || piece.Colour != s.turn {
		return Report{}, s.moveError(errors.ErrWrongPiece, move.Text)
	}

	outcome := s.rules.ApplyMove(s.board, move.From, move.To)
	switch outcome.Kind {
	case engine.Rejected:
		return Report{}, s.moveError(errors.ErrIllegalMove, move.Text)
	case engine.KingCaptured:
		s.status = Concluded
		s.winner = outcome.Winner
		s.check = false
	case engine.Applied:
		s.check = outcome.Check
	}

	s.ply++
	s.turn = s.turn.Opposite()

	return Report{Ply: s.ply, Move: move, Piece: piece, Outcome: outcome}, nil
}

func (s *Session) moveError(err error, input string) error {
	return &errors.MoveError{
		Err:    err,
		Ply:    s.ply + 1,
		Player: s.turn.String(),
		Input:  input,
	}
}

// Snapshot is a read-only view of a session.
type Snapshot struct {
	Board     *chess.Board
	Turn      chess.Colour
	Status    Status
	Winner    chess.Colour
	InCheck   bool // the side to move is in check
	CheckedBy []chess.Square
	Ply       int
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Board:   s.board.Copy(),
		Turn:    s.turn,
		Status:  s.status,
		Winner:  s.winner,
		InCheck: s.check,
		Ply:     s.ply,
	}
	if s.check {
		if king, ok := s.board.FindKing(s.turn); ok {
			snap.CheckedBy = s.rules.Attackers(s.board, king, s.turn.Opposite())
		}
	}
	return snap
}
