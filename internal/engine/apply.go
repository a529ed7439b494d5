package engine

import (
	"github.com/lgbarn/duel-chess/internal/chess"
)

// OutcomeKind classifies the result of ApplyMove.
type OutcomeKind int

const (
	// Rejected means the move was illegal and the board is unchanged.
	Rejected OutcomeKind = iota
	// Applied means the move was played.
	Applied
	// KingCaptured means the move took a king and the game is over.
	KingCaptured
)

// String returns the string representation of an outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case Applied:
		return "Applied"
	case KingCaptured:
		return "KingCaptured"
	default:
		return "Rejected"
	}
}

// Outcome reports what ApplyMove did.
type Outcome struct {
	Kind OutcomeKind

	// Mover is the colour of the piece that moved (zero for Rejected).
	Mover chess.Colour

	// Captured is the piece removed from the destination, if any.
	Captured chess.Piece

	// Winner is set for KingCaptured.
	Winner chess.Colour

	// Check is true for Applied when the opponent's king is attacked
	// afterwards; Checked names that opponent.
	Check   bool
	Checked chess.Colour
}

// ApplyMove validates and plays a move under the literal rule set.
func ApplyMove(board *chess.Board, from, to chess.Square) Outcome {
	return Literal.ApplyMove(board, from, to)
}

// ApplyMove validates and plays a move. The board is either left untouched
// or has exactly one move committed.
func (r Rules) ApplyMove(board *chess.Board, from, to chess.Square) Outcome {
	if !r.IsMoveLegal(board, from, to) {
		return Outcome{Kind: Rejected}
	}

	piece := board.Get(from)
	captured := board.Get(to)

	if captured.Kind == chess.King {
		if r.CommitKingCapture {
			board.SetPiece(to, piece)
			board.Clear(from)
		}
		return Outcome{
			Kind:     KingCaptured,
			Mover:    piece.Colour,
			Captured: captured,
			Winner:   piece.Colour,
		}
	}

	board.SetPiece(to, piece)
	board.Clear(from)

	opponent := piece.Colour.Opposite()
	outcome := Outcome{
		Kind:     Applied,
		Mover:    piece.Colour,
		Captured: captured,
	}
	if r.IsKingInCheck(board, opponent) {
		outcome.Check = true
		outcome.Checked = opponent
	}
	return outcome
}
