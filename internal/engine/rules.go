// Package engine provides chess move validation and board manipulation.
package engine

import (
	"github.com/lgbarn/duel-chess/internal/chess"
)

// Rules selects between the literal rule set and its corrected variants.
// The zero value is the literal rule set.
type Rules struct {
	// BishopPathCheck requires the squares between a bishop and its
	// destination to be empty.
	BishopPathCheck bool

	// PawnDoubleStepFromHome allows the two-square pawn advance only from
	// the pawn's home row.
	PawnDoubleStepFromHome bool

	// CommitKingCapture moves the capturing piece onto the king's square
	// when a king is taken. Without it the board is left as it was.
	CommitKingCapture bool
}

// Literal is the default rule set: bishops ignore blockers, pawns may
// double-step from any row, and a king capture is reported but not played.
var Literal = Rules{}

// Standard corrects the three deviations of the literal rule set.
var Standard = Rules{
	BishopPathCheck:        true,
	PawnDoubleStepFromHome: true,
	CommitKingCapture:      true,
}

// IsMoveLegal reports whether the piece on from may move to to under the
// literal rule set.
func IsMoveLegal(board *chess.Board, from, to chess.Square) bool {
	return Literal.IsMoveLegal(board, from, to)
}

// IsMoveLegal reports whether the piece on from may move to to. It does not
// consider whether the move leaves the mover's own king attacked.
func (r Rules) IsMoveLegal(board *chess.Board, from, to chess.Square) bool {
	piece, ok := board.PieceAt(from)
	if !ok {
		return false
	}
	if target, occupied := board.PieceAt(to); occupied && target.Colour == piece.Colour {
		return false
	}

	rowDiff, colDiff := distance(from, to)

	switch piece.Kind {
	case chess.Pawn:
		return r.canPawnMove(board, piece.Colour, from, to)

	case chess.Knight:
		return (rowDiff == 2 && colDiff == 1) || (rowDiff == 1 && colDiff == 2)

	case chess.Bishop:
		if rowDiff != colDiff {
			return false
		}
		if r.BishopPathCheck {
			return isPathClear(board, from, to)
		}
		return true

	case chess.Rook:
		if (rowDiff == 0) == (colDiff == 0) {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Queen:
		if (rowDiff == 0) != (colDiff == 0) {
			return isPathClear(board, from, to)
		}
		if rowDiff == colDiff {
			return isPathClear(board, from, to)
		}
		return false

	case chess.King:
		return rowDiff <= 1 && colDiff <= 1
	}

	return false
}
