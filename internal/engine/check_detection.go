package engine

import "github.com/lgbarn/duel-chess/internal/chess"

// IsKingInCheck returns true if the given colour's king is attacked under
// the literal rule set.
func IsKingInCheck(board *chess.Board, colour chess.Colour) bool {
	return Literal.IsKingInCheck(board, colour)
}

// IsKingInCheck returns true if any opposing piece could legally move onto
// the king's square. A board without that king is never in check.
func (r Rules) IsKingInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	_, found := r.findAttacker(board, king, colour.Opposite())
	return found
}

// Attackers returns every square holding a piece of byColour that could
// legally move onto sq, in row-major order.
func (r Rules) Attackers(board *chess.Board, sq chess.Square, byColour chess.Colour) []chess.Square {
	var out []chess.Square
	for _, occ := range board.Occupied() {
		if occ.Piece.Colour != byColour {
			continue
		}
		if r.IsMoveLegal(board, occ.Square, sq) {
			out = append(out, occ.Square)
		}
	}
	return out
}

// findAttacker returns the first piece of byColour that attacks sq.
func (r Rules) findAttacker(board *chess.Board, sq chess.Square, byColour chess.Colour) (chess.Square, bool) {
	for _, occ := range board.Occupied() {
		if occ.Piece.Colour != byColour {
			continue
		}
		if r.IsMoveLegal(board, occ.Square, sq) {
			return occ.Square, true
		}
	}
	return chess.Square{}, false
}
