package engine

import "github.com/lgbarn/duel-chess/internal/chess"

// canPawnMove checks a pawn advance, double advance or diagonal capture.
// Direction depends on the pawn's own colour, so the same rule serves
// both move validation and attack detection.
func (r Rules) canPawnMove(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	direction := colour.Forward()
	rowDiff := to.Row - from.Row
	colDiff := to.Col - from.Col

	target, occupied := board.PieceAt(to)

	switch {
	case rowDiff == direction && colDiff == 0:
		return !occupied

	case rowDiff == direction && (colDiff == 1 || colDiff == -1):
		return occupied && target.Colour != colour

	case rowDiff == 2*direction && colDiff == 0:
		if r.PawnDoubleStepFromHome && from.Row != colour.HomeRow() {
			return false
		}
		middle := chess.Sq(from.Row+direction, from.Col)
		return board.IsEmpty(middle) && !occupied
	}

	return false
}
