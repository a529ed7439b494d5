package engine

import (
	"cmp"

	"github.com/lgbarn/duel-chess/internal/chess"
)

// distance returns how many rows and columns separate two squares.
func distance(from, to chess.Square) (rows, cols int) {
	return max(to.Row-from.Row, from.Row-to.Row), max(to.Col-from.Col, from.Col-to.Col)
}

// step returns the one-square offset that leads from toward to.
func step(from, to chess.Square) (dr, dc int) {
	return cmp.Compare(to.Row, from.Row), cmp.Compare(to.Col, from.Col)
}

// isPathClear reports whether every square strictly between from and to is
// empty. The squares must share a rank, file or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	dr, dc := step(from, to)
	for sq := chess.Sq(from.Row+dr, from.Col+dc); sq != to; sq = chess.Sq(sq.Row+dr, sq.Col+dc) {
		if !board.IsEmpty(sq) {
			return false
		}
	}
	return true
}
