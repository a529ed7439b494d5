package testutil

import (
	"testing"

	"github.com/lgbarn/duel-chess/internal/chess"
)

func TestBoardFromDiagram(t *testing.T) {
	board := MustBoard(t, `
		rnbqkbnr
		pppppppp
		........
		........
		........
		........
		PPPPPPPP
		RNBQKBNR
	`)

	initial := chess.NewInitialBoard()
	AssertEqual(t, board.Squares, initial.Squares, "diagram of the initial position")
	AssertEqual(t, Diagram(board), Diagram(initial))
}

func TestBoardFromDiagram_Errors(t *testing.T) {
	tests := []struct {
		name    string
		diagram string
	}{
		{"too few rows", "........\n........"},
		{"short row", "........\n........\n........\n........\n........\n........\n........\n......."},
		{"unknown piece", "x.......\n........\n........\n........\n........\n........\n........\n........"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BoardFromDiagram(tt.diagram)
			AssertError(t, err)
		})
	}
}
