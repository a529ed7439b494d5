package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/duel-chess/internal/chess"
)

// BoardFromDiagram builds a board from eight lines of eight characters,
// top line first (rank 8, row 0). Letters follow the usual convention,
// uppercase White and lowercase Black; '.' is an empty square. Blank lines
// and spaces are ignored so diagrams can be indented in test tables.
func BoardFromDiagram(diagram string) (*chess.Board, error) {
	var rows []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.ReplaceAll(line, " ", "")
		line = strings.ReplaceAll(line, "\t", "")
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != chess.BoardSize {
		return nil, fmt.Errorf("diagram has %d rows, want %d", len(rows), chess.BoardSize)
	}

	board := chess.NewBoard()
	for row, line := range rows {
		if len(line) != chess.BoardSize {
			return nil, fmt.Errorf("diagram row %d has %d squares, want %d", row, len(line), chess.BoardSize)
		}
		for col := 0; col < chess.BoardSize; col++ {
			c := line[col]
			if c == '.' {
				continue
			}
			piece, ok := pieceFromLetter(c)
			if !ok {
				return nil, fmt.Errorf("diagram row %d: unknown piece %q", row, c)
			}
			board.SetPiece(chess.Sq(row, col), piece)
		}
	}
	return board, nil
}

// MustBoard is BoardFromDiagram that fails the test on error.
func MustBoard(t testing.TB, diagram string) *chess.Board {
	t.Helper()
	board, err := BoardFromDiagram(diagram)
	if err != nil {
		t.Fatalf("bad test diagram: %v\n%s", err, diagram)
	}
	return board
}

// Diagram renders a board in the format BoardFromDiagram reads.
func Diagram(board *chess.Board) string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteByte(board.Get(chess.Sq(row, col)).Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func pieceFromLetter(c byte) (chess.Piece, bool) {
	colour := chess.White
	upper := c
	if c >= 'a' && c <= 'z' {
		colour = chess.Black
		upper = c - ('a' - 'A')
	}
	for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
		if kind.Letter() == upper {
			return chess.Piece{Colour: colour, Kind: kind}, true
		}
	}
	return chess.Piece{}, false
}
