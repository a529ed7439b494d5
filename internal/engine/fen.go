package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/duel-chess/internal/chess"
	"github.com/lgbarn/duel-chess/internal/errors"
)

// InitialPlacement is the FEN piece-placement field of the starting position.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c byte) chess.Kind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.None
	}
}

// NewBoardFromPlacement creates a board from a FEN piece-placement field.
// Any fields after the first (side to move, castling, ...) are ignored,
// since the board carries none of that state.
func NewBoardFromPlacement(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Ranks run from row 0 (rank 8) down to row 7 (rank 1).
func parsePiecePositions(board *chess.Board, positions string) error {
	rows := strings.Split(positions, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(rows), errors.ErrInvalidFEN)
	}

	for row, text := range rows {
		col := 0
		for _, c := range text {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				kind := ConvertFENCharToKind(byte(c))
				if kind == chess.None {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col >= chess.BoardSize {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.SetPiece(chess.Sq(row, col), chess.Piece{Colour: colour, Kind: kind})
				col++
			}
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %c has %d squares: %w", chess.LastRank-row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// BoardToPlacement converts a board to a FEN piece-placement field.
func BoardToPlacement(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(chess.Sq(row, col))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
