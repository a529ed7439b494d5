// Package output renders boards, game snapshots and player-facing messages
// as text or JSON.
package output

import (
	"bufio"
	"io"

	"github.com/lgbarn/duel-chess/internal/chess"
	"github.com/lgbarn/duel-chess/internal/config"
)

// ClearScreen is the ANSI sequence that homes the cursor and clears the
// terminal.
const ClearScreen = "\033[H\033[2J"

// RenderBoard writes the board as an 8x8 grid, rank 8 at the top. With
// coordinates on, each row is prefixed by its rank and the files are
// listed underneath.
func RenderBoard(w io.Writer, board *chess.Board, opts *config.DisplayConfig) error {
	if opts == nil {
		opts = config.NewDisplayConfig()
	}
	empty := opts.EmptySquare
	if empty == 0 {
		empty = '.'
	}

	bw := bufio.NewWriter(w)
	if opts.ClearScreen {
		bw.WriteString(ClearScreen)
	}

	for row := 0; row < chess.BoardSize; row++ {
		if opts.ShowCoordinates {
			bw.WriteByte(byte(chess.LastRank - row))
			bw.WriteByte(' ')
		}
		for col := 0; col < chess.BoardSize; col++ {
			if col > 0 {
				bw.WriteByte(' ')
			}
			piece := board.Get(chess.Sq(row, col))
			if piece.IsEmpty() {
				bw.WriteByte(empty)
			} else {
				bw.WriteByte(piece.Symbol())
			}
		}
		bw.WriteByte('\n')
	}

	if opts.ShowCoordinates {
		bw.WriteString("  ")
		for col := 0; col < chess.BoardSize; col++ {
			if col > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteByte(byte(chess.ColBase + col))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
