package engine

import (
	"testing"

	"github.com/lgbarn/duel-chess/internal/chess"
)

var benchPlacements = map[string]string{
	"Initial":  InitialPlacement,
	"Midgame":  "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R",
	"Endgame":  "8/5k2/8/8/8/8/5K2/4R3",
	"Crowded":  "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R",
	"OpenFile": "4q3/8/8/8/8/8/8/4K3",
}

func BenchmarkIsKingInCheck(b *testing.B) {
	for name, fen := range benchPlacements {
		b.Run(name, func(b *testing.B) {
			board, _ := NewBoardFromPlacement(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				IsKingInCheck(board, chess.White)
			}
		})
	}
}

func BenchmarkIsMoveLegal_AllPairs(b *testing.B) {
	board, _ := NewBoardFromPlacement(benchPlacements["Midgame"])
	occupied := board.Occupied()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, occ := range occupied {
			for sq := 0; sq < chess.BoardSize*chess.BoardSize; sq++ {
				Standard.IsMoveLegal(board, occ.Square, chess.Sq(sq/chess.BoardSize, sq%chess.BoardSize))
			}
		}
	}
}

func BenchmarkApplyMove(b *testing.B) {
	for i := 0; i < b.N; i++ {
		board := chess.NewInitialBoard()
		ApplyMove(board, chess.Sq(6, 4), chess.Sq(4, 4))
	}
}

func BenchmarkPlacement_RoundTrip(b *testing.B) {
	fen := benchPlacements["Midgame"]
	for i := 0; i < b.N; i++ {
		board, _ := NewBoardFromPlacement(fen)
		BoardToPlacement(board)
	}
}
