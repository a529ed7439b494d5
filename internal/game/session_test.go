package game

import (
	"testing"

	"github.com/lgbarn/duel-chess/internal/chess"
	"github.com/lgbarn/duel-chess/internal/engine"
	"github.com/lgbarn/duel-chess/internal/errors"
	"github.com/lgbarn/duel-chess/internal/testutil"
)

func TestSession_TurnAlternates(t *testing.T) {
	s := NewSession(engine.Literal)
	testutil.AssertEqual(t, s.Turn(), chess.White)

	report, err := s.Play("e2 e4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, report.Ply, 1)
	testutil.AssertEqual(t, report.Piece, chess.W(chess.Pawn))
	testutil.AssertEqual(t, report.Outcome.Kind, engine.Applied)
	testutil.AssertEqual(t, s.Turn(), chess.Black)

	_, err = s.Play("e7e5")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, s.Turn(), chess.White)
	testutil.AssertEqual(t, s.Ply(), 2)
}

func TestSession_Errors(t *testing.T) {
	tests := []struct {
		name   string
		setup  []string
		input  string
		want   error
		player string
		ply    int
	}{
		{"bad format", nil, "e2e4e6", errors.ErrInvalidFormat, "White", 1},
		{"bad square", nil, "e2 e9", errors.ErrInvalidSquare, "White", 1},
		{"empty source", nil, "e4 e5", errors.ErrWrongPiece, "White", 1},
		{"opponent piece", nil, "e7 e5", errors.ErrWrongPiece, "White", 1},
		{"white moves twice", []string{"e2 e4"}, "d2 d4", errors.ErrWrongPiece, "Black", 2},
		{"illegal pawn move", nil, "e2 e5", errors.ErrIllegalMove, "White", 1},
		{"knight blocked by own piece", nil, "g1 e2", errors.ErrIllegalMove, "White", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(engine.Literal)
			for _, in := range tt.setup {
				_, err := s.Play(in)
				testutil.AssertNoError(t, err, "setup move %q", in)
			}

			before := s.Snapshot()
			_, err := s.Play(tt.input)
			testutil.AssertErrorIs(t, err, tt.want)

			var moveErr *errors.MoveError
			testutil.AssertTrue(t, errors.As(err, &moveErr), "want *MoveError, got %T", err)
			testutil.AssertEqual(t, moveErr.Player, tt.player)
			testutil.AssertEqual(t, moveErr.Ply, tt.ply)

			// A failed move changes nothing.
			testutil.AssertEqual(t, s.Snapshot(), before)
		})
	}
}

func TestSession_KingCaptureEndsGame(t *testing.T) {
	diagram := `
		....k...
		........
		........
		........
		........
		........
		....Q...
		....K...`

	tests := []struct {
		name      string
		rules     engine.Rules
		wantAfter chess.Piece // what stands on e8 afterwards
	}{
		{"literal leaves the king", engine.Literal, chess.B(chess.King)},
		{"standard takes the square", engine.Standard, chess.W(chess.Queen)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSessionFromBoard(testutil.MustBoard(t, diagram), tt.rules, chess.White)

			report, err := s.Play("e2 e8")
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, report.Outcome.Kind, engine.KingCaptured)
			testutil.AssertEqual(t, s.Status(), Concluded)

			winner, over := s.Winner()
			testutil.AssertTrue(t, over)
			testutil.AssertEqual(t, winner, chess.White)

			snap := s.Snapshot()
			testutil.AssertEqual(t, snap.Board.Get(chess.Sq(0, 4)), tt.wantAfter)

			_, err = s.Play("e8 e7")
			testutil.AssertErrorIs(t, err, errors.ErrGameOver)
		})
	}
}

func TestSession_CheckIsReported(t *testing.T) {
	s := NewSession(engine.Literal)
	for _, in := range []string{"e2 e4", "f7 f6"} {
		_, err := s.Play(in)
		testutil.AssertNoError(t, err)
	}

	report, err := s.Play("d1 h5")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, report.Outcome.Check)
	testutil.AssertEqual(t, report.Outcome.Checked, chess.Black)

	snap := s.Snapshot()
	testutil.AssertTrue(t, snap.InCheck)
	testutil.AssertEqual(t, snap.Turn, chess.Black)
	testutil.AssertEqual(t, snap.CheckedBy, []chess.Square{chess.Sq(3, 7)})

	// Black blocks on g6; White is not in check afterwards.
	_, err = s.Play("g7 g6")
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, s.Snapshot().InCheck)
}

func TestSession_Move(t *testing.T) {
	s := NewSession(engine.Literal)

	report, err := s.Move(chess.Sq(7, 6), chess.Sq(5, 5))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, report.Move.Text, "g1 f3")
	testutil.AssertEqual(t, report.Piece, chess.W(chess.Knight))

	_, err = s.Move(chess.Sq(-1, 0), chess.Sq(0, 0))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidSquare)
}

func TestSession_Reset(t *testing.T) {
	s := NewSession(engine.Standard)
	_, err := s.Play("e2 e4")
	testutil.AssertNoError(t, err)

	s.Reset()
	testutil.AssertEqual(t, s.Ply(), 0)
	testutil.AssertEqual(t, s.Turn(), chess.White)
	testutil.AssertEqual(t, s.Status(), InProgress)
	testutil.AssertEqual(t, s.Rules(), engine.Standard)
	testutil.AssertEqual(t, s.Snapshot().Board, chess.NewInitialBoard())
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := NewSession(engine.Literal)
	snap := s.Snapshot()
	snap.Board.Clear(chess.Sq(6, 4))

	_, err := s.Play("e2 e4")
	testutil.AssertNoError(t, err)
}

func TestNewSessionFromBoard_CopiesBoard(t *testing.T) {
	board := chess.NewInitialBoard()
	s := NewSessionFromBoard(board, engine.Literal, chess.White)

	board.Clear(chess.Sq(6, 4))
	board.SetPiece(chess.Sq(4, 4), chess.B(chess.Queen))

	testutil.AssertEqual(t, s.Snapshot().Board, chess.NewInitialBoard())
	_, err := s.Play("e2 e4")
	testutil.AssertNoError(t, err)
}

func TestSession_ResetReturnsToStart(t *testing.T) {
	diagram := `
		....k...
		........
		........
		........
		........
		........
		....R...
		....K...`

	tests := []struct {
		name      string
		turn      chess.Colour
		move      string
		wantCheck bool
	}{
		{"white to move", chess.White, "e2 e7", false},
		{"black to move in check", chess.Black, "e8 d8", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := testutil.MustBoard(t, diagram)
			s := NewSessionFromBoard(start, engine.Literal, tt.turn)
			testutil.AssertEqual(t, s.Snapshot().InCheck, tt.wantCheck)

			_, err := s.Play(tt.move)
			testutil.AssertNoError(t, err)

			s.Reset()
			snap := s.Snapshot()
			testutil.AssertEqual(t, snap.Board, start)
			testutil.AssertEqual(t, snap.Turn, tt.turn)
			testutil.AssertEqual(t, snap.Ply, 0)
			testutil.AssertEqual(t, snap.InCheck, tt.wantCheck)
		})
	}
}

func TestStatusString(t *testing.T) {
	testutil.AssertEqual(t, InProgress.String(), "in progress")
	testutil.AssertEqual(t, Concluded.String(), "concluded")
}
