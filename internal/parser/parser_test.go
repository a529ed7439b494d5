package parser

import (
	"testing"

	"github.com/lgbarn/duel-chess/internal/chess"
	"github.com/lgbarn/duel-chess/internal/errors"
	"github.com/lgbarn/duel-chess/internal/testutil"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in   string
		want chess.Square
	}{
		{"a8", chess.Sq(0, 0)},
		{"h8", chess.Sq(0, 7)},
		{"a1", chess.Sq(7, 0)},
		{"h1", chess.Sq(7, 7)},
		{"e2", chess.Sq(6, 4)},
		{"e4", chess.Sq(4, 4)},
		{"E4", chess.Sq(4, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestParseSquare_Invalid(t *testing.T) {
	for _, in := range []string{"", "e", "e22", "i1", "a0", "a9", "11", "ee"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseSquare(in)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidSquare, "ParseSquare(%q)", in)
		})
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		name string
		in   string
		from chess.Square
		to   chess.Square
	}{
		{"space separated", "e2 e4", chess.Sq(6, 4), chess.Sq(4, 4)},
		{"dash separated", "e2-e4", chess.Sq(6, 4), chess.Sq(4, 4)},
		{"any separator", "g1xf3", chess.Sq(7, 6), chess.Sq(5, 5)},
		{"compact", "b1a3", chess.Sq(7, 1), chess.Sq(5, 0)},
		{"surrounding whitespace", "  e7 e5\n", chess.Sq(1, 4), chess.Sq(3, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMove(tt.in)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got.From, tt.from)
			testutil.AssertEqual(t, got.To, tt.to)
		})
	}
}

func TestParseMove_Errors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   error
		column int
	}{
		{"empty", "", errors.ErrInvalidFormat, 0},
		{"too short", "e2e", errors.ErrInvalidFormat, 0},
		{"too long", "e2  e4", errors.ErrInvalidFormat, 0},
		{"bad source", "z2 e4", errors.ErrInvalidSquare, 1},
		{"bad destination", "e2 e9", errors.ErrInvalidSquare, 4},
		{"bad compact destination", "e2e0", errors.ErrInvalidSquare, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMove(tt.in)
			testutil.AssertErrorIs(t, err, tt.want, "ParseMove(%q)", tt.in)

			var pe *errors.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("ParseMove(%q) error %T is not a *ParseError", tt.in, err)
			}
			testutil.AssertEqual(t, pe.Column, tt.column, "column for %q", tt.in)
		})
	}
}

func TestMoveString(t *testing.T) {
	m, err := ParseMove("g1-f3")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.String(), "g1 f3")
	testutil.AssertEqual(t, m.Text, "g1-f3")
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want CommandKind
	}{
		{"quit", QuitCommand},
		{"  EXIT ", QuitCommand},
		{"q", QuitCommand},
		{"new", NewGameCommand},
		{"board", BoardCommand},
		{"help", HelpCommand},
		{"?", HelpCommand},
		{"e2 e4", MoveCommand},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCommand(tt.in)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got.Kind, tt.want)
		})
	}

	t.Run("move payload", func(t *testing.T) {
		got, _ := ParseCommand("d7 d5")
		testutil.AssertEqual(t, got.Move.From, chess.Sq(1, 3))
		testutil.AssertEqual(t, got.Move.To, chess.Sq(3, 3))
	})

	t.Run("unknown word", func(t *testing.T) {
		_, err := ParseCommand("castle")
		testutil.AssertErrorIs(t, err, errors.ErrInvalidFormat)
	})
}
