// Package parser reads the text commands typed by players: coordinate
// moves such as "e2 e4" and a handful of control words.
package parser

import (
	"strings"

	"github.com/lgbarn/duel-chess/internal/chess"
	"github.com/lgbarn/duel-chess/internal/errors"
)

// Move is a parsed coordinate move.
type Move struct {
	From chess.Square
	To   chess.Square
	Text string // input as typed, whitespace-trimmed
}

// String returns the move in "e2 e4" form.
func (m Move) String() string {
	return m.From.String() + " " + m.To.String()
}

// ParseSquare converts a square name such as "e2" to a Square.
// File 'a'-'h' maps to col 0-7; rank '1'-'8' maps to row '8'-rank.
func ParseSquare(s string) (chess.Square, error) {
	return parseSquareAt(s, 1)
}

// parseSquareAt parses a square name that starts at the given 1-based column
// of the input line, for error reporting.
func parseSquareAt(s string, column int) (chess.Square, error) {
	if len(s) != 2 {
		return chess.Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Column:   column,
			Expected: "square a1-h8",
			Got:      s,
		}
	}
	file := lower(s[0])
	sq, ok := chess.SquareFromCoords(file, s[1])
	if !ok {
		return chess.Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Column:   column,
			Expected: "square a1-h8",
			Got:      s,
		}
	}
	return sq, nil
}

// ParseMove parses "<from> <to>". The five-character form has the squares at
// offsets 0-1 and 3-4 and ignores the separator between them, so "e2 e4",
// "e2-e4" and "e2xe4" are all accepted. The four-character "e2e4" form is
// also read. Surrounding whitespace is trimmed first.
func ParseMove(input string) (Move, error) {
	text := strings.TrimSpace(input)

	var fromText, toText string
	toColumn := 0
	switch len(text) {
	case 4:
		fromText, toText, toColumn = text[0:2], text[2:4], 3
	case 5:
		fromText, toText, toColumn = text[0:2], text[3:5], 4
	default:
		return Move{}, &errors.ParseError{
			Err:      errors.ErrInvalidFormat,
			Input:    text,
			Expected: `"<from> <to>" such as "e2 e4"`,
			Got:      text,
		}
	}

	from, err := parseSquareAt(fromText, 1)
	if err != nil {
		return Move{}, withInput(err, text)
	}
	to, err := parseSquareAt(toText, toColumn)
	if err != nil {
		return Move{}, withInput(err, text)
	}

	return Move{From: from, To: to, Text: text}, nil
}

// withInput records the whole line on a square error.
func withInput(err error, line string) error {
	var pe *errors.ParseError
	if errors.As(err, &pe) {
		pe.Input = line
	}
	return err
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
