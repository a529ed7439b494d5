// Package errors provides sentinel errors and error types for duel-chess.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN piece-placement string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidFormat indicates move input that is not "<from> <to>".
	ErrInvalidFormat = errors.New("invalid move format")

	// ErrInvalidSquare indicates a square name outside a1-h8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrWrongPiece indicates the source square is empty or holds an
	// opponent's piece.
	ErrWrongPiece = errors.New("wrong piece")

	// ErrIllegalMove indicates a move that violates the movement rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move was attempted after a king was captured.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRoomFull indicates a third client tried to join a game room.
	ErrRoomFull = errors.New("room is full")

	// ErrNotYourTurn indicates a client moved out of turn.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrTooManyRooms indicates the server's room limit was reached.
	ErrTooManyRooms = errors.New("too many rooms")

	// ErrRoomNotFound indicates a request for a room that does not exist.
	ErrRoomNotFound = errors.New("room not found")
)

// MoveError wraps errors with game context: the ply being attempted, the
// side to move and the raw input. It implements the error interface and
// supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	Ply    int    // 1-based ply that was being attempted
	Player string // Side to move ("White" or "Black")
	Input  string // The text that was entered (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Player != "" {
		parts = append(parts, e.Player)
	}
	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Input))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents an input parsing error with position context.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The full input line
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Column > 0 {
		parts = append(parts, fmt.Sprintf("column %d", e.Column))
	}

	// Add expected/got context
	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %q", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	// Add underlying error
	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain matches target.
// It re-exports the standard library function so callers can import a
// single errors package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
