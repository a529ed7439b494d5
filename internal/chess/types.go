// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"strings"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour converts "white"/"black" (any case, or "w"/"b") to a Colour.
func ParseColour(s string) (Colour, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	}
	return White, false
}

// Forward returns the row delta of a pawn advance: White moves toward row 0.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRow returns the row a colour's pawns start on.
func (c Colour) HomeRow() int {
	if c == White {
		return 6
	}
	return 1
}

// Kind represents a chess piece type. None marks an empty square.
type Kind int

const (
	None Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is the content of a square. The zero value is an empty square.
type Piece struct {
	Colour Colour
	Kind   Kind
}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Colour: White, Kind: kind}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Colour: Black, Kind: kind}
}

// IsEmpty reports whether p is the empty square value.
func (p Piece) IsEmpty() bool {
	return p.Kind == None
}

// Symbol returns the piece letter, uppercase for White and lowercase for Black.
// Empty squares render as '.'.
func (p Piece) Symbol() byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		return letter + ('a' - 'A')
	}
	return letter
}

// String returns e.g. "White Knight" or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
	LastRank = RankBase + BoardSize - 1
	LastCol  = ColBase + BoardSize - 1
)

// Square addresses a board cell. Row 0 is Black's back rank (rank 8),
// row 7 is White's (rank 1). Col 0 is file 'a'.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether both coordinates are on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// File returns the file letter 'a'-'h'.
func (s Square) File() byte {
	return byte(ColBase + s.Col)
}

// Rank returns the rank digit '1'-'8'.
func (s Square) Rank() byte {
	return byte(LastRank - s.Row)
}

// String returns the algebraic name of the square, e.g. "e2".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{s.File(), s.Rank()})
}

// SquareFromCoords converts a file letter and rank digit to a Square.
// The second result is false when either character is off the board.
func SquareFromCoords(file, rank byte) (Square, bool) {
	if file < ColBase || file > LastCol || rank < RankBase || rank > LastRank {
		return Square{}, false
	}
	return Square{Row: int(LastRank - rank), Col: int(file - ColBase)}, true
}
