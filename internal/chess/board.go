package chess

import "fmt"

// Board represents a chess board: 64 cells indexed row-major, each holding
// a Piece or the empty value.
type Board struct {
	Squares [BoardSize * BoardSize]Piece
}

// Occupant pairs an occupied square with its piece.
type Occupant struct {
	Square Square
	Piece  Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board set up with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
// Black occupies rows 0-1 and White rows 6-7.
func (b *Board) SetupInitialPosition() {
	// Clear the board first
	b.Squares = [BoardSize * BoardSize]Piece{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.SetPiece(Sq(0, col), B(backRank[col]))
		b.SetPiece(Sq(1, col), B(Pawn))
		b.SetPiece(Sq(6, col), W(Pawn))
		b.SetPiece(Sq(7, col), W(backRank[col]))
	}
}

// index converts a square to its array index. An off-board square is a
// caller bug, so it panics rather than returning an error.
func index(sq Square) int {
	if !sq.Valid() {
		panic(fmt.Sprintf("chess: square %v is off the board", sq))
	}
	return sq.Row*BoardSize + sq.Col
}

// Get returns the piece at sq, or the empty value.
func (b *Board) Get(sq Square) Piece {
	return b.Squares[index(sq)]
}

// PieceAt returns the occupant of sq and whether there is one.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	p := b.Get(sq)
	return p, !p.IsEmpty()
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq).IsEmpty()
}

// SetPiece places a piece at sq, replacing any occupant.
func (b *Board) SetPiece(sq Square, piece Piece) {
	b.Squares[index(sq)] = piece
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Squares[index(sq)] = Piece{}
}

// FindKing returns the first king of the given colour in row-major order.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := Piece{Colour: colour, Kind: King}
	for i, p := range b.Squares {
		if p == king {
			return Sq(i/BoardSize, i%BoardSize), true
		}
	}
	return Square{}, false
}

// Occupied returns every occupied square in row-major order.
func (b *Board) Occupied() []Occupant {
	var out []Occupant
	for i, p := range b.Squares {
		if !p.IsEmpty() {
			out = append(out, Occupant{Square: Sq(i/BoardSize, i%BoardSize), Piece: p})
		}
	}
	return out
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Count returns how many pieces matching p are on the board.
func (b *Board) Count(p Piece) int {
	n := 0
	for _, sqp := range b.Squares {
		if sqp == p {
			n++
		}
	}
	return n
}
