package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Square is a board coordinate. Row 0 is rank 1 and Col 0 is file a.
type Square struct {
	Row int
	Col int
}

// Sq creates a square from a row and column.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid returns true if both coordinates are in [0,7].
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{s.File(), s.Rank()})
}

// File returns the file letter 'a'-'h'.
func (s Square) File() byte {
	return byte(ColBase + s.Col)
}

// Rank returns the rank digit '1'-'8'.
func (s Square) Rank() byte {
	return byte(RankBase + s.Row)
}

// Offset returns the square dr rows and dc columns away. The result may be off the board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// ParseSquare converts an algebraic square name like "e4" to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	sq := Square{Row: int(name[1]) - RankBase, Col: int(name[0]) - ColBase}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// MustSquare is like ParseSquare but panics on a bad name. Intended for
// constants and tests.
func MustSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}
