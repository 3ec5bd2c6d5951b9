package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// CastlingRights holds the four independent castling rights. A right only
// ever goes from true to false during a game.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the set of rights at the start of a game.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Has returns the right for a colour and side.
func (r CastlingRights) Has(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return r.WhiteKingside
	case colour == White:
		return r.WhiteQueenside
	case kingside:
		return r.BlackKingside
	default:
		return r.BlackQueenside
	}
}

// Clear removes the right for a colour and side.
func (r *CastlingRights) Clear(colour Colour, kingside bool) {
	switch {
	case colour == White && kingside:
		r.WhiteKingside = false
	case colour == White:
		r.WhiteQueenside = false
	case kingside:
		r.BlackKingside = false
	default:
		r.BlackQueenside = false
	}
}

// ClearColour removes both rights of a colour.
func (r *CastlingRights) ClearColour(colour Colour) {
	r.Clear(colour, true)
	r.Clear(colour, false)
}

// Board represents a chess board with all state needed for the game.
type Board struct {
	// Squares is indexed [row][col]; row 0 is rank 1, col 0 is file a.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	Castling CastlingRights

	// Is EnPassant capture possible? If so then EPSquare is the square
	// the last double-stepping pawn skipped over.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number.
	MoveNumber uint
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position and
// resets every piece of game state to its initial value.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[HomeRow(White)][col] = W(backRank[col])
		b.Squares[PawnStartRow(White)][col] = W(Pawn)
		b.Squares[PawnStartRow(Black)][col] = B(Pawn)
		b.Squares[HomeRow(Black)][col] = B(backRank[col])
	}

	b.Castling = AllCastlingRights
	b.ToMove = White
	b.MoveNumber = 1
}

// Get returns the piece on a square. Off-board squares read as empty.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece on a square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// Clear empties a square.
func (b *Board) Clear(sq Square) {
	b.Set(sq, NoPiece)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col].Is(colour, King) {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// MustFindKing is FindKing for positions where a missing king is a bug.
// It panics with an error wrapping errors.ErrInvariantViolation.
func (b *Board) MustFindKing(colour Colour) Square {
	sq, ok := b.FindKing(colour)
	if !ok {
		panic(fmt.Errorf("no %s king on the board: %w", colour, errors.ErrInvariantViolation))
	}
	return sq
}

// CountKings returns how many kings of a colour are on the board.
func (b *Board) CountKings(colour Colour) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col].Is(colour, King) {
				n++
			}
		}
	}
	return n
}

// MovePair represents a source-destination square pair, with the
// promotion piece for pawn moves onto the last rank.
type MovePair struct {
	From      Square
	To        Square
	Promotion PieceType
}

// String returns the coordinate form of the move, e.g. "e2e4" or "e7e8q".
func (m MovePair) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}
