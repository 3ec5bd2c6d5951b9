package chess

// MoveRecord is one applied move as kept in a game's history.
type MoveRecord struct {
	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	From Square
	To   Square

	// The piece being moved, as it was before the move.
	Piece Piece

	// The piece captured (NoPiece if no capture). For en passant this is
	// the pawn removed from beside the destination.
	Captured Piece

	// The piece promoted to (Empty if not a promotion).
	PromotedTo PieceType

	// Whether this move gives check or checkmate.
	CheckStatus CheckStatus
}

// IsCapture returns true if this move is a capture.
func (m MoveRecord) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsEnPassant returns true if this move captured en passant.
func (m MoveRecord) IsEnPassant() bool {
	return m.Class == EnPassantPawnMove
}

// IsPromotion returns true if this move is a pawn promotion.
func (m MoveRecord) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsCastle returns true if this move is a castling move.
func (m MoveRecord) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// Pair returns the from/to/promotion triple that replays this move.
func (m MoveRecord) Pair() MovePair {
	return MovePair{From: m.From, To: m.To, Promotion: m.PromotedTo}
}

// Status is the check/checkmate/stalemate state of the side to move.
type Status struct {
	Check     bool
	Checkmate bool
	Stalemate bool
}

// CheckStatus converts the status to the per-move check annotation.
func (s Status) CheckStatus() CheckStatus {
	switch {
	case s.Checkmate:
		return Checkmate
	case s.Check:
		return Check
	default:
		return NoCheck
	}
}

// Snapshot is a read-only copy of a game's full state.
type Snapshot struct {
	Squares  [BoardSize][BoardSize]Piece
	ToMove   Colour
	Status   Status
	History  []MoveRecord
	Castling CastlingRights

	EnPassant bool
	EPSquare  Square

	HalfmoveClock uint
	MoveNumber    uint

	// Repetitions is how many times the current position has occurred in
	// the game, this occurrence included.
	Repetitions int

	// MaxRepetitions is the highest occurrence count of any position in
	// the game so far.
	MaxRepetitions int

	// InitialFEN is the position the history starts from.
	InitialFEN string
}

// Get returns the piece on a square of the snapshot.
func (s Snapshot) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return s.Squares[sq.Row][sq.Col]
}

// EnPassantTarget returns the en-passant target square, if any.
func (s Snapshot) EnPassantTarget() (Square, bool) {
	return s.EPSquare, s.EnPassant
}

// Board rebuilds a standalone board from the snapshot.
func (s Snapshot) Board() *Board {
	return &Board{
		Squares:       s.Squares,
		ToMove:        s.ToMove,
		Castling:      s.Castling,
		EnPassant:     s.EnPassant,
		EPSquare:      s.EPSquare,
		HalfmoveClock: s.HalfmoveClock,
		MoveNumber:    s.MoveNumber,
	}
}
