// Package hashing provides Zobrist keys for chess positions and counts how
// often a game reaches each position.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

const numSquares = chess.BoardSize * chess.BoardSize

// Zobrist keys, indexed by colour, piece type and square.
var (
	pieceKeys     [2][chess.King + 1][numSquares]uint64
	castlingKeys  [16]uint64
	enPassantKeys [chess.BoardSize]uint64
	blackToMove   uint64
)

func init() {
	// Fixed seed: keys are identical in every run.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for c := range pieceKeys {
		for p := chess.Pawn; p <= chess.King; p++ {
			for sq := 0; sq < numSquares; sq++ {
				pieceKeys[c][p][sq] = rnd.Uint64()
			}
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = rnd.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = rnd.Uint64()
	}
	blackToMove = rnd.Uint64()
}

// PositionKey returns the Zobrist key of a position: pieces, side to move
// and castling rights. The en-passant file is mixed in only when
// withEnPassant is set; callers pass true when the capture is actually
// available, so that an unusable target square does not make two otherwise
// identical positions differ.
func PositionKey(board *chess.Board, withEnPassant bool) uint64 {
	var key uint64

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p.IsEmpty() {
				continue
			}
			key ^= pieceKeys[p.Colour][p.Type][row*chess.BoardSize+col]
		}
	}

	if board.ToMove == chess.Black {
		key ^= blackToMove
	}
	key ^= castlingKeys[castlingIndex(board.Castling)]
	if withEnPassant && board.EnPassant {
		key ^= enPassantKeys[board.EPSquare.Col]
	}
	return key
}

// castlingIndex packs the four castling rights into 0-15.
func castlingIndex(r chess.CastlingRights) int {
	idx := 0
	for i, has := range []bool{r.WhiteKingside, r.WhiteQueenside, r.BlackKingside, r.BlackQueenside} {
		if has {
			idx |= 1 << i
		}
	}
	return idx
}

// PositionCounter tracks how many times each position has been reached.
type PositionCounter struct {
	counts   map[uint64]int
	maxCount int
}

// NewPositionCounter creates an empty counter.
func NewPositionCounter() *PositionCounter {
	return &PositionCounter{counts: make(map[uint64]int)}
}

// Add records one more occurrence of key and returns its new count.
func (c *PositionCounter) Add(key uint64) int {
	c.counts[key]++
	n := c.counts[key]
	if n > c.maxCount {
		c.maxCount = n
	}
	return n
}

// MaxCount returns the highest count of any position.
func (c *PositionCounter) MaxCount() int {
	return c.maxCount
}

// Reset clears all counts.
func (c *PositionCounter) Reset() {
	c.counts = make(map[uint64]int)
	c.maxCount = 0
}
