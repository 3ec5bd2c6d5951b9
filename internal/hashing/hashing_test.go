package hashing_test

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestPositionKeyConsistency(t *testing.T) {
	// Two identical boards produce the same key
	board1 := chess.NewInitialBoard()
	board2 := testutil.MustBoardFromFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

	if k1, k2 := hashing.PositionKey(board1, true), hashing.PositionKey(board2, true); k1 != k2 {
		t.Errorf("identical boards produced different keys: %x != %x", k1, k2)
	}
}

func TestPositionKeyIgnoresClocks(t *testing.T) {
	a := testutil.MustBoardFromFEN(t, "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	b := testutil.MustBoardFromFEN(t, "4k3/8/8/8/8/8/8/R3K3 w Q - 37 60")

	if hashing.PositionKey(a, false) != hashing.PositionKey(b, false) {
		t.Error("halfmove clock and move number changed the key")
	}
}

func TestPositionKeyDistinguishes(t *testing.T) {
	base := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"
	tests := []struct {
		name  string
		other string
	}{
		{"side to move", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1"},
		{"castling rights", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b Kkq - 0 1"},
		{"piece placement", "rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq - 0 1"},
		{"piece colour", "rnbqkbnr/pppppppp/8/8/4p3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"},
	}

	baseKey := hashing.PositionKey(testutil.MustBoardFromFEN(t, base), false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := hashing.PositionKey(testutil.MustBoardFromFEN(t, tt.other), false)
			if key == baseKey {
				t.Errorf("%s did not change the key", tt.name)
			}
		})
	}
}

func TestPositionKeyEnPassant(t *testing.T) {
	board := testutil.MustBoardFromFEN(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	without := testutil.MustBoardFromFEN(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq - 0 3")

	if hashing.PositionKey(board, true) == hashing.PositionKey(without, true) {
		t.Error("en-passant file did not change the key")
	}
	if hashing.PositionKey(board, false) != hashing.PositionKey(without, false) {
		t.Error("en-passant target changed the key although it was excluded")
	}
}

func TestPositionCounter(t *testing.T) {
	c := hashing.NewPositionCounter()

	testutil.AssertEqual(t, c.Add(1), 1)
	testutil.AssertEqual(t, c.Add(2), 1)
	testutil.AssertEqual(t, c.Add(1), 2)
	testutil.AssertEqual(t, c.Add(1), 3)

	testutil.AssertEqual(t, c.MaxCount(), 3)
	testutil.AssertEqual(t, c.Add(2), 2)
	testutil.AssertEqual(t, c.MaxCount(), 3)

	c.Reset()
	testutil.AssertEqual(t, c.MaxCount(), 0)
	testutil.AssertEqual(t, c.Add(1), 1)
	testutil.AssertEqual(t, c.MaxCount(), 1)
}
