package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func mustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

func sq(name string) chess.Square {
	return chess.MustSquare(name)
}
