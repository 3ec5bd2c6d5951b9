package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// MustGameFromFEN starts a game from fen, failing the test if the FEN is rejected.
func MustGameFromFEN(t testing.TB, fen string) *engine.Game {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return g
}

// MustBoardFromFEN parses fen into a board, failing the test on error.
func MustBoardFromFEN(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

// MustPlay applies coordinate moves such as "e2e4" in order and stops the
// test at the first one the game rejects.
func MustPlay(t testing.TB, g *engine.Game, moves ...string) {
	t.Helper()
	for i, m := range moves {
		if err := g.ApplyMoveText(m); err != nil {
			t.Fatalf("ply %d: %v (position %s)", i+1, err, g.FEN())
		}
	}
}

// Squares converts algebraic names to squares, panicking on a bad name.
func Squares(names ...string) []chess.Square {
	squares := make([]chess.Square, len(names))
	for i, name := range names {
		squares[i] = chess.MustSquare(name)
	}
	return squares
}
