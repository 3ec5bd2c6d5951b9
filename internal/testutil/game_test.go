package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestMustPlay(t *testing.T) {
	g := MustGameFromFEN(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	MustPlay(t, g, "e2e4", "e8d7")

	s := g.Snapshot()
	AssertEqual(t, s.Get(chess.MustSquare("e4")).Type, chess.Pawn)
	AssertEqual(t, len(s.History), 2)
}

func TestMustBoardFromFEN(t *testing.T) {
	board := MustBoardFromFEN(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	AssertTrue(t, board.Castling.WhiteKingside)
	AssertFalse(t, board.Get(chess.MustSquare("h1")).HasMoved)
}

func TestSquares(t *testing.T) {
	AssertEqual(t, Squares("a1", "h8"), []chess.Square{chess.Sq(0, 0), chess.Sq(7, 7)})
}
