package engine_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestIsLegalMove_StartPosition(t *testing.T) {
	board := testutil.MustBoardFromFEN(t, engine.InitialFEN)

	var got []string
	for from := 0; from < 64; from++ {
		for to := 0; to < 64; to++ {
			f, d := chess.Sq(from/8, from%8), chess.Sq(to/8, to%8)
			if engine.IsLegalMove(board, f, d) {
				got = append(got, f.String()+d.String())
			}
		}
	}
	sort.Strings(got)

	want := []string{
		"a2a3", "a2a4", "b1a3", "b1c3", "b2b3", "b2b4", "c2c3", "c2c4",
		"d2d3", "d2d4", "e2e3", "e2e4", "f2f3", "f2f4", "g1f3", "g1h3",
		"g2g3", "g2g4", "h2h3", "h2h4",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("legal moves from the start position (-want +got):\n%s", diff)
	}
}

func TestLegalDestinations(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from chess.Square
		want []string
	}{
		{"pawn from start", engine.InitialFEN, chess.MustSquare("e2"), []string{"e3", "e4"}},
		{"knight from start", engine.InitialFEN, chess.MustSquare("g1"), []string{"f3", "h3"}},
		{"boxed in rook", engine.InitialFEN, chess.MustSquare("a1"), nil},
		{"empty square", engine.InitialFEN, chess.MustSquare("e4"), nil},
		{"piece of the side not to move", engine.InitialFEN, chess.MustSquare("e7"), nil},
		{"off board", engine.InitialFEN, chess.Sq(9, 9), nil},
		{"pinned bishop", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", chess.MustSquare("e2"), nil},
		{"rook pinned along file", "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1", chess.MustSquare("e2"), []string{"e3", "e4", "e5", "e6", "e7"}},
		{"king avoids attacked squares", "4k3/8/8/8/8/8/3r4/4K3 w - - 0 1", chess.MustSquare("e1"), []string{"d2", "f1"}},
		{"king escapes check", "4k3/8/8/8/8/8/4r3/4K1N1 w - - 0 1", chess.MustSquare("e1"), []string{"d1", "e2", "f1"}},
		{"knight captures checker", "4k3/8/8/8/8/8/4r3/4K1N1 w - - 0 1", chess.MustSquare("g1"), []string{"e2"}},
		{"castling both sides", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", chess.MustSquare("e1"), []string{"c1", "d1", "d2", "e2", "f1", "f2", "g1"}},
		{"black to move", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", chess.MustSquare("e8"), []string{"c8", "d7", "d8", "e7", "f7", "f8", "g8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoardFromFEN(t, tt.fen)
			got := engine.LegalDestinations(board, tt.from)
			testutil.AssertSameSquares(t, got, testutil.Squares(tt.want...))
		})
	}
}

func TestLegalDestinations_Order(t *testing.T) {
	board := testutil.MustBoardFromFEN(t, "4k3/8/8/8/3Q4/8/8/4K3 w - - 0 1")
	got := engine.LegalDestinations(board, chess.MustSquare("d4"))

	sorted := sort.SliceIsSorted(got, func(i, j int) bool {
		if got[i].Row != got[j].Row {
			return got[i].Row < got[j].Row
		}
		return got[i].Col < got[j].Col
	})
	testutil.AssertTrue(t, sorted, "destinations in a1..h8 order: %v", testutil.SquareNames(got))
	testutil.AssertEqual(t, len(got), 27)
}

func TestLegalMoves_ExpandsPromotions(t *testing.T) {
	board := testutil.MustBoardFromFEN(t, "4k3/1P6/8/8/8/8/8/K7 w - - 0 1")

	var promotions []chess.PieceType
	for _, mp := range engine.LegalMoves(board) {
		if mp.From == chess.MustSquare("b7") {
			testutil.AssertEqual(t, mp.To, chess.MustSquare("b8"))
			promotions = append(promotions, mp.Promotion)
		}
	}
	testutil.AssertEqual(t, promotions, []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight})
}

func TestHasLegalMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"start position", engine.InitialFEN, true},
		{"stalemate", "8/8/8/8/8/1q6/2k5/K7 w - - 0 1", false},
		{"checkmate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", false},
		{"only the king moves", "4k3/8/8/8/8/8/8/4K3 b - - 0 1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoardFromFEN(t, tt.fen)
			testutil.AssertEqual(t, engine.HasLegalMoves(board), tt.want)
		})
	}
}
