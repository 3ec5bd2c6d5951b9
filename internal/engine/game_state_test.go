package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestEvaluateStatus(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want chess.Status
	}{
		{"start position", InitialFEN, chess.Status{}},
		{"check", "rnbqkbnr/ppppp1pp/5p2/7Q/4P3/8/PPPP1PPP/RNB1KBNR b KQkq - 1 2", chess.Status{Check: true}},
		{"fools mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", chess.Status{Check: true, Checkmate: true}},
		{"back rank mate", "3R2k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", chess.Status{Check: true, Checkmate: true}},
		{"smothered mate", "6rk/5Npp/8/8/8/8/8/6K1 b - - 0 1", chess.Status{Check: true, Checkmate: true}},
		{"check with escape", "3R2k1/5pp1/8/8/8/8/8/6K1 b - - 0 1", chess.Status{Check: true}},
		{"stalemate", "8/8/8/8/8/1q6/2k5/K7 w - - 0 1", chess.Status{Stalemate: true}},
		{"stalemate with blocked pawn", "7k/5Q2/8/8/8/8/p7/K7 b - - 0 1", chess.Status{Stalemate: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			got := EvaluateStatus(board)
			if got != tt.want {
				t.Errorf("EvaluateStatus() = %+v, want %+v", got, tt.want)
			}
			if IsCheckmate(board) != tt.want.Checkmate {
				t.Errorf("IsCheckmate() = %v, want %v", !tt.want.Checkmate, tt.want.Checkmate)
			}
			if IsStalemate(board) != tt.want.Stalemate {
				t.Errorf("IsStalemate() = %v, want %v", !tt.want.Stalemate, tt.want.Stalemate)
			}
		})
	}
}

func TestEvaluateStatus_InvalidSideToMove(t *testing.T) {
	board := mustBoard(t, InitialFEN)
	board.ToMove = chess.Colour(7)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, chesserrors.ErrInvariantViolation) {
			t.Errorf("EvaluateStatus panic = %v, want ErrInvariantViolation", r)
		}
	}()
	EvaluateStatus(board)
	t.Error("EvaluateStatus did not panic")
}

func TestMakeMove_KingCapturePanics(t *testing.T) {
	board := mustBoard(t, "4k3/8/8/8/8/8/8/4K2R w - - 0 1")
	board.Set(sq("h8"), chess.B(chess.King))
	board.Clear(sq("e8"))

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, chesserrors.ErrInvariantViolation) {
			t.Errorf("makeMove panic = %v, want ErrInvariantViolation", r)
		}
	}()
	makeMove(board, sq("h1"), sq("h8"), chess.Empty)
	t.Error("makeMove did not panic on a king capture")
}
