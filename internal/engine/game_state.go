package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// EvaluateStatus works out check, checkmate and stalemate for the side to
// move. It searches every move of that side, so it is run once per applied
// move rather than on every query.
func EvaluateStatus(board *chess.Board) chess.Status {
	if !board.ToMove.Valid() {
		panic(fmt.Errorf("side to move is %v: %w", board.ToMove, errors.ErrInvariantViolation))
	}

	inCheck := IsInCheck(board, board.ToMove)
	canMove := HasLegalMoves(board)
	return chess.Status{
		Check:     inCheck,
		Checkmate: inCheck && !canMove,
		Stalemate: !inCheck && !canMove,
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return IsInCheck(board, board.ToMove) && !HasLegalMoves(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return !IsInCheck(board, board.ToMove) && !HasLegalMoves(board)
}
