package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CanMove reports whether the piece on from may move to to under its own
// movement rules: geometry, path clearance, the pawn rules, and castling
// eligibility for a two-square king step. It does not consider whether the
// move leaves the mover's king in check and never modifies the board.
func CanMove(board *chess.Board, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}

	piece := board.Get(from)
	if piece.IsEmpty() {
		return false
	}
	target := board.Get(to)
	if !target.IsEmpty() && target.Colour == piece.Colour {
		return false
	}

	switch piece.Type {
	case chess.Pawn:
		return canPawnMove(board, piece.Colour, from, to)
	case chess.King:
		if kingside, ok := castlingSide(piece.Colour, from, to); ok {
			return CanCastle(board, piece.Colour, kingside)
		}
	}
	return canPieceMove(board, piece.Type, from, to)
}
