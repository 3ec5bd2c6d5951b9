package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A board without that king breaks a board invariant and panics.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.MustFindKing(colour)
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour attacks sq.
// Attacks follow movement geometry and path clearance only: a pinned piece
// still attacks, and a king attacks its neighbours but never by castling.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() || piece.Colour != byColour {
				continue
			}
			if attacks(board, piece, chess.Sq(row, col), sq) {
				return true
			}
		}
	}
	return false
}

// attacks reports whether piece, standing on from, attacks to.
func attacks(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	if piece.Type == chess.Pawn {
		return pawnAttacks(piece.Colour, from, to)
	}
	return canPieceMove(board, piece.Type, from, to)
}
