package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// promotionPieces are the choices offered when expanding promotions.
var promotionPieces = []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// IsLegalMove reports whether the side to move may play from-to.
func IsLegalMove(board *chess.Board, from, to chess.Square) bool {
	_, _, ok := tryMove(board, from, to, chess.Empty)
	return ok
}

// LegalDestinations returns every square the piece on from may legally
// move to, in a1..h8 order. It is empty when from is off the board, empty,
// or holds a piece of the side not to move.
func LegalDestinations(board *chess.Board, from chess.Square) []chess.Square {
	if !from.Valid() {
		return nil
	}
	piece := board.Get(from)
	if piece.IsEmpty() || piece.Colour != board.ToMove {
		return nil
	}

	var dests []chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			to := chess.Sq(row, col)
			if IsLegalMove(board, from, to) {
				dests = append(dests, to)
			}
		}
	}
	return dests
}

// LegalMoves returns every legal move for the side to move. A pawn move
// onto the last rank appears once per promotion piece.
func LegalMoves(board *chess.Board) []chess.MovePair {
	var moves []chess.MovePair
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Sq(row, col)
			for _, to := range LegalDestinations(board, from) {
				if isPromotion(board, from, to) {
					for _, p := range promotionPieces {
						moves = append(moves, chess.MovePair{From: from, To: to, Promotion: p})
					}
					continue
				}
				moves = append(moves, chess.MovePair{From: from, To: to})
			}
		}
	}
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Sq(row, col)
			piece := board.Get(from)
			if piece.IsEmpty() || piece.Colour != board.ToMove {
				continue
			}
			if hasLegalMovesForPiece(board, from) {
				return true
			}
		}
	}
	return false
}

// hasLegalMovesForPiece stops at the first legal destination.
func hasLegalMovesForPiece(board *chess.Board, from chess.Square) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if IsLegalMove(board, from, chess.Sq(row, col)) {
				return true
			}
		}
	}
	return false
}

// isPromotion reports whether from-to is a pawn move onto the last rank.
func isPromotion(board *chess.Board, from, to chess.Square) bool {
	piece := board.Get(from)
	return piece.Type == chess.Pawn && to.Row == chess.PromotionRow(piece.Colour)
}
