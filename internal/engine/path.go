package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// canPieceMove checks the geometry of a knight, bishop, rook, queen or
// single-step king move, including path clearance for sliding pieces.
// Pawns and castling are handled elsewhere; the destination's contents
// are not looked at.
func canPieceMove(board *chess.Board, pieceType chess.PieceType, from, to chess.Square) bool {
	colDiff := abs(to.Col - from.Col)
	rowDiff := abs(to.Row - from.Row)
	if colDiff == 0 && rowDiff == 0 {
		return false
	}

	switch pieceType {
	case chess.Knight:
		return (colDiff == 1 && rowDiff == 2) || (colDiff == 2 && rowDiff == 1)

	case chess.Bishop:
		if colDiff != rowDiff {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Rook:
		if colDiff != 0 && rowDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Queen:
		if colDiff != rowDiff && colDiff != 0 && rowDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.King:
		return colDiff <= 1 && rowDiff <= 1
	}

	return false
}

// isPathClear checks that every square strictly between from and to is
// empty. from and to must share a row, column or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	for sq := from.Offset(rowDir, colDir); sq != to; sq = sq.Offset(rowDir, colDir) {
		if !board.Get(sq).IsEmpty() {
			return false
		}
	}
	return true
}
