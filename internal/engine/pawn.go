package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// canPawnMove checks a pawn move: one step forward onto an empty square,
// two steps from the start row through two empty squares, or one step
// diagonally forward as a capture, en passant included.
func canPawnMove(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	dir := chess.ColourOffset(colour)
	rowDiff := to.Row - from.Row
	colDiff := abs(to.Col - from.Col)
	target := board.Get(to)

	switch {
	case colDiff == 0 && rowDiff == dir:
		return target.IsEmpty()

	case colDiff == 0 && rowDiff == 2*dir:
		return from.Row == chess.PawnStartRow(colour) &&
			board.Get(from.Offset(dir, 0)).IsEmpty() &&
			target.IsEmpty()

	case colDiff == 1 && rowDiff == dir:
		if !target.IsEmpty() {
			return target.Colour != colour
		}
		return isEnPassantCapture(board, colour, from, to)
	}

	return false
}

// pawnAttacks reports whether a pawn on from attacks to. Pawns attack the
// two squares diagonally in front of them whatever those squares hold.
func pawnAttacks(colour chess.Colour, from, to chess.Square) bool {
	return to.Row-from.Row == chess.ColourOffset(colour) && abs(to.Col-from.Col) == 1
}

// isEnPassantCapture reports whether a diagonal pawn step onto an empty
// square captures en passant.
func isEnPassantCapture(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	return board.EnPassant &&
		to == board.EPSquare &&
		board.Get(enPassantVictim(from, to)).Is(colour.Opposite(), chess.Pawn)
}

// enPassantVictim returns the square of the pawn taken by an en-passant
// capture: the destination's column on the capturing pawn's row.
func enPassantVictim(from, to chess.Square) chess.Square {
	return chess.Sq(from.Row, to.Col)
}

// enPassantAvailable reports whether the side to move has a legal
// en-passant capture. A target square no pawn can use does not count.
func enPassantAvailable(board *chess.Board) bool {
	if !board.EnPassant {
		return false
	}
	target := board.EPSquare
	row := target.Row - chess.ColourOffset(board.ToMove)
	for _, col := range []int{target.Col - 1, target.Col + 1} {
		from := chess.Sq(row, col)
		if board.Get(from).Is(board.ToMove, chess.Pawn) && IsLegalMove(board, from, target) {
			return true
		}
	}
	return false
}
