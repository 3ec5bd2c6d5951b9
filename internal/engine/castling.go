package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Columns of the king and rooks before castling.
const (
	kingHomeCol      = 4
	kingsideRookCol  = chess.BoardSize - 1
	queensideRookCol = 0
)

// castleLayout describes the columns involved in castling on one side.
type castleLayout struct {
	kingTo   int
	rookFrom int
	rookTo   int
	// between must be empty; transit must not be attacked.
	between []int
	transit []int
}

var (
	kingsideLayout = castleLayout{
		kingTo: 6, rookFrom: kingsideRookCol, rookTo: 5,
		between: []int{5, 6},
		transit: []int{5, 6},
	}
	queensideLayout = castleLayout{
		kingTo: 2, rookFrom: queensideRookCol, rookTo: 3,
		between: []int{1, 2, 3},
		transit: []int{3, 2},
	}
)

func layoutFor(kingside bool) castleLayout {
	if kingside {
		return kingsideLayout
	}
	return queensideLayout
}

// castlingSide reports whether a king step from from to to is a castling
// attempt, and on which side.
func castlingSide(colour chess.Colour, from, to chess.Square) (kingside, ok bool) {
	home := chess.Sq(chess.HomeRow(colour), kingHomeCol)
	if from != home || to.Row != from.Row || abs(to.Col-from.Col) != 2 {
		return false, false
	}
	return to.Col > from.Col, true
}

// CanCastle reports whether colour may castle on the given side now: the
// right is still held, king and rook stand unmoved on their home squares,
// the squares between them are empty, the king is not in check, and no
// square the king crosses or lands on is attacked.
func CanCastle(board *chess.Board, colour chess.Colour, kingside bool) bool {
	if !board.Castling.Has(colour, kingside) {
		return false
	}

	row := chess.HomeRow(colour)
	layout := layoutFor(kingside)

	king := board.Get(chess.Sq(row, kingHomeCol))
	if !king.Is(colour, chess.King) || king.HasMoved {
		return false
	}
	rook := board.Get(chess.Sq(row, layout.rookFrom))
	if !rook.Is(colour, chess.Rook) || rook.HasMoved {
		return false
	}

	for _, col := range layout.between {
		if !board.Get(chess.Sq(row, col)).IsEmpty() {
			return false
		}
	}

	enemy := colour.Opposite()
	if IsSquareAttacked(board, chess.Sq(row, kingHomeCol), enemy) {
		return false
	}
	for _, col := range layout.transit {
		if IsSquareAttacked(board, chess.Sq(row, col), enemy) {
			return false
		}
	}
	return true
}

// moveCastlingRook relocates the rook for a castling king move and marks it moved.
func moveCastlingRook(board *chess.Board, colour chess.Colour, kingside bool) {
	row := chess.HomeRow(colour)
	layout := layoutFor(kingside)

	rookFrom := chess.Sq(row, layout.rookFrom)
	rook := board.Get(rookFrom)
	rook.HasMoved = true
	board.Clear(rookFrom)
	board.Set(chess.Sq(row, layout.rookTo), rook)
}

// updateCastlingRights removes rights after a move of piece from from to
// to. A king move clears both of its colour's rights. Any move out of or
// onto a corner square clears the right that depends on that corner, so a
// rook captured where it stands loses its right as well as one that moves.
func updateCastlingRights(board *chess.Board, piece chess.Piece, from, to chess.Square) {
	if piece.Type == chess.King {
		board.Castling.ClearColour(piece.Colour)
	}
	clearCornerRight(board, from)
	clearCornerRight(board, to)
}

// clearCornerRight clears the castling right tied to a rook's home corner.
func clearCornerRight(board *chess.Board, sq chess.Square) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if sq.Row != chess.HomeRow(colour) {
			continue
		}
		switch sq.Col {
		case kingsideRookCol:
			board.Castling.Clear(colour, true)
		case queensideRookCol:
			board.Castling.Clear(colour, false)
		}
	}
}
