// Package engine provides chess move validation and board manipulation.
package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ApplyMove applies a move for the side to move and updates the board
// state. promotion chooses the piece a pawn reaching the last rank becomes
// (chess.Empty means queen) and is ignored for other moves.
//
// The move is played on a scratch copy and only committed if it is legal,
// so on false the board is exactly as it was.
func ApplyMove(board *chess.Board, from, to chess.Square, promotion chess.PieceType) (chess.MoveRecord, bool) {
	scratch, record, ok := tryMove(board, from, to, promotion)
	if !ok {
		return chess.MoveRecord{}, false
	}
	*board = *scratch
	return record, true
}

// tryMove plays a move on a copy of the board. It reports false when the
// move is not legal for the side to move, including when it would leave
// the mover's own king in check.
func tryMove(board *chess.Board, from, to chess.Square, promotion chess.PieceType) (*chess.Board, chess.MoveRecord, bool) {
	if !from.Valid() || !to.Valid() || !validPromotion(promotion) {
		return nil, chess.MoveRecord{}, false
	}
	piece := board.Get(from)
	if piece.IsEmpty() || piece.Colour != board.ToMove {
		return nil, chess.MoveRecord{}, false
	}
	if !CanMove(board, from, to) {
		return nil, chess.MoveRecord{}, false
	}

	scratch := board.Copy()
	record := makeMove(scratch, from, to, promotion)
	if IsInCheck(scratch, piece.Colour) {
		return nil, chess.MoveRecord{}, false
	}
	return scratch, record, true
}

// validPromotion reports whether p may be asked for as a promotion piece.
func validPromotion(p chess.PieceType) bool {
	switch p {
	case chess.Empty, chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
		return true
	default:
		return false
	}
}

// makeMove moves the piece on from to to and carries out every side
// effect: en-passant removal, the castling rook, promotion, castling
// rights, the en-passant target, the clocks and the side to move.
// The move must already have passed CanMove.
func makeMove(board *chess.Board, from, to chess.Square, promotion chess.PieceType) chess.MoveRecord {
	piece := board.Get(from)
	colour := piece.Colour

	record := chess.MoveRecord{
		Class:    chess.PieceMove,
		From:     from,
		To:       to,
		Piece:    piece,
		Captured: board.Get(to),
	}

	switch piece.Type {
	case chess.Pawn:
		record.Class = chess.PawnMove
		if to.Col != from.Col && record.Captured.IsEmpty() {
			victim := enPassantVictim(from, to)
			record.Class = chess.EnPassantPawnMove
			record.Captured = board.Get(victim)
			board.Clear(victim)
		}

	case chess.King:
		if kingside, ok := castlingSide(colour, from, to); ok {
			moveCastlingRook(board, colour, kingside)
			record.Class = chess.QueensideCastle
			if kingside {
				record.Class = chess.KingsideCastle
			}
		}
	}

	if record.Captured.Type == chess.King {
		panic(fmt.Errorf("%v captures the %s king on %v: %w",
			piece, record.Captured.Colour, to, errors.ErrInvariantViolation))
	}

	moved := piece
	moved.HasMoved = true
	if piece.Type == chess.Pawn && to.Row == chess.PromotionRow(colour) {
		if promotion == chess.Empty {
			promotion = chess.Queen
		}
		moved.Type = promotion
		record.Class = chess.PawnMoveWithPromotion
		record.PromotedTo = promotion
	}
	board.Clear(from)
	board.Set(to, moved)

	updateCastlingRights(board, piece, from, to)

	board.EnPassant = false
	if piece.Type == chess.Pawn && abs(to.Row-from.Row) == 2 {
		board.EnPassant = true
		board.EPSquare = chess.Sq((from.Row+to.Row)/2, from.Col)
	}

	if piece.Type == chess.Pawn || record.IsCapture() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()

	return record
}
