package output

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// SAN renders a move in Standard Algebraic Notation. board is the position
// before the move; the check suffix comes from record.CheckStatus.
func SAN(board *chess.Board, record chess.MoveRecord) string {
	var sb strings.Builder

	switch record.Class {
	case chess.KingsideCastle:
		sb.WriteString("O-O")
	case chess.QueensideCastle:
		sb.WriteString("O-O-O")
	case chess.PawnMove, chess.PawnMoveWithPromotion, chess.EnPassantPawnMove:
		if record.IsCapture() {
			sb.WriteByte(record.From.File())
			sb.WriteByte('x')
		}
		sb.WriteString(record.To.String())
		if record.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(record.PromotedTo.Letter())
		}
	default:
		sb.WriteByte(record.Piece.Type.Letter())
		sb.WriteString(disambiguation(board, record))
		if record.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(record.To.String())
	}

	switch record.CheckStatus {
	case chess.Check:
		sb.WriteByte('+')
	case chess.Checkmate:
		sb.WriteByte('#')
	}
	return sb.String()
}

// disambiguation returns the file, rank or both needed to tell the moving
// piece apart from others of its kind that could legally reach the same square.
func disambiguation(board *chess.Board, record chess.MoveRecord) string {
	var rivals []chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			if sq == record.From || !board.Get(sq).Is(record.Piece.Colour, record.Piece.Type) {
				continue
			}
			if engine.IsLegalMove(board, sq, record.To) {
				rivals = append(rivals, sq)
			}
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range rivals {
		sameFile = sameFile || sq.Col == record.From.Col
		sameRank = sameRank || sq.Row == record.From.Row
	}
	switch {
	case !sameFile:
		return string(record.From.File())
	case !sameRank:
		return string(record.From.Rank())
	default:
		return record.From.String()
	}
}

// Transcript replays a snapshot's history from its initial position and
// returns every move in SAN.
func Transcript(s chess.Snapshot) ([]string, error) {
	board, err := startBoard(s)
	if err != nil {
		return nil, err
	}

	sans := make([]string, 0, len(s.History))
	for i, record := range s.History {
		san := SAN(board, record)
		if _, ok := engine.ApplyMove(board, record.From, record.To, record.PromotedTo); !ok {
			return nil, &errors.GameError{
				Err:      errors.ErrIllegalMove,
				PlyNum:   i + 1,
				MoveText: record.Pair().String(),
			}
		}
		sans = append(sans, san)
	}
	return sans, nil
}

// Result returns the PGN result token for the game's current state. Only
// checkmate, stalemate and dead positions end a game; anything else is "*".
func Result(s chess.Snapshot) string {
	switch {
	case s.Status.Checkmate && s.ToMove == chess.White:
		return "0-1"
	case s.Status.Checkmate:
		return "1-0"
	case s.Status.Stalemate:
		return "1/2-1/2"
	case engine.HasInsufficientMaterial(s.Board()):
		return "1/2-1/2"
	}
	return "*"
}

// startBoard builds the position a snapshot's history starts from.
func startBoard(s chess.Snapshot) (*chess.Board, error) {
	fen := s.InitialFEN
	if fen == "" {
		fen = engine.InitialFEN
	}
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, errors.Wrap(err, "initial position")
	}
	return board, nil
}
