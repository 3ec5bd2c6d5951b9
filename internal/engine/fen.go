package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// PieceToFENLetter returns the FEN letter for a piece: uppercase for
// White, lowercase for Black.
func PieceToFENLetter(piece chess.Piece) byte {
	letter := piece.Type.Letter()
	if piece.Colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string. Missing trailing
// fields take their usual defaults. Positions that could not arise in a
// game the engine runs (not exactly one king per side, or the side not to
// move already in check) are rejected.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts); err != nil {
		return nil, err
	}

	if err := validatePosition(board); err != nil {
		return nil, err
	}
	deriveHasMoved(board)

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks in placement: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, rank := range ranks {
		row := chess.BoardSize - 1 - i
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				pieceType := chess.PieceTypeFromLetter(byte(c))
				if pieceType == chess.Empty {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col >= chess.BoardSize {
					return fmt.Errorf("rank %d too long: %w", row+1, errors.ErrInvalidFEN)
				}
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(chess.Sq(row, col), chess.Piece{Type: pieceType, Colour: colour})
				col++
			}
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", row+1, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. A right
// whose king or rook is not on its home square is dropped.
func parseCastlingRights(board *chess.Board, parts []string) error {
	board.Castling = chess.CastlingRights{}
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		var colour chess.Colour
		var kingside bool
		switch c {
		case 'K':
			colour, kingside = chess.White, true
		case 'Q':
			colour, kingside = chess.White, false
		case 'k':
			colour, kingside = chess.Black, true
		case 'q':
			colour, kingside = chess.Black, false
		default:
			return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}
		if castlingPiecesHome(board, colour, kingside) {
			switch {
			case colour == chess.White && kingside:
				board.Castling.WhiteKingside = true
			case colour == chess.White:
				board.Castling.WhiteQueenside = true
			case kingside:
				board.Castling.BlackKingside = true
			default:
				board.Castling.BlackQueenside = true
			}
		}
	}
	return nil
}

// castlingPiecesHome reports whether the king and the rook for a castling
// right stand on their starting squares.
func castlingPiecesHome(board *chess.Board, colour chess.Colour, kingside bool) bool {
	row := chess.HomeRow(colour)
	return board.Get(chess.Sq(row, kingHomeCol)).Is(colour, chess.King) &&
		board.Get(chess.Sq(row, layoutFor(kingside).rookFrom)).Is(colour, chess.Rook)
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) error {
	board.EnPassant = false
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square: %v: %w", err, errors.ErrInvalidFEN)
	}
	// The skipped square sits behind a pawn of the side that just moved.
	wantRow := chess.PawnStartRow(board.ToMove.Opposite()) + chess.ColourOffset(board.ToMove.Opposite())
	if sq.Row != wantRow {
		return fmt.Errorf("en passant square %v on wrong rank: %w", sq, errors.ErrInvalidFEN)
	}
	board.EnPassant = true
	board.EPSquare = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return fmt.Errorf("halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
		board.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil || n == 0 {
			return fmt.Errorf("move number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		board.MoveNumber = uint(n)
	}
	return nil
}

// validatePosition rejects positions that would break board invariants.
func validatePosition(board *chess.Board) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := board.CountKings(colour); n != 1 {
			return fmt.Errorf("%d %s kings: %w", n, colour, errors.ErrInvalidFEN)
		}
	}
	if IsInCheck(board, board.ToMove.Opposite()) {
		return fmt.Errorf("%s is in check but not to move: %w", board.ToMove.Opposite(), errors.ErrInvalidFEN)
	}
	return nil
}

// deriveHasMoved sets HasMoved on pieces loaded from FEN, which does not
// record it: pawns off their start row, kings without castling rights and
// rooks that back no castling right count as moved.
func deriveHasMoved(board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := &board.Squares[row][col]
			switch piece.Type {
			case chess.Pawn:
				piece.HasMoved = row != chess.PawnStartRow(piece.Colour)
			case chess.King:
				piece.HasMoved = !board.Castling.Has(piece.Colour, true) && !board.Castling.Has(piece.Colour, false)
			case chess.Rook:
				piece.HasMoved = !rookBacksRight(board, piece.Colour, chess.Sq(row, col))
			}
		}
	}
}

// rookBacksRight reports whether a rook on sq is the one a castling right depends on.
func rookBacksRight(board *chess.Board, colour chess.Colour, sq chess.Square) bool {
	if sq.Row != chess.HomeRow(colour) {
		return false
	}
	switch sq.Col {
	case kingsideRookCol:
		return board.Castling.Has(colour, true)
	case queensideRookCol:
		return board.Castling.Has(colour, false)
	}
	return false
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := chess.BoardSize - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(PieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	rights := board.Castling
	if rights == (chess.CastlingRights{}) {
		sb.WriteByte('-')
		return
	}
	if rights.WhiteKingside {
		sb.WriteByte('K')
	}
	if rights.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if rights.BlackKingside {
		sb.WriteByte('k')
	}
	if rights.BlackQueenside {
		sb.WriteByte('q')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.EnPassant {
		sb.WriteString(board.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
}
