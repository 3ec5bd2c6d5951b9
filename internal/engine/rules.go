package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// DrawRuleResult reports draw conditions that hold in a position. The
// engine reports them but never ends a game because of them.
type DrawRuleResult struct {
	// FiftyMoveRule is true once 50 moves (100 half-moves) have passed
	// without a pawn move or capture; a player may claim a draw.
	FiftyMoveRule bool

	// SeventyFiveMoveRule is true after 75 moves (150 half-moves)
	// without a pawn move or capture.
	SeventyFiveMoveRule bool

	// InsufficientMaterial is true if neither side can mate.
	InsufficientMaterial bool

	// ThreefoldRepetition is true once the current position has occurred
	// three times; a player may claim a draw.
	ThreefoldRepetition bool

	// FivefoldRepetition is true once the current position has occurred
	// five times.
	FivefoldRepetition bool
}

// AnalyzeSnapshotDrawRules checks a game's current position for draw
// conditions, repetitions included.
func AnalyzeSnapshotDrawRules(s chess.Snapshot) DrawRuleResult {
	return withRepetitions(AnalyzeDrawRules(s.Board()), s.Repetitions)
}

func withRepetitions(r DrawRuleResult, repetitions int) DrawRuleResult {
	r.ThreefoldRepetition = repetitions >= 3
	r.FivefoldRepetition = repetitions >= 5
	return r
}

// AnalyzeDrawRules checks a position for draw conditions. A lone board
// carries no history, so the repetition fields are always false.
func AnalyzeDrawRules(board *chess.Board) DrawRuleResult {
	return DrawRuleResult{
		FiftyMoveRule:        board.HalfmoveClock >= 100,
		SeventyFiveMoveRule:  board.HalfmoveClock >= 150,
		InsufficientMaterial: HasInsufficientMaterial(board),
	}
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceType
	var whiteBishopOnLight, blackBishopOnLight bool

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			switch piece.Type {
			case chess.Empty, chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			}

			if piece.Colour == chess.White {
				whitePieces = append(whitePieces, piece.Type)
				if piece.Type == chess.Bishop {
					whiteBishopOnLight = isLightSquare(row, col)
				}
			} else {
				blackPieces = append(blackPieces, piece.Type)
				if piece.Type == chess.Bishop {
					blackBishopOnLight = isLightSquare(row, col)
				}
			}
		}
	}

	switch {
	case len(whitePieces) == 0 && len(blackPieces) == 0:
		return true
	case len(whitePieces) == 0 && len(blackPieces) == 1:
		return true
	case len(blackPieces) == 0 && len(whitePieces) == 1:
		return true
	case len(whitePieces) == 1 && len(blackPieces) == 1:
		return whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(row, col int) bool {
	return (row+col)%2 == 1
}
