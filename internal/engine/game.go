package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Game owns the state of one game: the board, the move history and the
// cached status of the side to move. Every change goes through ApplyMove
// or Reset; callers read the state through Snapshot.
//
// A Game is not safe for concurrent use. Independent games share nothing
// and may run on separate goroutines.
type Game struct {
	board      chess.Board
	history    []chess.MoveRecord
	status     chess.Status
	initialFEN string

	positions   *hashing.PositionCounter
	repetitions int
}

// NewGame creates a game in the standard starting position.
func NewGame() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// NewGameFromFEN creates a game starting from the given position.
func NewGameFromFEN(fen string) (*Game, error) {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{board: *board, positions: hashing.NewPositionCounter()}
	g.initialFEN = BoardToFEN(&g.board)
	g.status = EvaluateStatus(&g.board)
	g.recordPosition()
	return g, nil
}

// Reset restores the standard starting position and clears the history.
func (g *Game) Reset() {
	g.board.SetupInitialPosition()
	g.history = nil
	g.status = chess.Status{}
	g.initialFEN = InitialFEN
	if g.positions == nil {
		g.positions = hashing.NewPositionCounter()
	} else {
		g.positions.Reset()
	}
	g.recordPosition()
}

// recordPosition counts the current position for repetition detection.
func (g *Game) recordPosition() {
	key := hashing.PositionKey(&g.board, enPassantAvailable(&g.board))
	g.repetitions = g.positions.Add(key)
}

// LegalDestinations returns the squares the piece on sq may move to. It is
// empty for an empty square, an off-board square, or a piece of the side
// not to move.
func (g *Game) LegalDestinations(sq chess.Square) []chess.Square {
	return LegalDestinations(&g.board, sq)
}

// ApplyMove plays from-to for the side to move. promotion is the piece a
// promoting pawn becomes; chess.Empty means queen. It returns false, and
// changes nothing, if the move is not legal.
func (g *Game) ApplyMove(from, to chess.Square, promotion chess.PieceType) bool {
	record, ok := ApplyMove(&g.board, from, to, promotion)
	if !ok {
		return false
	}
	g.status = EvaluateStatus(&g.board)
	record.CheckStatus = g.status.CheckStatus()
	g.history = append(g.history, record)
	g.recordPosition()
	return true
}

// ApplyMoveText plays a move given in coordinate notation such as "e2e4"
// or "e7e8n".
func (g *Game) ApplyMoveText(text string) error {
	mp, err := ParseMove(text)
	if err != nil {
		return err
	}
	if !g.ApplyMove(mp.From, mp.To, mp.Promotion) {
		return fmt.Errorf("%s: %w", text, errors.ErrIllegalMove)
	}
	return nil
}

// Snapshot returns a copy of the full game state.
func (g *Game) Snapshot() chess.Snapshot {
	var history []chess.MoveRecord
	if len(g.history) > 0 {
		history = make([]chess.MoveRecord, len(g.history))
		copy(history, g.history)
	}
	return chess.Snapshot{
		Squares:        g.board.Squares,
		ToMove:         g.board.ToMove,
		Status:         g.status,
		History:        history,
		Castling:       g.board.Castling,
		EnPassant:      g.board.EnPassant,
		EPSquare:       g.board.EPSquare,
		HalfmoveClock:  g.board.HalfmoveClock,
		MoveNumber:     g.board.MoveNumber,
		Repetitions:    g.repetitions,
		MaxRepetitions: g.positions.MaxCount(),
		InitialFEN:     g.initialFEN,
	}
}

// Status returns check, checkmate and stalemate for the side to move.
func (g *Game) Status() chess.Status {
	return g.status
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.board.ToMove
}

// PlyCount returns the number of moves applied so far.
func (g *Game) PlyCount() int {
	return len(g.history)
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	return BoardToFEN(&g.board)
}

// DrawRules reports draw conditions in the current position, including
// repetitions of it earlier in the game.
func (g *Game) DrawRules() DrawRuleResult {
	return withRepetitions(AnalyzeDrawRules(&g.board), g.repetitions)
}

// Replay applies the history of a snapshot to a new game started from the
// snapshot's initial position. It fails on the first move that is rejected.
func Replay(s chess.Snapshot) (*Game, error) {
	g, err := NewGameFromFEN(s.InitialFEN)
	if err != nil {
		return nil, err
	}
	for i, m := range s.History {
		if !g.ApplyMove(m.From, m.To, m.PromotedTo) {
			return nil, &errors.GameError{
				Err:      errors.ErrIllegalMove,
				GameNum:  1,
				PlyNum:   i + 1,
				MoveText: m.Pair().String(),
			}
		}
	}
	return g, nil
}
