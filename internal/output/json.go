package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	InitialFEN string     `json:"initialFEN"`
	FinalFEN   string     `json:"finalFEN"`
	Moves      []JSONMove `json:"moves,omitempty"`
	Result     string     `json:"result"`
	PlyCount   int        `json:"plyCount"`
	ToMove     string     `json:"toMove"`
	Check      bool       `json:"check,omitempty"`
	Checkmate  bool       `json:"checkmate,omitempty"`
	Stalemate  bool       `json:"stalemate,omitempty"`
	Draw       *JSONDraw  `json:"draw,omitempty"`
}

// JSONDraw lists the draw conditions that hold in the final position.
type JSONDraw struct {
	FiftyMoveRule        bool `json:"fiftyMoveRule,omitempty"`
	SeventyFiveMoveRule  bool `json:"seventyFiveMoveRule,omitempty"`
	InsufficientMaterial bool `json:"insufficientMaterial,omitempty"`
	ThreefoldRepetition  bool `json:"threefoldRepetition,omitempty"`
	FivefoldRepetition   bool `json:"fivefoldRepetition,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Check      string `json:"check,omitempty"` // "check" or "checkmate"
	FEN        string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// SnapshotToJSON converts a game snapshot to JSON format. With
// opts.AddFENComments each move carries the position after it.
func SnapshotToJSON(s chess.Snapshot, opts *config.OutputConfig) (*JSONGame, error) {
	board, err := startBoard(s)
	if err != nil {
		return nil, err
	}

	jg := &JSONGame{
		InitialFEN: engine.BoardToFEN(board),
		FinalFEN:   engine.BoardToFEN(s.Board()),
		Result:     Result(s),
		PlyCount:   len(s.History),
		ToMove:     colorName(s.ToMove),
		Check:      s.Status.Check,
		Checkmate:  s.Status.Checkmate,
		Stalemate:  s.Status.Stalemate,
	}
	if draw := engine.AnalyzeSnapshotDrawRules(s); draw != (engine.DrawRuleResult{}) {
		jg.Draw = &JSONDraw{
			FiftyMoveRule:        draw.FiftyMoveRule,
			SeventyFiveMoveRule:  draw.SeventyFiveMoveRule,
			InsufficientMaterial: draw.InsufficientMaterial,
			ThreefoldRepetition:  draw.ThreefoldRepetition,
			FivefoldRepetition:   draw.FivefoldRepetition,
		}
	}

	sans, err := Transcript(s)
	if err != nil {
		return nil, err
	}
	jg.Moves = make([]JSONMove, 0, len(s.History))
	for i, record := range s.History {
		jm := convertMove(record, board.MoveNumber, sans[i])
		engine.ApplyMove(board, record.From, record.To, record.PromotedTo)
		if opts != nil && opts.AddFENComments {
			jm.FEN = engine.BoardToFEN(board)
		}
		jg.Moves = append(jg.Moves, jm)
	}
	return jg, nil
}

// convertMove converts a single history record to JSON format.
func convertMove(record chess.MoveRecord, moveNum uint, san string) JSONMove {
	jm := JSONMove{
		Color:    colorName(record.Piece.Colour),
		SAN:      san,
		UCI:      record.Pair().String(),
		From:     record.From.String(),
		To:       record.To.String(),
		Piece:    pieceTypeName(record.Piece.Type),
		Captured: pieceTypeName(record.Captured.Type),
	}
	if record.Piece.Colour == chess.White {
		jm.MoveNumber = int(moveNum)
	}
	if record.IsPromotion() {
		jm.Promotion = pieceTypeName(record.PromotedTo)
	}
	switch record.CheckStatus {
	case chess.Check:
		jm.Check = "check"
	case chess.Checkmate:
		jm.Check = "checkmate"
	}
	return jm
}

// writeJSON encodes v with the indentation used for all JSON output.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// pieceTypeName returns the piece type as a lowercase word, or "" for Empty.
func pieceTypeName(p chess.PieceType) string {
	if p == chess.Empty {
		return ""
	}
	return strings.ToLower(p.String())
}
