package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// GameWriter is the interface for writing replayed games to output.
// Different implementations handle different output formats (FEN, SAN, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(s chess.Snapshot) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer for the configured output format.
func NewGameWriter(w io.Writer, cfg *config.OutputConfig) (GameWriter, error) {
	switch cfg.Format {
	case config.FEN:
		return NewFENWriter(w), nil
	case config.SAN:
		return NewSANWriter(w, cfg), nil
	case config.JSON:
		return NewJSONWriter(w, cfg), nil
	}
	return nil, fmt.Errorf("no writer for output format %v", cfg.Format)
}

// FENWriter writes the final position of each game, one per line.
type FENWriter struct {
	w io.Writer
}

// NewFENWriter creates a new FEN writer.
func NewFENWriter(w io.Writer) *FENWriter {
	return &FENWriter{w: w}
}

// WriteGame writes the game's final position.
func (fw *FENWriter) WriteGame(s chess.Snapshot) error {
	_, err := fmt.Fprintln(fw.w, engine.BoardToFEN(s.Board()))
	return err
}

// Flush is a no-op; FEN lines are written immediately.
func (fw *FENWriter) Flush() error {
	return nil
}

// Close closes the FEN writer.
func (fw *FENWriter) Close() error {
	return nil
}

// SANWriter writes each game as SAN movetext followed by a blank line.
type SANWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewSANWriter creates a new SAN writer.
func NewSANWriter(w io.Writer, cfg *config.OutputConfig) *SANWriter {
	return &SANWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a game as movetext.
func (sw *SANWriter) WriteGame(s chess.Snapshot) error {
	if err := WriteMovetext(sw.w, s, sw.cfg); err != nil {
		return err
	}
	_, err := fmt.Fprintln(sw.w)
	return err
}

// Flush flushes the SAN writer (no-op as it writes immediately).
func (sw *SANWriter) Flush() error {
	return nil
}

// Close closes the SAN writer.
func (sw *SANWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.OutputConfig
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:     w,
		cfg:   cfg,
		games: make([]*JSONGame, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(s chess.Snapshot) error {
	jsonGame, err := SnapshotToJSON(s, jw.cfg)
	if err != nil {
		return err
	}
	if jw.single {
		return writeJSON(jw.w, jsonGame)
	}

	jw.games = append(jw.games, jsonGame)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	err := writeJSON(jw.w, &JSONOutput{Games: jw.games})

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
