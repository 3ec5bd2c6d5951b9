// Package output writes replayed games as FEN, SAN movetext or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, preceded by a space or, when the line would grow
// past the limit, by a line break.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first error from the underlying writer.
func (o *OutputWriter) Err() error {
	return o.err
}

func (o *OutputWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// WriteMovetext writes a game's moves as numbered SAN movetext followed by
// the result, wrapped at opts.MaxLineLength.
func WriteMovetext(w io.Writer, s chess.Snapshot, opts *config.OutputConfig) error {
	sans, err := Transcript(s)
	if err != nil {
		return err
	}
	start, err := startBoard(s)
	if err != nil {
		return err
	}

	ow := NewOutputWriter(w, int(opts.MaxLineLength))
	moveNum := start.MoveNumber
	isWhite := start.ToMove == chess.White

	for i, san := range sans {
		if opts.KeepMoveNumbers {
			if isWhite {
				ow.Write(fmt.Sprintf("%d.", moveNum))
			} else if i == 0 {
				// Black to move at start
				ow.Write(fmt.Sprintf("%d...", moveNum))
			}
		}
		if !opts.KeepChecks {
			san = strings.TrimRight(san, "+#")
		}
		ow.Write(san)

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}

	if opts.KeepResults {
		ow.Write(Result(s))
	}
	ow.NewLine()
	return ow.Err()
}
