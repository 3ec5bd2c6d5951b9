package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MinLineLength is the narrowest movetext line accepted.
const MinLineLength = 20

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies what is written per game (FEN, SAN, JSON)
	Format OutputFormat

	// MaxLineLength is the maximum line length for SAN movetext
	MaxLineLength uint

	// KeepMoveNumbers controls whether move numbers are included
	KeepMoveNumbers bool

	// KeepResults controls whether game results are included
	KeepResults bool

	// KeepChecks controls whether check symbols (+, #) are included
	KeepChecks bool

	// AddFENComments adds the position after each move to JSON output
	AddFENComments bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          FEN,
		MaxLineLength:   80,
		KeepMoveNumbers: true,
		KeepResults:     true,
		KeepChecks:      true,
	}
}

// Validate checks that the output configuration is usable.
func (o *OutputConfig) Validate() error {
	if _, ok := formatNames[o.Format]; !ok {
		return fmt.Errorf("output format %v: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.MaxLineLength < MinLineLength {
		return fmt.Errorf("line length %d below %d: %w", o.MaxLineLength, MinLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
