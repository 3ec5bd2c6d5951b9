// Package config provides configuration for the chess-replay tool.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat selects what is written for each replayed game.
type OutputFormat int

const (
	FEN  OutputFormat = iota // Final position only
	SAN                      // Numbered movetext in Standard Algebraic Notation
	JSON                     // One JSON document per game
)

var formatNames = map[OutputFormat]string{
	FEN:  "fen",
	SAN:  "san",
	JSON: "json",
}

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat reads a format name as given on the command line.
func ParseOutputFormat(name string) (OutputFormat, error) {
	for f, n := range formatNames {
		if strings.EqualFold(name, n) {
			return f, nil
		}
	}
	return FEN, fmt.Errorf("unknown output format %q (want fen, san or json): %w", name, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=one line per game

	Output OutputConfig
	Replay ReplayConfig
	Filter FilterConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	// OutputFilename is set when output goes to a file rather than stdout.
	OutputFilename string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     *NewOutputConfig(),
		Replay:     *NewReplayConfig(),
		Filter:     *NewFilterConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the stream for diagnostics.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Replay.Validate(); err != nil {
		return err
	}
	return c.Filter.Validate()
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
