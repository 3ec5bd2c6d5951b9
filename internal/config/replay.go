package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ReplayConfig holds settings for how games are replayed.
type ReplayConfig struct {
	// StartFEN is the position every game starts from; empty means the
	// standard starting position.
	StartFEN string

	// Workers is the number of games replayed concurrently.
	Workers int

	// StopOnError stops the run at the first game with an illegal move.
	StopOnError bool
}

// NewReplayConfig creates a ReplayConfig with one worker per CPU.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", r.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

// FilterConfig holds settings that select which replayed games are output.
type FilterConfig struct {
	// Ply bounds
	CheckPlyBounds bool
	LowerPlyBound  uint
	UpperPlyBound  uint

	// Final position conditions
	MatchCheckmate bool
	MatchStalemate bool
}

// NewFilterConfig creates a FilterConfig with default values.
// All fields use Go zero values (false, 0) - filters are disabled by default.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// Validate checks that the filter configuration is valid.
func (f *FilterConfig) Validate() error {
	if f.CheckPlyBounds && f.LowerPlyBound > f.UpperPlyBound {
		return fmt.Errorf("lower ply bound (%d) > upper ply bound (%d): %w",
			f.LowerPlyBound, f.UpperPlyBound, errors.ErrInvalidConfig)
	}
	return nil
}

// Active reports whether any filter is enabled.
func (f *FilterConfig) Active() bool {
	return f.CheckPlyBounds || f.MatchCheckmate || f.MatchStalemate
}
