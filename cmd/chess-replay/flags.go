// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/config"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat = flag.String("f", "fen", "Output format: fen, san, json")
	lineLength   = flag.Int("w", 80, "Maximum line length for SAN movetext")

	// Content options
	noMoveNumbers  = flag.Bool("nomovenumbers", false, "Don't output move numbers")
	noChecks       = flag.Bool("nochecks", false, "Don't output check and mate symbols")
	noResults      = flag.Bool("noresults", false, "Don't output results")
	addFENComments = flag.Bool("fencomments", false, "Add the position after each move to JSON output")

	// Replay options
	startFEN    = flag.String("fen", "", "Position every game starts from (default: standard start)")
	workers     = flag.Int("workers", 0, "Number of games replayed at once (0 = one per CPU core)")
	stopOnError = flag.Bool("stop", false, "Stop at the first game with an illegal move")

	// Ply bounds
	minPly = flag.Int("minply", 0, "Minimum ply count")
	maxPly = flag.Int("maxply", 0, "Maximum ply count (0 = no limit)")

	// Ending filters
	checkmateFilter = flag.Bool("checkmate", false, "Only output games ending in checkmate")
	stalemateFilter = flag.Bool("stalemate", false, "Only output games ending in stalemate")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("v", false, "Log one line per game")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no game count)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFormatFlags(cfg); err != nil {
		return err
	}
	if err := applyContentFlags(cfg); err != nil {
		return err
	}
	applyReplayFlags(cfg)
	applyPlyBoundsFlags(cfg)
	applyFilterFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return nil
}

// applyOutputFormatFlags configures the output format.
func applyOutputFormatFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	return nil
}

// applyContentFlags configures content output settings.
func applyContentFlags(cfg *config.Config) error {
	if *lineLength < 0 {
		return fmt.Errorf("line length must not be negative, got %d: %w", *lineLength, chesserrors.ErrInvalidConfig)
	}
	cfg.Output.MaxLineLength = uint(*lineLength)
	cfg.Output.KeepMoveNumbers = !*noMoveNumbers
	cfg.Output.KeepChecks = !*noChecks
	cfg.Output.KeepResults = !*noResults
	cfg.Output.AddFENComments = *addFENComments
	return nil
}

// applyReplayFlags configures how games are replayed.
func applyReplayFlags(cfg *config.Config) {
	cfg.Replay.StartFEN = *startFEN
	cfg.Replay.StopOnError = *stopOnError
	if *workers > 0 {
		cfg.Replay.Workers = *workers
	}
}

// applyPlyBoundsFlags configures ply bounds.
func applyPlyBoundsFlags(cfg *config.Config) {
	if *minPly <= 0 && *maxPly <= 0 {
		return
	}

	cfg.Filter.CheckPlyBounds = true
	cfg.Filter.LowerPlyBound = uint(max(*minPly, 0))
	if *maxPly > 0 {
		cfg.Filter.UpperPlyBound = uint(*maxPly)
	} else {
		cfg.Filter.UpperPlyBound = ^uint(0)
	}
}

// applyFilterFlags configures game filter settings.
func applyFilterFlags(cfg *config.Config) {
	cfg.Filter.MatchCheckmate = *checkmateFilter
	cfg.Filter.MatchStalemate = *stalemateFilter
}
