// chess-replay replays chess games given as coordinate moves and writes the
// resulting positions, SAN movetext or JSON.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-replay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := validateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx, err := newProcessingContext(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Process input files or stdin
	runErr := processAllInputs(ctx, flag.Args(), os.Stdin)
	if err := ctx.writer.Close(); err != nil && runErr == nil {
		runErr = err
	}
	closeFile(cfg.OutputFile)
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}

	// Report statistics
	if !*quiet {
		reportStatistics(cfg, ctx.stats)
	}
	closeFile(cfg.LogFile)

	if ctx.stats.Failed > 0 {
		os.Exit(2)
	}
}

// validateConfig checks the configuration and the starting position.
func validateConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Replay.StartFEN != "" {
		if _, err := engine.NewBoardFromFEN(cfg.Replay.StartFEN); err != nil {
			return err
		}
	}
	return nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
	cfg.OutputFilename = *outputFile
}

// closeFile closes w if it is a file other than the standard streams.
func closeFile(w io.Writer) {
	if f, ok := w.(*os.File); ok && f != os.Stdout && f != os.Stderr {
		f.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}
}

// processAllInputs processes all input files, or stdin when there are none.
// It stops early once a game fails under -stop.
func processAllInputs(ctx *ProcessingContext, args []string, stdin io.Reader) error {
	if len(args) == 0 {
		return processInput(stdin, "stdin", ctx)
	}

	for _, filename := range args {
		if ctx.stats.Stopped {
			break
		}

		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			ctx.cfg.Logf(0, "Error opening file %s: %v\n", filename, err)
			continue
		}

		err = processInput(file, filename, ctx)
		file.Close() //nolint:errcheck,gosec // G104: cleanup on exit
		if err != nil {
			return err
		}
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-replay [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess games, one per line, written as coordinate moves (e2e4 e7e5 e1g1 e7e8q).\n")
	fmt.Fprintf(os.Stderr, "Blank lines and lines starting with # are ignored.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-f):\n")
	fmt.Fprintf(os.Stderr, "  fen    Final position of each game (default)\n")
	fmt.Fprintf(os.Stderr, "  san    Numbered movetext in Standard Algebraic Notation\n")
	fmt.Fprintf(os.Stderr, "  json   JSON document with every move\n")
}
