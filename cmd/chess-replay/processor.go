// processor.go - Game replay and output functions
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// maxBufferSize caps the pool's channel buffers.
const maxBufferSize = 100

// inputGame is one line of input holding a game's moves.
type inputGame struct {
	Line int
	Text string
}

// runStats counts games across all inputs.
type runStats struct {
	Games   int // games read
	Output  int // games written
	Failed  int // games with a rejected or unreadable move
	Stopped bool
}

// ProcessingContext holds all processing state
type ProcessingContext struct {
	cfg    *config.Config
	writer output.GameWriter
	stats  runStats
}

// newProcessingContext creates the writer for the configured format.
func newProcessingContext(cfg *config.Config) (*ProcessingContext, error) {
	writer, err := output.NewGameWriter(cfg.OutputFile, &cfg.Output)
	if err != nil {
		return nil, err
	}
	return &ProcessingContext{cfg: cfg, writer: writer}, nil
}

// readGames reads one game per line. Blank lines and lines starting with
// '#' are skipped.
func readGames(r io.Reader) ([]inputGame, error) {
	var games []inputGame
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		games = append(games, inputGame{Line: lineNum, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return games, err
	}
	return games, nil
}

// replayGame plays whitespace-separated coordinate moves from startFEN
// (the standard start when empty). On a bad move it returns the state
// before that move and a GameError naming the ply.
func replayGame(text, startFEN string) (chess.Snapshot, error) {
	var game *engine.Game
	if startFEN == "" {
		game = engine.NewGame()
	} else {
		var err error
		if game, err = engine.NewGameFromFEN(startFEN); err != nil {
			return chess.Snapshot{}, err
		}
	}

	for i, move := range strings.Fields(text) {
		if err := game.ApplyMoveText(move); err != nil {
			return game.Snapshot(), &chesserrors.GameError{
				Err:      unwrapMoveError(err),
				PlyNum:   i + 1,
				MoveText: move,
			}
		}
	}
	return game.Snapshot(), nil
}

// unwrapMoveError drops the move text ApplyMoveText adds to illegal-move
// errors, since GameError reports it separately.
func unwrapMoveError(err error) error {
	if errors.Is(err, chesserrors.ErrIllegalMove) {
		return chesserrors.ErrIllegalMove
	}
	return err
}

// processGameWorker replays a single game in a worker goroutine.
func processGameWorker(item worker.WorkItem, cfg *config.Config) worker.ProcessResult {
	result := worker.ProcessResult{
		Index: item.Index,
		Line:  item.Line,
	}

	result.Snapshot, result.Error = replayGame(item.Text, cfg.Replay.StartFEN)
	if result.Error == nil {
		result.Matched = matchesFilters(result.Snapshot, &cfg.Filter)
	}
	return result
}

// processInput replays every game of one input and writes the matching ones
// in input order.
func processInput(r io.Reader, name string, ctx *ProcessingContext) error {
	games, err := readGames(r)
	if err != nil {
		return chesserrors.Wrapf(err, "reading %s", name)
	}
	if len(games) == 0 {
		return nil
	}
	return replayGames(games, name, ctx)
}

// replayGames runs the games on a worker pool. Results are consumed in
// submission order so that output matches the input regardless of which
// worker finishes first.
func replayGames(games []inputGame, name string, ctx *ProcessingContext) error {
	cfg := ctx.cfg
	firstGameNum := ctx.stats.Games + 1
	ctx.stats.Games += len(games)

	processFunc := func(item worker.WorkItem) worker.ProcessResult {
		return processGameWorker(item, cfg)
	}
	pool := worker.NewPool(processFunc,
		worker.WithWorkers(cfg.Replay.Workers),
		worker.WithBufferSize(min(len(games), maxBufferSize)),
	)
	pool.Start()
	cfg.Logf(2, "%s: %d game(s), %d worker(s)\n", name, len(games), pool.NumWorkers())

	go func() {
		for i, g := range games {
			if pool.IsStopped() {
				break
			}
			pool.Submit(worker.WorkItem{Index: i, Line: g.Line, Text: g.Text})
		}
		pool.Close()
	}()

	var writeErr error
	worker.InOrder(pool.Results(), func(result worker.ProcessResult) bool {
		gameNum := firstGameNum + result.Index

		if result.Error != nil {
			ctx.stats.Failed++
			logGameError(cfg, result, gameNum, name)
			if cfg.Replay.StopOnError {
				ctx.stats.Stopped = true
				pool.Stop()
				return false
			}
			return true
		}

		cfg.Logf(2, "game %d: %d plies, max repetition %d, %s\n",
			gameNum, len(result.Snapshot.History), result.Snapshot.MaxRepetitions, output.Result(result.Snapshot))
		if !result.Matched {
			return true
		}
		if err := ctx.writer.WriteGame(result.Snapshot); err != nil {
			writeErr = chesserrors.Wrapf(err, "writing game %d", gameNum)
			pool.Stop()
			return false
		}
		ctx.stats.Output++
		return true
	})

	return writeErr
}

// logGameError reports a failed game with its position in the input.
func logGameError(cfg *config.Config, result worker.ProcessResult, gameNum int, name string) {
	var gameErr *chesserrors.GameError
	if errors.As(result.Error, &gameErr) {
		gameErr.GameNum = gameNum
		gameErr.File = name
		gameErr.Line = result.Line
		cfg.Logf(0, "%v\n", gameErr)
		return
	}
	cfg.Logf(0, "%s:%d, game %d: %v\n", name, result.Line, gameNum, result.Error)
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(cfg *config.Config, stats runStats) {
	msg := fmt.Sprintf("%d game(s) output, %d failed, out of %d.\n", stats.Output, stats.Failed, stats.Games)
	if stats.Stopped {
		msg = "Stopped at first failure. " + msg
	}
	cfg.Logf(1, "%s", msg)
}
