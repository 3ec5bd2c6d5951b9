package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/config"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// saveRestoreBool is a helper to save and defer-restore a bool flag pointer.
// Usage: defer saveRestoreBool(noChecks, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

// ---------------------------------------------------------------------------
// applyOutputFormatFlags
// ---------------------------------------------------------------------------

func TestApplyOutputFormatFlags(t *testing.T) {
	tests := []struct {
		flag    string
		want    config.OutputFormat
		wantErr bool
	}{
		{"fen", config.FEN, false},
		{"san", config.SAN, false},
		{"JSON", config.JSON, false},
		{"pgn", config.FEN, true},
		{"", config.FEN, true},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			defer saveRestoreString(outputFormat, tt.flag)()
			cfg := config.NewConfig()
			err := applyOutputFormatFlags(cfg)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, cfg.Output.Format, tt.want)
		})
	}
}

// ---------------------------------------------------------------------------
// applyContentFlags
// ---------------------------------------------------------------------------

func TestApplyContentFlags(t *testing.T) {
	tests := []struct {
		name        string
		noNumbers   bool
		noCheck     bool
		noResult    bool
		fenComments bool
		width       int
		want        config.OutputConfig
	}{
		{
			name:  "defaults",
			width: 80,
			want: config.OutputConfig{
				MaxLineLength: 80, KeepMoveNumbers: true, KeepChecks: true, KeepResults: true,
			},
		},
		{
			name:        "everything stripped",
			noNumbers:   true,
			noCheck:     true,
			noResult:    true,
			fenComments: true,
			width:       40,
			want: config.OutputConfig{
				MaxLineLength: 40, AddFENComments: true,
			},
		},
		{
			name:    "only checks stripped",
			noCheck: true,
			width:   75,
			want: config.OutputConfig{
				MaxLineLength: 75, KeepMoveNumbers: true, KeepResults: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(noMoveNumbers, tt.noNumbers)()
			defer saveRestoreBool(noChecks, tt.noCheck)()
			defer saveRestoreBool(noResults, tt.noResult)()
			defer saveRestoreBool(addFENComments, tt.fenComments)()
			defer saveRestoreInt(lineLength, tt.width)()

			cfg := config.NewConfig()
			testutil.AssertNoError(t, applyContentFlags(cfg))
			if diff := cmp.Diff(tt.want, cfg.Output); diff != "" {
				t.Errorf("Output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// applyReplayFlags
// ---------------------------------------------------------------------------

func TestApplyReplayFlags(t *testing.T) {
	t.Run("explicit workers", func(t *testing.T) {
		defer saveRestoreInt(workers, 3)()
		defer saveRestoreBool(stopOnError, true)()
		defer saveRestoreString(startFEN, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")()

		cfg := config.NewConfig()
		applyReplayFlags(cfg)
		want := config.ReplayConfig{
			StartFEN:    "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			Workers:     3,
			StopOnError: true,
		}
		if diff := cmp.Diff(want, cfg.Replay); diff != "" {
			t.Errorf("Replay mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("zero workers keeps default", func(t *testing.T) {
		defer saveRestoreInt(workers, 0)()
		cfg := config.NewConfig()
		defaultWorkers := cfg.Replay.Workers
		applyReplayFlags(cfg)
		testutil.AssertEqual(t, cfg.Replay.Workers, defaultWorkers)
	})
}

// ---------------------------------------------------------------------------
// applyPlyBoundsFlags
// ---------------------------------------------------------------------------

func TestApplyPlyBoundsFlags(t *testing.T) {
	tests := []struct {
		name      string
		min, max  int
		wantCheck bool
		wantLower uint
		wantUpper uint
	}{
		{"no bounds", 0, 0, false, 0, 0},
		{"both bounds", 10, 40, true, 10, 40},
		{"only minimum", 20, 0, true, 20, ^uint(0)},
		{"only maximum", 0, 30, true, 0, 30},
		{"negative minimum clamps", -5, 30, true, 0, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreInt(minPly, tt.min)()
			defer saveRestoreInt(maxPly, tt.max)()

			cfg := config.NewConfig()
			applyPlyBoundsFlags(cfg)
			testutil.AssertEqual(t, cfg.Filter.CheckPlyBounds, tt.wantCheck)
			testutil.AssertEqual(t, cfg.Filter.LowerPlyBound, tt.wantLower)
			testutil.AssertEqual(t, cfg.Filter.UpperPlyBound, tt.wantUpper)
		})
	}
}

// ---------------------------------------------------------------------------
// applyFlags
// ---------------------------------------------------------------------------

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    int
	}{
		{"default", false, false, 1},
		{"verbose", false, true, 2},
		{"quiet", true, false, 0},
		{"quiet wins", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()

			cfg := config.NewConfig()
			testutil.AssertNoError(t, applyFlags(cfg))
			testutil.AssertEqual(t, cfg.Verbosity, tt.want)
		})
	}
}

func TestApplyFlags_Filters(t *testing.T) {
	defer saveRestoreBool(checkmateFilter, true)()
	defer saveRestoreBool(stalemateFilter, false)()

	cfg := config.NewConfig()
	testutil.AssertNoError(t, applyFlags(cfg))
	testutil.AssertTrue(t, cfg.Filter.MatchCheckmate)
	testutil.AssertFalse(t, cfg.Filter.MatchStalemate)
	testutil.AssertTrue(t, cfg.Filter.Active())
}

func TestApplyFlags_BadFormat(t *testing.T) {
	defer saveRestoreString(outputFormat, "epd")()
	cfg := config.NewConfig()
	testutil.AssertErrorIs(t, applyFlags(cfg), chesserrors.ErrInvalidConfig)
}

func TestApplyFlags_NegativeLineLength(t *testing.T) {
	defer saveRestoreInt(lineLength, -1)()
	cfg := config.NewConfig()
	testutil.AssertErrorIs(t, applyFlags(cfg), chesserrors.ErrInvalidConfig)
	testutil.AssertEqual(t, cfg.Output.MaxLineLength, config.NewOutputConfig().MaxLineLength)
}
