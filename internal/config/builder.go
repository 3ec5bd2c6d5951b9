package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithFENComments adds the position after each move to JSON output.
func (b *ConfigBuilder) WithFENComments(enabled bool) *ConfigBuilder {
	b.cfg.Output.AddFENComments = enabled
	return b
}

// WithStartFEN sets the position games start from.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Replay.StartFEN = fen
	return b
}

// WithWorkers sets the number of concurrent replays.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Replay.Workers = n
	return b
}

// WithStopOnError stops the run at the first illegal move.
func (b *ConfigBuilder) WithStopOnError(enabled bool) *ConfigBuilder {
	b.cfg.Replay.StopOnError = enabled
	return b
}

// WithPlyBounds only outputs games whose length lies within lower..upper.
func (b *ConfigBuilder) WithPlyBounds(lower, upper uint) *ConfigBuilder {
	b.cfg.Filter.CheckPlyBounds = true
	b.cfg.Filter.LowerPlyBound = lower
	b.cfg.Filter.UpperPlyBound = upper
	return b
}

// WithCheckmateFilter enables checkmate-only filtering.
func (b *ConfigBuilder) WithCheckmateFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchCheckmate = enabled
	return b
}

// WithStalemateFilter enables stalemate-only filtering.
func (b *ConfigBuilder) WithStalemateFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchStalemate = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// KeepMoveNumbers controls whether move numbers are written.
func (b *ConfigBuilder) KeepMoveNumbers(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepMoveNumbers = keep
	return b
}

// KeepChecks controls whether check symbols are written.
func (b *ConfigBuilder) KeepChecks(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepChecks = keep
	return b
}

// KeepResults controls whether the result token is written.
func (b *ConfigBuilder) KeepResults(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepResults = keep
	return b
}
