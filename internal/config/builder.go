package config

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/lgbarn/iroh-go/internal/heuristics"
)

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

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithWeight sets the weight of one evaluator kind.
func (b *ConfigBuilder) WithWeight(kind heuristics.Kind, weight float64) *ConfigBuilder {
	b.cfg.Heuristics.Set(kind, weight)
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	if enabled {
		b.cfg.Output.Format = JSONFormat
	} else {
		b.cfg.Output.Format = TextFormat
	}
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length int) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithWorkers sets the number of batch workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Batch.Workers = n
	return b
}

// WithBufferSize sets the batch queue capacity.
func (b *ConfigBuilder) WithBufferSize(size int) *ConfigBuilder {
	b.cfg.Batch.BufferSize = size
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithLogLevel sets the minimum log level.
func (b *ConfigBuilder) WithLogLevel(level zerolog.Level) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}
