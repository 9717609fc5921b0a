// Package config provides configuration for the iroh engine and its
// command-line front end.
package config

import (
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/lgbarn/iroh-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Search     SearchConfig
	Heuristics HeuristicsConfig
	Output     OutputConfig
	Batch      BatchConfig

	// LogLevel is the minimum level written to LogFile.
	LogLevel zerolog.Level

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:     *NewSearchConfig(),
		Heuristics: *NewHeuristicsConfig(),
		Output:     *NewOutputConfig(),
		Batch:      *NewBatchConfig(),
		LogLevel:   zerolog.InfoLevel,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate reports the first invalid setting as an error wrapping
// errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Search.Depth < 0 || c.Search.Depth > MaxDepth {
		return errors.Wrapf(errors.ErrInvalidConfig, "search depth %d not in 0..%d", c.Search.Depth, MaxDepth)
	}
	for kind, w := range c.Heuristics.Weights() {
		if w < 0 {
			return errors.Wrapf(errors.ErrInvalidConfig, "%s weight %v is negative", kind, w)
		}
	}
	if c.Output.Format != TextFormat && c.Output.Format != JSONFormat {
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown output format %d", c.Output.Format)
	}
	if c.Batch.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers %d must be at least 1", c.Batch.Workers)
	}
	if c.Batch.BufferSize < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "buffer size %d must be at least 1", c.Batch.BufferSize)
	}
	if c.OutputFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "no output writer")
	}
	return nil
}

// BatchConfig holds settings for analysing many positions.
type BatchConfig struct {
	// Workers is the number of positions searched at once
	Workers int

	// BufferSize is the capacity of the work and result queues
	BufferSize int
}

// NewBatchConfig creates a BatchConfig with one worker per CPU.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{
		Workers:    runtime.NumCPU(),
		BufferSize: 64,
	}
}
