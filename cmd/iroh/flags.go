// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/iroh-go/internal/chess"
	"github.com/lgbarn/iroh-go/internal/config"
	"github.com/lgbarn/iroh-go/internal/errors"
	"github.com/lgbarn/iroh-go/internal/heuristics"
	"github.com/lgbarn/iroh-go/internal/search"
)

var (
	// Modes
	fenPosition = flag.String("fen", "", "Start from this FEN position (alone: search it and print the best move)")
	moveList    = flag.String("moves", "", "Space-separated moves to apply, then print the game record")
	batchFile   = flag.String("batch", "", "File of FEN positions to analyse, one per line ('-' for stdin)")
	playMode    = flag.Bool("play", false, "Play an interactive game against the engine")
	humanSide   = flag.String("human", "white", "Side played by the human in -play mode: white or black")

	// Search options
	depth          = flag.Int("depth", search.DefaultDepth, "Search depth in plies beyond the reply")
	materialWeight = flag.Float64("material", heuristics.DefaultMaterialWeight, "Weight of the material heuristic")
	mobilityWeight = flag.Float64("mobility", heuristics.DefaultMobilityWeight, "Weight of the mobility heuristic")
	checkWeight    = flag.Float64("check", heuristics.DefaultCheckStateWeight, "Weight of the check/mate heuristic")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	lineLength   = flag.Int("w", 80, "Maximum line length of game records")
	showFEN      = flag.Bool("showfen", false, "Print the final FEN after a game record")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	logLevel  = flag.String("loglevel", "warn", "Log level: debug, info, warn, error")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of batch workers (0 = auto-detect based on CPU cores)")
)

// buildConfig maps the command-line flags onto a validated configuration.
// Output and log destinations are attached separately.
func buildConfig() (*config.Config, error) {
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "log level %q", *logLevel)
	}

	b := config.NewConfigBuilder().
		WithDepth(*depth).
		WithWeight(heuristics.Material, *materialWeight).
		WithWeight(heuristics.Mobility, *mobilityWeight).
		WithWeight(heuristics.CheckState, *checkWeight).
		WithJSONOutput(*jsonOutput).
		WithMaxLineLength(*lineLength).
		WithLogLevel(level)

	if *workers > 0 {
		b.WithWorkers(*workers)
	}

	cfg := b.Build()
	cfg.Output.ShowFEN = *showFEN

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseColour reads a side name as given to -human.
func parseColour(s string) (chess.Colour, error) {
	switch strings.ToLower(s) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	}
	return chess.White, errors.Wrapf(errors.ErrInvalidConfig, "unknown side %q", s)
}
