package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/iroh-go/internal/chess"
	"github.com/lgbarn/iroh-go/internal/config"
	"github.com/lgbarn/iroh-go/internal/engine"
	"github.com/lgbarn/iroh-go/internal/errors"
	"github.com/lgbarn/iroh-go/internal/output"
	"github.com/lgbarn/iroh-go/internal/search"
	"github.com/lgbarn/iroh-go/internal/session"
	"github.com/lgbarn/iroh-go/internal/worker"
)

// newLogger writes human-readable logs to a terminal and JSON lines to files.
func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	if w == os.Stderr {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// newSearcher builds a searcher from the search and heuristics settings.
func newSearcher(cfg *config.Config, log zerolog.Logger) *search.Searcher {
	return search.New(
		search.WithDepth(cfg.Search.Depth),
		search.WithHeuristics(cfg.Heuristics.Build()),
		search.WithLogger(log),
	)
}

// newAnalysisWriter picks the writer for cfg's output format.
func newAnalysisWriter(cfg *config.Config, runID string) output.AnalysisWriter {
	if cfg.Output.Format == config.JSONFormat {
		if runID == "" {
			return output.NewJSONWriterSingle(cfg.OutputFile)
		}
		return output.NewJSONWriter(cfg.OutputFile, runID)
	}
	return output.NewTextWriter(cfg.OutputFile)
}

// runSearch prints the best move for a single position.
func runSearch(cfg *config.Config, log zerolog.Logger, fen string) error {
	analyzer := worker.NewAnalyzer(newSearcher(cfg, log), log)
	analysis := analyzer.Process(worker.WorkItem{FEN: fen}).Analysis

	w := newAnalysisWriter(cfg, "")
	if err := w.WriteAnalysis(analysis); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return analysis.Err
}

// runMoves plays notations from fen (or the initial position when fen is
// empty) and writes the resulting game record. An illegal move or a move
// after the game ended stops play; the record up to that point is still
// written.
func runMoves(cfg *config.Config, fen string, notations []string) error {
	game, err := startGame(fen)
	if err != nil {
		return err
	}

	game, playErr := playMoves(game, notations)

	if cfg.Output.Format == config.JSONFormat {
		if err := output.OutputGameJSON(cfg.OutputFile, game); err != nil {
			return err
		}
	} else {
		output.WriteTranscript(cfg.OutputFile, game, cfg.Output.MaxLineLength)
		if cfg.Output.ShowFEN {
			fmt.Fprintln(cfg.OutputFile, engine.FEN(game.State()))
		}
	}
	return playErr
}

func startGame(fen string) (engine.Game, error) {
	if fen == "" {
		return engine.NewGame(), nil
	}
	return engine.NewGameFromFEN(fen)
}

// playMoves applies notations in order. It returns the last game reached
// before the first failure along with a *errors.MoveError describing it.
func playMoves(game engine.Game, notations []string) (engine.Game, error) {
	for _, notation := range notations {
		state := game.State()
		playable, ok := game.(engine.Playable)
		if !ok {
			return game, moveError(errors.ErrGameOver, notation, state)
		}
		next := playable.MakeMove(notation)
		if next.Status() == engine.StatusIllegalMove {
			return game, moveError(errors.ErrIllegalMove, notation, state)
		}
		game = next
	}
	return game, nil
}

func moveError(err error, notation string, state chess.GameState) error {
	return &errors.MoveError{
		Err:      err,
		Ply:      state.Turn,
		MoveText: notation,
		FEN:      engine.FEN(state),
	}
}

// runBatchFile analyses the positions listed in path ("-" reads stdin).
func runBatchFile(ctx context.Context, cfg *config.Config, log zerolog.Logger, path string) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return err
		}
		defer file.Close() //nolint:errcheck // read-only file
		r = file
	}
	return runBatch(ctx, cfg, log, r)
}

// runBatch analyses every position read from r on a worker pool and writes
// the analyses in input order.
func runBatch(ctx context.Context, cfg *config.Config, log zerolog.Logger, r io.Reader) error {
	fens, err := readPositions(r)
	if err != nil {
		return err
	}

	analyzer := worker.NewAnalyzer(newSearcher(cfg, log), log,
		worker.WithWorkers(cfg.Batch.Workers),
		worker.WithBufferSize(cfg.Batch.BufferSize),
	)
	runID, analyses := analyzer.Analyze(ctx, fens)

	w := newAnalysisWriter(cfg, runID)
	for _, a := range analyses {
		if err := w.WriteAnalysis(a); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	return context.Cause(ctx)
}

// readPositions returns the non-blank lines of r, skipping '#' comments.
func readPositions(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return fens, nil
}

// runPlay runs an interactive game on in and cfg's output.
func runPlay(cfg *config.Config, log zerolog.Logger, fen string, human chess.Colour, in io.Reader) error {
	opts := []session.Option{
		session.WithHumanColour(human),
		session.WithSearcher(newSearcher(cfg, log)),
		session.WithLogger(log),
	}

	var s *session.Session
	if fen == "" {
		s = session.New(opts...)
	} else {
		var err error
		if s, err = session.NewFromFEN(fen, opts...); err != nil {
			return err
		}
	}
	return s.Run(in, cfg.OutputFile)
}
