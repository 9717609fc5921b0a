package worker

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgbarn/iroh-go/internal/engine"
	"github.com/lgbarn/iroh-go/internal/output"
	"github.com/lgbarn/iroh-go/internal/search"
)

// Analyzer searches batches of positions on a Pool.
type Analyzer struct {
	searcher *search.Searcher
	opts     []PoolOption
	log      zerolog.Logger
}

// NewAnalyzer creates an Analyzer. The pool options size each batch's pool.
func NewAnalyzer(searcher *search.Searcher, log zerolog.Logger, opts ...PoolOption) *Analyzer {
	return &Analyzer{searcher: searcher, opts: opts, log: log}
}

// Process analyses a single position.
func (a *Analyzer) Process(item WorkItem) ProcessResult {
	analysis := output.Analysis{
		Index: item.Index,
		FEN:   item.FEN,
		Depth: a.searcher.Depth(),
	}

	state, err := engine.ParseFEN(item.FEN)
	if err != nil {
		analysis.Err = err
		return ProcessResult{Index: item.Index, Analysis: analysis}
	}

	result, err := a.searcher.Search(state)
	if err != nil {
		analysis.Err = err
		return ProcessResult{Index: item.Index, Analysis: analysis}
	}

	analysis.BestMove = result.Notation
	analysis.UCI = engine.UCI(result.Move, state.ToMove)
	analysis.Score = result.Score
	analysis.Nodes = result.Nodes
	return ProcessResult{Index: item.Index, Analysis: analysis}
}

// Analyze searches every position and returns the analyses in input order.
// When ctx is cancelled, positions not yet searched report ctx.Err().
// The returned run ID tags this batch in the logs.
func (a *Analyzer) Analyze(ctx context.Context, fens []string) (string, []output.Analysis) {
	runID := uuid.NewString()
	log := a.log.With().Str("run_id", runID).Logger()
	log.Info().Int("positions", len(fens)).Msg("batch started")

	pool := NewPool(a.Process, a.opts...)
	pool.Start()

	go func() {
		defer pool.Close()
		for i, fen := range fens {
			if !pool.Submit(ctx, WorkItem{FEN: fen, Index: i}) {
				pool.Stop()
				return
			}
		}
	}()

	analyses := make([]output.Analysis, len(fens))
	done := make([]bool, len(fens))
	for result := range pool.Results() {
		analyses[result.Index] = result.Analysis
		done[result.Index] = true

		if result.Analysis.Err != nil {
			log.Warn().Int("index", result.Index).Err(result.Analysis.Err).Msg("position failed")
			continue
		}
		log.Debug().Int("index", result.Index).Str("best", result.Analysis.BestMove).Msg("position analysed")
	}

	failed := 0
	for i := range analyses {
		if !done[i] {
			analyses[i] = output.Analysis{Index: i, FEN: fens[i], Depth: a.searcher.Depth(), Err: context.Cause(ctx)}
		}
		if analyses[i].Err != nil {
			failed++
		}
	}
	log.Info().Int("positions", len(fens)).Int("failed", failed).Msg("batch finished")

	return runID, analyses
}
