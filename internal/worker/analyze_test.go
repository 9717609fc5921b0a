package worker

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	chesserrors "github.com/lgbarn/iroh-go/internal/errors"
	"github.com/lgbarn/iroh-go/internal/search"
)

const (
	backRankFEN  = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
	foolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
)

func newTestAnalyzer(opts ...PoolOption) *Analyzer {
	return NewAnalyzer(search.New(search.WithDepth(1)), zerolog.Nop(), opts...)
}

func TestAnalyzerProcess(t *testing.T) {
	a := newTestAnalyzer()

	result := a.Process(WorkItem{FEN: backRankFEN, Index: 3})
	if result.Index != 3 {
		t.Errorf("Index = %d; want 3", result.Index)
	}
	got := result.Analysis
	if got.Err != nil {
		t.Fatalf("unexpected error: %v", got.Err)
	}
	if got.BestMove != "Ra8" {
		t.Errorf("BestMove = %q; want Ra8", got.BestMove)
	}
	if got.UCI != "a1a8" {
		t.Errorf("UCI = %q; want a1a8", got.UCI)
	}
	if got.Depth != 1 {
		t.Errorf("Depth = %d; want 1", got.Depth)
	}
	if got.Nodes == 0 {
		t.Error("Nodes = 0; want a positive count")
	}
}

func TestAnalyzerProcessErrors(t *testing.T) {
	a := newTestAnalyzer()

	tests := []struct {
		name string
		fen  string
		want error
	}{
		{"invalid FEN", "not a position", chesserrors.ErrInvalidFEN},
		{"checkmated side", foolsMateFEN, chesserrors.ErrNoMoves},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Process(WorkItem{FEN: tt.fen}).Analysis
			if !errors.Is(got.Err, tt.want) {
				t.Errorf("Err = %v; want %v", got.Err, tt.want)
			}
			if got.BestMove != "" {
				t.Errorf("BestMove = %q; want empty", got.BestMove)
			}
		})
	}
}

func TestAnalyzeKeepsInputOrder(t *testing.T) {
	a := newTestAnalyzer(WithWorkers(4), WithBufferSize(2))

	fens := []string{
		backRankFEN,
		"not a position",
		foolsMateFEN,
		"4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1",
		backRankFEN,
	}

	runID, analyses := a.Analyze(context.Background(), fens)
	if runID == "" {
		t.Error("run ID is empty")
	}
	if len(analyses) != len(fens) {
		t.Fatalf("len(analyses) = %d; want %d", len(analyses), len(fens))
	}

	for i, analysis := range analyses {
		if analysis.Index != i {
			t.Errorf("analyses[%d].Index = %d", i, analysis.Index)
		}
		if analysis.FEN != fens[i] {
			t.Errorf("analyses[%d].FEN = %q; want %q", i, analysis.FEN, fens[i])
		}
	}

	if analyses[0].BestMove != "Ra8" || analyses[4].BestMove != "Ra8" {
		t.Errorf("best moves = %q, %q; want Ra8", analyses[0].BestMove, analyses[4].BestMove)
	}
	if !errors.Is(analyses[1].Err, chesserrors.ErrInvalidFEN) {
		t.Errorf("analyses[1].Err = %v; want invalid FEN", analyses[1].Err)
	}
	if !errors.Is(analyses[2].Err, chesserrors.ErrNoMoves) {
		t.Errorf("analyses[2].Err = %v; want no moves", analyses[2].Err)
	}
	if analyses[3].BestMove != "exd5" {
		t.Errorf("analyses[3].BestMove = %q; want exd5", analyses[3].BestMove)
	}
}

func TestAnalyzeCancelled(t *testing.T) {
	a := newTestAnalyzer(WithWorkers(2))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fens := []string{backRankFEN, backRankFEN, backRankFEN}
	_, analyses := a.Analyze(ctx, fens)

	for i, analysis := range analyses {
		if !errors.Is(analysis.Err, context.Canceled) {
			t.Errorf("analyses[%d].Err = %v; want context.Canceled", i, analysis.Err)
		}
		if analysis.FEN != fens[i] {
			t.Errorf("analyses[%d].FEN = %q", i, analysis.FEN)
		}
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	runID, analyses := newTestAnalyzer().Analyze(context.Background(), nil)
	if runID == "" {
		t.Error("run ID is empty")
	}
	if len(analyses) != 0 {
		t.Errorf("len(analyses) = %d; want 0", len(analyses))
	}
}

func TestAnalyzeLogsRunID(t *testing.T) {
	var buf bytes.Buffer
	a := NewAnalyzer(search.New(search.WithDepth(0)), zerolog.New(&buf), WithWorkers(1))

	runID, _ := a.Analyze(context.Background(), []string{backRankFEN, "bad"})

	logs := buf.String()
	for _, want := range []string{runID, "batch started", "position failed", "batch finished"} {
		if !bytes.Contains([]byte(logs), []byte(want)) {
			t.Errorf("logs missing %q:\n%s", want, logs)
		}
	}
}
