package heuristics

import (
	"testing"

	"github.com/lgbarn/iroh-go/internal/chess"
	"github.com/lgbarn/iroh-go/internal/testutil"
)

func TestMaterialEvaluator(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		white float64
	}{
		{"initial", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 0},
		{"pawn up", "3k4/8/8/3P4/8/8/8/3K4 b - - 0 1", 1},
		{"queen against rook", "3k4/8/8/3q4/8/8/8/R2K4 w - - 0 1", -4},
		{"minor pieces", "3k4/8/2n5/8/8/5B2/6N1/3K4 w - - 0 1", 3},
		{"kings only", "3k4/8/8/8/8/8/8/3K4 w - - 0 1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := testutil.MustState(t, tt.fen)
			e := MaterialEvaluator{}
			testutil.AssertEqual(t, e.Evaluate(state, true), tt.white)
			testutil.AssertEqual(t, e.Evaluate(state, false), -tt.white)
		})
	}
}

func TestMobilityEvaluator(t *testing.T) {
	start := chess.NewGameState()
	e := MobilityEvaluator{}

	testutil.AssertEqual(t, e.Evaluate(start, true), 20.0)
	testutil.AssertEqual(t, e.Evaluate(start, false), -20.0)

	// Pseudo-legal moves count, including those into check.
	state := testutil.MustState(t, "4k3/8/8/8/8/8/r7/4K3 w - - 0 1")
	testutil.AssertEqual(t, e.Evaluate(state, true), 5.0)
}

func TestCheckStateEvaluator(t *testing.T) {
	e := CheckStateEvaluator{}

	quiet := chess.NewGameState()
	testutil.AssertEqual(t, e.Evaluate(quiet, true), 0.0)

	check := testutil.MustState(t, "4k3/8/8/8/8/8/8/4K2r w - - 0 1")
	testutil.AssertEqual(t, e.Evaluate(check, true), -CheckBonus)
	testutil.AssertEqual(t, e.Evaluate(check, false), CheckBonus)

	mate := testutil.MustState(t, "R2k4/7R/8/8/8/8/8/3K4 b - - 1 1")
	want := MateScore - MatePlyPenalty*float64(mate.Turn)
	testutil.AssertEqual(t, e.Evaluate(mate, true), want)
	testutil.AssertEqual(t, e.Evaluate(mate, false), -want)
}

func TestCheckStateEvaluator_EarlierMateScoresHigher(t *testing.T) {
	early := testutil.MustState(t, "R2k4/7R/8/8/8/8/8/3K4 b - - 1 1")
	late := testutil.MustState(t, "R2k4/7R/8/8/8/8/8/3K4 b - - 1 30")

	e := CheckStateEvaluator{}
	if e.Evaluate(early, true) <= e.Evaluate(late, true) {
		t.Errorf("mate on turn %d should outscore mate on turn %d", early.Turn, late.Turn)
	}
}

func TestDefault_PrefersMaterial(t *testing.T) {
	up := testutil.MustState(t, "3k4/8/8/3P4/8/8/8/3K4 b - - 0 1")
	even := testutil.MustState(t, "3k4/8/8/3p4/4P3/8/8/3K4 b - - 0 1")

	if Default().Evaluate(up, true) <= Default().Evaluate(even, true) {
		t.Error("a pawn up should outscore an even position")
	}
}
