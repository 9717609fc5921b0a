package heuristics

import (
	"github.com/lgbarn/iroh-go/internal/chess"
	"github.com/lgbarn/iroh-go/internal/engine"
)

// MaterialEvaluator scores the piece values of one side minus the other's.
type MaterialEvaluator struct{}

func (MaterialEvaluator) Kind() Kind { return Material }

func (MaterialEvaluator) Evaluate(state chess.GameState, isFirstPlayer bool) float64 {
	own := chess.ColourOf(isFirstPlayer)
	var score int
	for _, p := range state.Board.PiecesOf(own) {
		score += p.Piece.Type().Value()
	}
	for _, p := range state.Board.PiecesOf(own.Opposite()) {
		score -= p.Piece.Type().Value()
	}
	return float64(score)
}

// MobilityEvaluator counts the pseudo-legal moves of the side to move,
// positive when that is the evaluated side.
type MobilityEvaluator struct{}

func (MobilityEvaluator) Kind() Kind { return Mobility }

func (MobilityEvaluator) Evaluate(state chess.GameState, isFirstPlayer bool) float64 {
	count := float64(len(engine.Generate(state)))
	if state.ToMove == chess.ColourOf(isFirstPlayer) {
		return count
	}
	return -count
}

// Check-state scores.
const (
	CheckBonus = 1.0

	// MateScore is reduced by MatePlyPenalty per half-move played, so an
	// earlier mate always outscores a later one.
	MateScore      = 1_000_000_000.0
	MatePlyPenalty = 10_000.0
)

// CheckStateEvaluator rewards checking and mating the opponent. A side to
// move that is in check costs it CheckBonus, or the mate score when it has
// no legal move.
type CheckStateEvaluator struct{}

func (CheckStateEvaluator) Kind() Kind { return CheckState }

func (CheckStateEvaluator) Evaluate(state chess.GameState, isFirstPlayer bool) float64 {
	if !engine.IsInCheck(state.Board, state.ToMove) {
		return 0
	}

	score := CheckBonus
	if len(engine.LegalMoves(state)) == 0 {
		score = MateScore - MatePlyPenalty*float64(state.Turn)
	}

	if state.ToMove == chess.ColourOf(isFirstPlayer) {
		return -score
	}
	return score
}
