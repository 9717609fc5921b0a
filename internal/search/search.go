// Package search picks a move with a fixed-depth minimax search and
// alpha-beta pruning over the rules engine.
//
// Scores are always from the first player's point of view: the first
// player maximizes and the second player minimizes.
package search

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/lgbarn/iroh-go/internal/chess"
	"github.com/lgbarn/iroh-go/internal/engine"
	"github.com/lgbarn/iroh-go/internal/errors"
	"github.com/lgbarn/iroh-go/internal/heuristics"
)

// DefaultDepth is the number of plies searched below the replies to each
// root move.
const DefaultDepth = 2

// Result is the outcome of a search.
type Result struct {
	Move     chess.Move
	Notation string
	Score    float64
	// Nodes counts the positions scored or expanded, root children included.
	Nodes int
}

// Searcher runs searches with a fixed depth and heuristics. A Searcher holds
// no per-search state and is safe for concurrent use.
type Searcher struct {
	depth      int
	heuristics *heuristics.Heuristics
	log        zerolog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithDepth sets the maximum depth. Depths below zero are ignored.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth >= 0 {
			s.depth = depth
		}
	}
}

// WithHeuristics sets the position evaluator.
func WithHeuristics(h *heuristics.Heuristics) Option {
	return func(s *Searcher) {
		if h != nil {
			s.heuristics = h
		}
	}
}

// WithLogger sets the logger for search progress.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Searcher) {
		s.log = log
	}
}

// New creates a Searcher. Defaults: DefaultDepth, heuristics.Default(), and
// a disabled logger.
func New(opts ...Option) *Searcher {
	s := &Searcher{
		depth:      DefaultDepth,
		heuristics: heuristics.Default(),
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Depth returns the configured maximum depth.
func (s *Searcher) Depth() int {
	return s.depth
}

// Search returns the best legal move for the side to move in state.
// Each candidate is scored with a full window; the first candidate in
// generation order wins ties. It returns errors.ErrNoMoves if the side to
// move has no legal move.
func (s *Searcher) Search(state chess.GameState) (Result, error) {
	moves := engine.LegalMoves(state)
	if len(moves) == 0 {
		return Result{}, errors.Wrapf(errors.ErrNoMoves, "search %s", engine.FEN(state))
	}

	r := &run{searcher: s}
	rootMaximizes := state.ToMove.IsFirst()

	var best Result
	for i, move := range moves {
		child := engine.Resolve(move, state)
		game := engine.Classify(child, engine.LegalMoves(child))
		score := r.minimax(game, 0, !rootMaximizes, math.Inf(-1), math.Inf(1))

		notation := engine.Notation(move, state.ToMove)
		s.log.Debug().Str("move", notation).Float64("score", score).Msg("root candidate")

		if i == 0 || better(score, best.Score, rootMaximizes) {
			best = Result{Move: move, Notation: notation, Score: score}
		}
	}
	best.Nodes = r.nodes

	s.log.Info().
		Str("best", best.Notation).
		Float64("score", best.Score).
		Int("nodes", best.Nodes).
		Int("depth", s.depth).
		Msg("search complete")

	return best, nil
}

// better reports whether score strictly improves on best for the root side.
func better(score, best float64, maximizing bool) bool {
	if maximizing {
		return score > best
	}
	return score < best
}

// run carries the counters of one search.
type run struct {
	searcher *Searcher
	nodes    int
}

// minimax returns the value of game for the first player. Leaves are always
// scored from the first player's view, whoever is to move there; the second
// player is the minimizer, so one sign convention serves both sides.
func (r *run) minimax(game engine.Game, depth int, maximizing bool, alpha, beta float64) float64 {
	r.nodes++
	state := game.State()

	if game.Status() != engine.StatusOngoing || depth >= r.searcher.depth {
		return r.searcher.heuristics.Evaluate(state, true)
	}

	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}

	for _, move := range engine.LegalMoves(state) {
		child := engine.Resolve(move, state)
		value := r.minimax(engine.Classify(child, engine.LegalMoves(child)), depth+1, !maximizing, alpha, beta)

		if maximizing {
			best = math.Max(best, value)
			alpha = math.Max(alpha, best)
			if best >= beta {
				break
			}
		} else {
			best = math.Min(best, value)
			beta = math.Min(beta, best)
			if best <= alpha {
				break
			}
		}
	}
	return best
}
