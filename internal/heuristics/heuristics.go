// Package heuristics scores positions for the search. A Heuristics value is a
// weighted sum of independent evaluators; it is immutable once built and may
// be shared by any number of searches.
package heuristics

import (
	"fmt"

	"github.com/lgbarn/iroh-go/internal/chess"
)

// Kind identifies an evaluator. Weights are keyed by kind.
type Kind int

const (
	Material Kind = iota
	Mobility
	CheckState
)

// Kinds lists every evaluator kind in registration order.
var Kinds = []Kind{Material, Mobility, CheckState}

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case Material:
		return "material"
	case Mobility:
		return "mobility"
	case CheckState:
		return "check"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Evaluator scores a position for one side. Positive is good for that side.
type Evaluator interface {
	Kind() Kind
	Evaluate(state chess.GameState, isFirstPlayer bool) float64
}

// DefaultWeight applies to an evaluator added without an explicit weight.
const DefaultWeight = 1.0

// Heuristics is an ordered set of evaluators and their weights.
// The zero value has no evaluators and scores every position 0.
type Heuristics struct {
	evaluators []Evaluator
	weights    map[Kind]float64
}

// Evaluate returns the weighted sum of every evaluator's score.
func (h *Heuristics) Evaluate(state chess.GameState, isFirstPlayer bool) float64 {
	if h == nil {
		return 0
	}
	var total float64
	for _, e := range h.evaluators {
		total += h.Weight(e.Kind()) * e.Evaluate(state, isFirstPlayer)
	}
	return total
}

// Weight returns the weight applied to kind.
func (h *Heuristics) Weight(kind Kind) float64 {
	if h == nil {
		return DefaultWeight
	}
	if w, ok := h.weights[kind]; ok {
		return w
	}
	return DefaultWeight
}

// Len returns the number of registered evaluators.
func (h *Heuristics) Len() int {
	if h == nil {
		return 0
	}
	return len(h.evaluators)
}

// Kinds returns the kinds of the registered evaluators, in order.
func (h *Heuristics) Kinds() []Kind {
	if h == nil {
		return nil
	}
	kinds := make([]Kind, len(h.evaluators))
	for i, e := range h.evaluators {
		kinds[i] = e.Kind()
	}
	return kinds
}

// Builder registers evaluators and weights for a Heuristics.
type Builder struct {
	evaluators []Evaluator
	weights    map[Kind]float64
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{weights: make(map[Kind]float64)}
}

// Add registers an evaluator with the default weight unless a weight for its
// kind was already set.
func (b *Builder) Add(e Evaluator) *Builder {
	b.evaluators = append(b.evaluators, e)
	return b
}

// AddWeighted registers an evaluator and sets the weight of its kind.
func (b *Builder) AddWeighted(e Evaluator, weight float64) *Builder {
	b.Add(e)
	return b.WithWeight(e.Kind(), weight)
}

// WithWeight sets the weight of kind.
func (b *Builder) WithWeight(kind Kind, weight float64) *Builder {
	b.weights[kind] = weight
	return b
}

// Build returns the configured Heuristics. Later changes to the builder do
// not affect it.
func (b *Builder) Build() *Heuristics {
	h := &Heuristics{
		evaluators: append([]Evaluator(nil), b.evaluators...),
		weights:    make(map[Kind]float64, len(b.weights)),
	}
	for k, w := range b.weights {
		h.weights[k] = w
	}
	return h
}

// Default weights.
const (
	DefaultMaterialWeight   = 100.0
	DefaultMobilityWeight   = 1.0
	DefaultCheckStateWeight = 1.0
)

var defaultHeuristics = NewBuilder().
	AddWeighted(MaterialEvaluator{}, DefaultMaterialWeight).
	AddWeighted(MobilityEvaluator{}, DefaultMobilityWeight).
	AddWeighted(CheckStateEvaluator{}, DefaultCheckStateWeight).
	Build()

// Default returns the shared heuristics used when none is configured:
// material, mobility and check state.
func Default() *Heuristics {
	return defaultHeuristics
}

// FromWeights builds a Heuristics holding every evaluator kind, each with the
// given weight or the default weight if absent.
func FromWeights(weights map[Kind]float64) *Heuristics {
	b := NewBuilder()
	for _, kind := range Kinds {
		b.Add(New(kind))
	}
	for kind, w := range weights {
		b.WithWeight(kind, w)
	}
	return b.Build()
}

// New returns the evaluator for kind, or nil for an unknown kind.
func New(kind Kind) Evaluator {
	switch kind {
	case Material:
		return MaterialEvaluator{}
	case Mobility:
		return MobilityEvaluator{}
	case CheckState:
		return CheckStateEvaluator{}
	}
	return nil
}
