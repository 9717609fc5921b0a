package config

import "github.com/lgbarn/iroh-go/internal/heuristics"

// MaxDepth bounds the configurable search depth.
const MaxDepth = 8

// SearchConfig holds settings for the move search.
type SearchConfig struct {
	// Depth is the number of plies searched below the replies to each root move
	Depth int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{Depth: 2}
}

// HeuristicsConfig holds the weight of each position evaluator.
type HeuristicsConfig struct {
	Material   float64
	Mobility   float64
	CheckState float64
}

// NewHeuristicsConfig creates a HeuristicsConfig with the default weights.
func NewHeuristicsConfig() *HeuristicsConfig {
	return &HeuristicsConfig{
		Material:   heuristics.DefaultMaterialWeight,
		Mobility:   heuristics.DefaultMobilityWeight,
		CheckState: heuristics.DefaultCheckStateWeight,
	}
}

// Weights returns the weights keyed by evaluator kind.
func (h HeuristicsConfig) Weights() map[heuristics.Kind]float64 {
	return map[heuristics.Kind]float64{
		heuristics.Material:   h.Material,
		heuristics.Mobility:   h.Mobility,
		heuristics.CheckState: h.CheckState,
	}
}

// Set sets the weight of kind.
func (h *HeuristicsConfig) Set(kind heuristics.Kind, weight float64) {
	switch kind {
	case heuristics.Material:
		h.Material = weight
	case heuristics.Mobility:
		h.Mobility = weight
	case heuristics.CheckState:
		h.CheckState = weight
	}
}

// Build returns the heuristics described by the weights.
func (h HeuristicsConfig) Build() *heuristics.Heuristics {
	return heuristics.FromWeights(h.Weights())
}
