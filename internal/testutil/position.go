package testutil

import (
	"testing"

	"github.com/lgbarn/iroh-go/internal/chess"
	"github.com/lgbarn/iroh-go/internal/engine"
)

// MustState parses a FEN string, failing the test if it is malformed.
func MustState(t testing.TB, fen string) chess.GameState {
	t.Helper()
	state, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error: %v", fen, err)
	}
	return state
}

// MustPlay applies each move in turn and returns the final game. Every move
// must be legal and every intermediate game must still be in progress.
func MustPlay(t testing.TB, state chess.GameState, notations ...string) engine.Game {
	t.Helper()
	game := engine.Classify(state, engine.LegalMoves(state))
	for i, notation := range notations {
		if game.Status() != engine.StatusOngoing {
			t.Fatalf("move %d %q: game already %v", i+1, notation, game.Status())
		}
		state = game.State()
		game = engine.ApplyMove(state, notation)
		if game.Status() == engine.StatusIllegalMove {
			t.Fatalf("move %d %q is illegal in %s; legal: %v",
				i+1, notation, engine.FEN(state), engine.LegalNotations(state))
		}
	}
	return game
}

// Notations returns the notation of the pseudo-legal moves of state.
func Notations(state chess.GameState) []string {
	return engine.Notations(engine.Generate(state), state.ToMove)
}
