package engine

import (
	"github.com/lgbarn/iroh-go/internal/chess"
)

// NewGame starts a game from the standard position.
func NewGame() Ongoing {
	return Ongoing{state: chess.NewGameState()}
}

// NewGameFromFEN starts a game from a FEN string. The position is classified
// immediately, so a FEN of a mated or stalemated side yields a terminal game.
func NewGameFromFEN(fen string) (Game, error) {
	state, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return Classify(state, LegalMoves(state)), nil
}

// ApplyMove plays the legal move whose notation equals the given text and
// classifies the result. Text that names no legal move yields IllegalMove
// holding the unchanged state.
func ApplyMove(state chess.GameState, notation string) Game {
	move, ok := FindMove(state, notation)
	if !ok {
		return IllegalMove{state: state}
	}
	return Play(state, move)
}

// Play applies a move taken from LegalMoves(state) and classifies the result.
// Unlike ApplyMove it needs no notation lookup, so it plays exactly the given
// piece even when two legal moves share the same text.
func Play(state chess.GameState, move chess.Move) Game {
	next := Resolve(move, state)
	return Classify(next, LegalMoves(next))
}

// FindMove returns the first legal move whose notation is the given text.
func FindMove(state chess.GameState, notation string) (chess.Move, bool) {
	for _, move := range LegalMoves(state) {
		if Notation(move, state.ToMove) == notation {
			return move, true
		}
	}
	return nil, false
}

// LegalNotations returns the notation of every legal move in generation order.
func LegalNotations(state chess.GameState) []string {
	return Notations(LegalMoves(state), state.ToMove)
}
