package engine

import "github.com/lgbarn/iroh-go/internal/chess"

// Status identifies the variant of a Game.
type Status int

const (
	StatusOngoing Status = iota
	StatusIllegalMove
	StatusDraw
	StatusWin
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"Ongoing", "IllegalMove", "Draw", "Win"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// Game is the outcome of applying a move: Ongoing, IllegalMove, Draw or Win.
// Only Ongoing and IllegalMove accept further moves (see Playable); Draw and
// Win are terminal.
type Game interface {
	// State returns the position the game is in. For IllegalMove this is
	// the position the rejected move was tried against.
	State() chess.GameState
	Status() Status
	isGame()
}

// Playable is a Game that accepts another move.
type Playable interface {
	Game
	MakeMove(notation string) Game
}

// Ongoing is a game in progress.
type Ongoing struct {
	state chess.GameState
}

// IllegalMove reports that the submitted move text matched no legal move.
// The game continues from the unchanged prior state.
type IllegalMove struct {
	state chess.GameState
}

// Draw is a finished game with no winner.
type Draw struct {
	state chess.GameState
}

// Win is a finished game won by one side.
type Win struct {
	winner chess.Colour
	state  chess.GameState
}

func (g Ongoing) State() chess.GameState     { return g.state }
func (g IllegalMove) State() chess.GameState { return g.state }
func (g Draw) State() chess.GameState        { return g.state }
func (g Win) State() chess.GameState         { return g.state }

func (Ongoing) Status() Status     { return StatusOngoing }
func (IllegalMove) Status() Status { return StatusIllegalMove }
func (Draw) Status() Status        { return StatusDraw }
func (Win) Status() Status         { return StatusWin }

func (Ongoing) isGame()     {}
func (IllegalMove) isGame() {}
func (Draw) isGame()        {}
func (Win) isGame()         {}

// MakeMove plays the move with the given notation.
func (g Ongoing) MakeMove(notation string) Game {
	return ApplyMove(g.state, notation)
}

// MakeMove retries from the state the illegal move was rejected in.
func (g IllegalMove) MakeMove(notation string) Game {
	return ApplyMove(g.state, notation)
}

// Winner returns the winning colour.
func (g Win) Winner() chess.Colour {
	return g.winner
}

// WinnerIsFirstPlayer reports whether White won.
func (g Win) WinnerIsFirstPlayer() bool {
	return g.winner.IsFirst()
}

// Result returns the game-record terminator for g: "1-0", "0-1", "1/2-1/2",
// or "*" while the game is unfinished.
func Result(g Game) string {
	switch v := g.(type) {
	case Win:
		if v.WinnerIsFirstPlayer() {
			return "1-0"
		}
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}
