package engine

import "github.com/lgbarn/iroh-go/internal/chess"

// NoCaptureLimit is the number of half-moves without a capture that ends the
// game in a draw.
const NoCaptureLimit = 75

// repetitionWindow is how many of a side's latest moves the repetition test
// inspects.
const repetitionWindow = 5

// Classify decides the status of a freshly resolved state given the moves
// available to the side to move.
//
//   - No moves: a win for the other side if the side to move is in check,
//     otherwise stalemate.
//   - Either side's last five moves read A B A B A: draw.
//   - 75 half-moves without a capture: draw.
func Classify(state chess.GameState, moves []chess.Move) Game {
	if len(moves) == 0 {
		if IsInCheck(state.Board, state.ToMove) {
			return Win{winner: state.ToMove.Opposite(), state: state}
		}
		return Draw{state: state}
	}

	if IsRepetition(state.SansOf(chess.White)) || IsRepetition(state.SansOf(chess.Black)) {
		return Draw{state: state}
	}

	if state.HalfmoveClock() >= NoCaptureLimit {
		return Draw{state: state}
	}

	return Ongoing{state: state}
}

// IsRepetition reports whether the last five entries of one side's move
// history alternate between two texts (A B A B A). Move text is compared,
// not positions.
func IsRepetition(sans []string) bool {
	if len(sans) < repetitionWindow {
		return false
	}
	last := sans[len(sans)-repetitionWindow:]
	return last[0] == last[2] && last[2] == last[4] && last[1] == last[3]
}
