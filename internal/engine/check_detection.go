package engine

import "github.com/lgbarn/iroh-go/internal/chess"

var (
	knightOffsets = [][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	straightDirs  = [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	diagonalDirs  = [][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
)

// IsInCheck returns true if the given colour's king is attacked.
// A side without a king is never in check.
func IsInCheck(board chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if a piece of byColour attacks the square.
func IsSquareAttacked(board chess.Board, square chess.Coordinate, byColour chess.Colour) bool {
	// Pawns attack from one rank behind, seen from their own side.
	pawn := chess.MakePiece(byColour, chess.Pawn)
	for _, df := range []int{-1, 1} {
		if from, ok := square.Offset(df, -byColour.Forward()); ok && board.Get(from) == pawn {
			return true
		}
	}

	if attackedByStep(board, square, chess.MakePiece(byColour, chess.Knight), knightOffsets) {
		return true
	}
	if attackedByStep(board, square, chess.MakePiece(byColour, chess.King), kingOffsets) {
		return true
	}

	queen := chess.MakePiece(byColour, chess.Queen)
	if attackedByRay(board, square, chess.MakePiece(byColour, chess.Bishop), queen, diagonalDirs) {
		return true
	}
	return attackedByRay(board, square, chess.MakePiece(byColour, chess.Rook), queen, straightDirs)
}

// attackedByStep checks the fixed offsets from square for the given piece.
func attackedByStep(board chess.Board, square chess.Coordinate, attacker chess.Piece, offsets [][2]int) bool {
	for _, offset := range offsets {
		if from, ok := square.Offset(offset[0], offset[1]); ok && board.Get(from) == attacker {
			return true
		}
	}
	return false
}

// attackedByRay walks each direction until the first occupied square and
// checks whether it holds one of the two sliding attackers.
func attackedByRay(board chess.Board, square chess.Coordinate, slider, queen chess.Piece, dirs [][2]int) bool {
	for _, dir := range dirs {
		c, ok := square.Offset(dir[0], dir[1])
		for ok {
			piece := board.Get(c)
			if !piece.IsEmpty() {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			c, ok = c.Offset(dir[0], dir[1])
		}
	}
	return false
}
