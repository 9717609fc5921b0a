package engine

import "github.com/lgbarn/iroh-go/internal/chess"

// Generate enumerates the pseudo-legal moves for the side to move: moves that
// follow each piece's movement rules and board occupancy, without regard to
// whether they leave the mover's own king attacked.
//
// Pieces are visited in row-major order; each piece emits its moves in a
// fixed offset/ray order, and castles come last.
func Generate(state chess.GameState) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	colour := state.ToMove
	board := state.Board

	for _, placed := range board.PiecesOf(colour) {
		from := placed.At
		pieceType := placed.Piece.Type()

		switch pieceType {
		case chess.Pawn:
			moves = appendPawnMoves(moves, board, from, colour)
		case chess.Knight:
			moves = appendStepMoves(moves, board, from, pieceType, colour, knightOffsets)
		case chess.Bishop:
			moves = appendSlidingMoves(moves, board, from, pieceType, colour, diagonalDirs)
		case chess.Rook:
			moves = appendSlidingMoves(moves, board, from, pieceType, colour, straightDirs)
		case chess.Queen:
			moves = appendSlidingMoves(moves, board, from, pieceType, colour, straightDirs)
			moves = appendSlidingMoves(moves, board, from, pieceType, colour, diagonalDirs)
		case chess.King:
			moves = appendStepMoves(moves, board, from, pieceType, colour, kingOffsets)
		}
	}

	return appendCastles(moves, state)
}

// LegalMoves returns the pseudo-legal moves that do not leave the mover's
// king attacked. A castle is also dropped when the king starts in check or
// crosses an attacked square. Generation order is preserved.
func LegalMoves(state chess.GameState) []chess.Move {
	pseudo := Generate(state)
	legal := pseudo[:0]
	colour := state.ToMove

	for _, move := range pseudo {
		if castle, ok := move.(chess.Castle); ok && !castlePathSafe(state.Board, colour, castle.Kingside) {
			continue
		}
		next := advance(move, state)
		if !IsInCheck(next.Board, colour) {
			legal = append(legal, move)
		}
	}
	return legal
}

// appendPawnMoves adds single and double pushes, promotions and diagonal
// captures for the pawn on from.
func appendPawnMoves(moves []chess.Move, board chess.Board, from chess.Coordinate, colour chess.Colour) []chess.Move {
	dir := colour.Forward()

	if ahead, ok := from.Offset(0, dir); ok && board.IsEmpty(ahead) {
		if ahead.Rank == colour.LastRank() {
			for _, promotion := range chess.PromotionTypes {
				moves = append(moves, chess.PawnPromotion{File: from.File, Promotion: promotion})
			}
		} else {
			moves = append(moves, chess.PawnMove{From: from, ToRank: ahead.Rank})
			if from.Rank == colour.PawnRank() {
				if twoAhead, ok := from.Offset(0, 2*dir); ok && board.IsEmpty(twoAhead) {
					moves = append(moves, chess.PawnMove{From: from, ToRank: twoAhead.Rank})
				}
			}
		}
	}

	for _, df := range []int{-1, 1} {
		if to, ok := from.Offset(df, dir); ok && board.IsOwnedBy(to, colour.Opposite()) {
			moves = append(moves, chess.PawnAttackMove{FromFile: from.File, To: to})
		}
	}
	return moves
}

// appendStepMoves adds the knight or king moves reached by fixed offsets.
func appendStepMoves(moves []chess.Move, board chess.Board, from chess.Coordinate, pieceType chess.PieceType, colour chess.Colour, offsets [][2]int) []chess.Move {
	for _, offset := range offsets {
		to, ok := from.Offset(offset[0], offset[1])
		if !ok {
			continue
		}
		switch {
		case board.IsEmpty(to):
			moves = append(moves, chess.RegularMove{From: from, To: to, Piece: pieceType})
		case board.IsOwnedBy(to, colour.Opposite()):
			moves = append(moves, chess.AttackMove{From: from, To: to, Piece: pieceType})
		}
	}
	return moves
}

// appendSlidingMoves walks each ray until it leaves the board or meets a
// piece. An opposing piece ends the ray with a capture.
func appendSlidingMoves(moves []chess.Move, board chess.Board, from chess.Coordinate, pieceType chess.PieceType, colour chess.Colour, dirs [][2]int) []chess.Move {
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			if !board.IsEmpty(to) {
				if board.IsOwnedBy(to, colour.Opposite()) {
					moves = append(moves, chess.AttackMove{From: from, To: to, Piece: pieceType})
				}
				break
			}
			moves = append(moves, chess.RegularMove{From: from, To: to, Piece: pieceType})
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// castleSquares describes the files involved in one castle.
type castleSquares struct {
	rookFrom   chess.File
	kingTo     chess.File
	rookTo     chess.File
	mustBeFree []chess.File
}

// castleLayout returns the files for a kingside or queenside castle.
func castleLayout(kingside bool) castleSquares {
	if kingside {
		return castleSquares{rookFrom: chess.FileH, kingTo: chess.FileG, rookTo: chess.FileF,
			mustBeFree: []chess.File{chess.FileF, chess.FileG}}
	}
	return castleSquares{rookFrom: chess.FileA, kingTo: chess.FileC, rookTo: chess.FileD,
		mustBeFree: []chess.File{chess.FileB, chess.FileC, chess.FileD}}
}

// appendCastles adds each castle the mover still has the right to, whose
// king and rook are on their home squares and whose path is empty.
func appendCastles(moves []chess.Move, state chess.GameState) []chess.Move {
	colour := state.ToMove
	home := colour.HomeRank()

	if state.Board.Get(chess.Square(chess.FileE, home)) != chess.MakePiece(colour, chess.King) {
		return moves
	}

	for _, kingside := range []bool{true, false} {
		if !state.Castling.Has(colour, kingside) {
			continue
		}
		layout := castleLayout(kingside)
		if state.Board.Get(chess.Square(layout.rookFrom, home)) != chess.MakePiece(colour, chess.Rook) {
			continue
		}
		free := true
		for _, file := range layout.mustBeFree {
			if !state.Board.IsEmpty(chess.Square(file, home)) {
				free = false
				break
			}
		}
		if free {
			moves = append(moves, chess.Castle{Kingside: kingside})
		}
	}
	return moves
}

// castlePathSafe reports whether the king is not in check and does not cross
// an attacked square. The landing square is covered by the self-check test.
func castlePathSafe(board chess.Board, colour chess.Colour, kingside bool) bool {
	home := colour.HomeRank()
	enemy := colour.Opposite()
	if IsSquareAttacked(board, chess.Square(chess.FileE, home), enemy) {
		return false
	}
	return !IsSquareAttacked(board, chess.Square(castleLayout(kingside).rookTo, home), enemy)
}
