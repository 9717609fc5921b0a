package engine

import "github.com/lgbarn/iroh-go/internal/chess"

// Resolve applies move to state and returns the successor state. The move is
// not validated: it must come from Generate or LegalMoves for this state.
// The successor records the move's notation in its history; state itself is
// left untouched.
func Resolve(move chess.Move, state chess.GameState) chess.GameState {
	next := advance(move, state)
	return next.WithSan(Notation(move, state.ToMove))
}

// advance performs the board change, capture bookkeeping, castling-rights
// update and turn change of Resolve, without touching the move history.
func advance(move chess.Move, state chess.GameState) chess.GameState {
	next := state
	mover := state.ToMove
	// Deliberately one past the capturing turn: the resulting position then
	// has a halfmove clock of 0, and the draw fires after 75 half-moves with
	// no capture rather than 74.
	captureTurn := state.Turn + 1

	switch m := move.(type) {
	case chess.RegularMove:
		relocate(&next, m.From, m.To)

	case chess.AttackMove:
		capture(&next, m.To, mover, captureTurn)
		relocate(&next, m.From, m.To)

	case chess.PawnMove:
		relocate(&next, m.From, chess.Square(m.From.File, m.ToRank))

	case chess.PawnAttackMove:
		from := chess.Square(m.FromFile, m.To.Rank-chess.Rank(mover.Forward()))
		capture(&next, m.To, mover, captureTurn)
		relocate(&next, from, m.To)

	case chess.PawnPromotion:
		last := mover.LastRank()
		next.Board.Set(chess.Square(m.File, last-chess.Rank(mover.Forward())), chess.Empty)
		next.Board.Set(chess.Square(m.File, last), chess.MakePiece(mover, m.Promotion))

	case chess.Castle:
		home := mover.HomeRank()
		layout := castleLayout(m.Kingside)
		relocate(&next, chess.Square(chess.FileE, home), chess.Square(layout.kingTo, home))
		relocate(&next, chess.Square(layout.rookFrom, home), chess.Square(layout.rookTo, home))
	}

	next.Turn++
	next.ToMove = mover.Opposite()
	return next
}

// relocate moves the piece on from to to and retires castling rights when a
// king or rook leaves its home square.
func relocate(state *chess.GameState, from, to chess.Coordinate) {
	piece := state.Board.Get(from)
	state.Board.Set(from, chess.Empty)
	state.Board.Set(to, piece)
	state.Castling = retireCastlingRights(state.Castling, piece, from)
}

// capture records the piece standing on square as taken by capturer.
func capture(state *chess.GameState, square chess.Coordinate, capturer chess.Colour, turn int) {
	taken := state.Board.Get(square)
	state.Captured = state.Captured.Record(capturer, taken.Type(), turn)
}

// retireCastlingRights clears the rights tied to a king or rook that leaves
// its original square.
func retireCastlingRights(rights chess.CastlingRights, piece chess.Piece, from chess.Coordinate) chess.CastlingRights {
	colour := piece.Colour()
	if piece.IsEmpty() || from.Rank != colour.HomeRank() {
		return rights
	}

	switch {
	case piece.Type() == chess.King && from.File == chess.FileE:
		return rights.Without(colour, true).Without(colour, false)
	case piece.Type() == chess.Rook && from.File == chess.FileH:
		return rights.Without(colour, true)
	case piece.Type() == chess.Rook && from.File == chess.FileA:
		return rights.Without(colour, false)
	}
	return rights
}
