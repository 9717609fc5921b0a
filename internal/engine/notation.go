package engine

import (
	"strings"

	"github.com/lgbarn/iroh-go/internal/chess"
)

// Castling notation.
const (
	KingsideCastleText  = "O-O"
	QueensideCastleText = "O-O-O"
)

// Notation returns the algebraic text of a move played by mover.
// Piece moves carry no disambiguation and no check suffix: "Nf3", "Rxa8",
// "e4", "exd5", "e8=Q", "O-O".
func Notation(move chess.Move, mover chess.Colour) string {
	var sb strings.Builder

	switch m := move.(type) {
	case chess.RegularMove:
		sb.WriteByte(m.Piece.Letter())
		sb.WriteString(m.To.String())
	case chess.AttackMove:
		sb.WriteByte(m.Piece.Letter())
		sb.WriteByte('x')
		sb.WriteString(m.To.String())
	case chess.PawnMove:
		sb.WriteString(m.From.File.String())
		sb.WriteString(m.ToRank.String())
	case chess.PawnAttackMove:
		sb.WriteString(m.FromFile.String())
		sb.WriteByte('x')
		sb.WriteString(m.To.String())
	case chess.PawnPromotion:
		sb.WriteString(m.File.String())
		sb.WriteString(mover.LastRank().String())
		sb.WriteByte('=')
		sb.WriteByte(m.Promotion.Letter())
	case chess.Castle:
		if m.Kingside {
			return KingsideCastleText
		}
		return QueensideCastleText
	}

	return sb.String()
}

// Notations returns the notation of each move, in order.
func Notations(moves []chess.Move, mover chess.Colour) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = Notation(m, mover)
	}
	return out
}

// Squares returns the origin and destination of a move played by mover.
// For a castle these are the king's squares.
func Squares(move chess.Move, mover chess.Colour) (from, to chess.Coordinate) {
	switch m := move.(type) {
	case chess.RegularMove:
		return m.From, m.To
	case chess.AttackMove:
		return m.From, m.To
	case chess.PawnMove:
		return m.From, chess.Square(m.From.File, m.ToRank)
	case chess.PawnAttackMove:
		return chess.Square(m.FromFile, m.To.Rank-chess.Rank(mover.Forward())), m.To
	case chess.PawnPromotion:
		last := mover.LastRank()
		return chess.Square(m.File, last-chess.Rank(mover.Forward())), chess.Square(m.File, last)
	case chess.Castle:
		home := mover.HomeRank()
		return chess.Square(chess.FileE, home), chess.Square(castleLayout(m.Kingside).kingTo, home)
	}
	return chess.Coordinate{}, chess.Coordinate{}
}

// UCI returns the coordinate notation of a move: origin, destination and a
// lowercase promotion letter ("e2e4", "e1g1", "a7a8q").
func UCI(move chess.Move, mover chess.Colour) string {
	from, to := Squares(move, mover)
	text := from.String() + to.String()
	if p, ok := move.(chess.PawnPromotion); ok {
		text += strings.ToLower(string(p.Promotion.Letter()))
	}
	return text
}
