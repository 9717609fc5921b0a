package chess

// CastlingRights records which castles each side may still make.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the state of the standard starting position.
var AllCastlingRights = CastlingRights{
	WhiteKingside:  true,
	WhiteQueenside: true,
	BlackKingside:  true,
	BlackQueenside: true,
}

// Has reports whether colour may still castle on the given side.
func (c CastlingRights) Has(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return c.WhiteKingside
	case colour == White:
		return c.WhiteQueenside
	case kingside:
		return c.BlackKingside
	default:
		return c.BlackQueenside
	}
}

// Without returns a copy with the given right removed.
func (c CastlingRights) Without(colour Colour, kingside bool) CastlingRights {
	switch {
	case colour == White && kingside:
		c.WhiteKingside = false
	case colour == White:
		c.WhiteQueenside = false
	case kingside:
		c.BlackKingside = false
	default:
		c.BlackQueenside = false
	}
	return c
}

// CapturedPieces lists the piece types each side has taken, in capture order,
// and the turn of the most recent capture.
type CapturedPieces struct {
	ByWhite         []PieceType
	ByBlack         []PieceType
	LastCaptureTurn int
}

// Of returns the piece types captured by the given colour.
func (c CapturedPieces) Of(colour Colour) []PieceType {
	if colour == White {
		return c.ByWhite
	}
	return c.ByBlack
}

// Record returns a copy with pieceType appended to the capturer's list.
// The receiver's slices are never written to.
func (c CapturedPieces) Record(capturer Colour, pieceType PieceType, turn int) CapturedPieces {
	if capturer == White {
		c.ByWhite = append(c.ByWhite[:len(c.ByWhite):len(c.ByWhite)], pieceType)
	} else {
		c.ByBlack = append(c.ByBlack[:len(c.ByBlack):len(c.ByBlack)], pieceType)
	}
	c.LastCaptureTurn = turn
	return c
}

// GameState is a complete position plus the history the rules need.
// States are values: nothing mutates a GameState after it is built, so a
// search tree can share parents between branches.
type GameState struct {
	Board    Board
	ToMove   Colour
	Castling CastlingRights
	Captured CapturedPieces

	// Turn is 1-based and increments every half-move.
	Turn int

	// Sans holds the notation of every move played so far, oldest first.
	Sans []string
}

// NewGameState returns the standard starting position.
func NewGameState() GameState {
	return GameState{
		Board:    StartingBoard(),
		ToMove:   White,
		Castling: AllCastlingRights,
		Captured: CapturedPieces{LastCaptureTurn: 1},
		Turn:     1,
	}
}

// WithSan returns a copy with san appended to the move history.
func (s GameState) WithSan(san string) GameState {
	s.Sans = append(s.Sans[:len(s.Sans):len(s.Sans)], san)
	return s
}

// SansOf returns the moves played by the given colour, oldest first.
// Which colour made the first recorded move is derived from the turn counter.
func (s GameState) SansOf(colour Colour) []string {
	firstTurn := s.Turn - len(s.Sans)
	var out []string
	for i, san := range s.Sans {
		// Odd turns belong to White.
		mover := White
		if (firstTurn+i)%2 == 0 {
			mover = Black
		}
		if mover == colour {
			out = append(out, san)
		}
	}
	return out
}

// HalfmoveClock returns the number of half-moves since the last capture.
func (s GameState) HalfmoveClock() int {
	return s.Turn - s.Captured.LastCaptureTurn
}

// FullmoveNumber returns the move-pair number of the current turn.
func (s GameState) FullmoveNumber() int {
	return (s.Turn + 1) / 2
}
