// Package chess provides the value types shared by the rules engine and the
// search: colours, pieces, squares, boards, moves and game states.
package chess

// Colour represents the colour of a piece or player.
// White is the first player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// IsFirst reports whether c is the first player.
func (c Colour) IsFirst() bool {
	return c == White
}

// ColourOf returns White for the first player and Black otherwise.
func ColourOf(isFirstPlayer bool) Colour {
	if isFirstPlayer {
		return White
	}
	return Black
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank holding the colour's king and rooks.
func (c Colour) HomeRank() Rank {
	if c == White {
		return Rank1
	}
	return Rank8
}

// PawnRank returns the rank the colour's pawns start on.
func (c Colour) PawnRank() Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

// LastRank returns the rank on which the colour's pawns promote.
func (c Colour) LastRank() Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}

// PieceType represents a chess piece type.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionTypes lists the promotion choices in the order they are offered.
var PromotionTypes = [...]PieceType{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Value returns the material value of a piece type in pawns.
// The king has no material value.
func (p PieceType) Value() int {
	switch p {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	}
	return 0
}

// PieceTypeFromLetter converts a piece letter of either case to a piece type.
// Unknown letters return NoPieceType.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoPieceType
}

// Piece is a coloured piece. The zero value is Empty, an unoccupied square.
type Piece uint8

// Empty is the content of an unoccupied square.
const Empty Piece = 0

// pieceShift is used for encoding coloured pieces.
const pieceShift = 1

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, pieceType PieceType) Piece {
	return Piece(int(pieceType)<<pieceShift | int(colour))
}

// W creates a white piece.
func W(pieceType PieceType) Piece {
	return MakePiece(White, pieceType)
}

// B creates a black piece.
func B(pieceType PieceType) Piece {
	return MakePiece(Black, pieceType)
}

// Type extracts the piece type.
func (p Piece) Type() PieceType {
	return PieceType(p >> pieceShift)
}

// Colour extracts the owner. Meaningless for Empty.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// IsEmpty reports whether p is the Empty square marker.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Letter returns the position-notation letter: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Type().Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour().String() + " " + p.Type().String()
}
