package chess

// NumSquares is the number of squares on the board.
const NumSquares = BoardSize * BoardSize

// Board is a fixed grid of 64 tiles indexed by file + rank*8.
// It is a value type: copying a Board copies every tile.
type Board struct {
	squares [NumSquares]Piece
}

// PlacedPiece is a piece together with the square it stands on.
type PlacedPiece struct {
	Piece Piece
	At    Coordinate
}

// NewBoard creates a new empty board.
func NewBoard() Board {
	return Board{}
}

// StartingBoard returns the standard chess starting position.
func StartingBoard() Board {
	var b Board
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := FileA; file <= FileH; file++ {
		b.Set(Square(file, Rank1), W(backRank[file]))
		b.Set(Square(file, Rank2), W(Pawn))
		b.Set(Square(file, Rank7), B(Pawn))
		b.Set(Square(file, Rank8), B(backRank[file]))
	}
	return b
}

// Get returns the piece at the given square, or Empty.
func (b Board) Get(c Coordinate) Piece {
	return b.squares[c.Index()]
}

// Set places a piece at the given square. Setting Empty clears it.
func (b *Board) Set(c Coordinate, piece Piece) {
	b.squares[c.Index()] = piece
}

// IsEmpty reports whether the square is unoccupied.
func (b Board) IsEmpty(c Coordinate) bool {
	return b.squares[c.Index()].IsEmpty()
}

// IsOwnedBy reports whether the square holds a piece of the given colour.
func (b Board) IsOwnedBy(c Coordinate, colour Colour) bool {
	piece := b.squares[c.Index()]
	return !piece.IsEmpty() && piece.Colour() == colour
}

// PiecesOf returns every piece of the given colour in row-major order
// (a1, b1, ... h1, a2, ... h8).
func (b Board) PiecesOf(colour Colour) []PlacedPiece {
	pieces := make([]PlacedPiece, 0, 16)
	for i, piece := range b.squares {
		if piece.IsEmpty() || piece.Colour() != colour {
			continue
		}
		pieces = append(pieces, PlacedPiece{Piece: piece, At: CoordinateFromIndex(i)})
	}
	return pieces
}

// FindKing returns the square of the first king of the given colour in
// row-major order, or false if the colour has no king.
func (b Board) FindKing(colour Colour) (Coordinate, bool) {
	king := MakePiece(colour, King)
	for i, piece := range b.squares {
		if piece == king {
			return CoordinateFromIndex(i), true
		}
	}
	return Coordinate{}, false
}
