package chess

import (
	"fmt"

	"github.com/lgbarn/iroh-go/internal/errors"
)

// BoardSize is the number of files and ranks.
const BoardSize = 8

// File is a board file (column) in [0,7], a through h.
type File int8

// Rank is a board rank (row) in [0,7], 1 through 8.
type Rank int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Valid reports whether f is on the board.
func (f File) Valid() bool {
	return f >= FileA && f <= FileH
}

// Add returns the file delta files away, or false when that leaves the board.
func (f File) Add(delta int) (File, bool) {
	next := File(int(f) + delta)
	return next, next.Valid()
}

// String returns the file letter.
func (f File) String() string {
	return string(rune('a' + f))
}

// Valid reports whether r is on the board.
func (r Rank) Valid() bool {
	return r >= Rank1 && r <= Rank8
}

// Add returns the rank delta ranks away, or false when that leaves the board.
func (r Rank) Add(delta int) (Rank, bool) {
	next := Rank(int(r) + delta)
	return next, next.Valid()
}

// String returns the rank digit.
func (r Rank) String() string {
	return string(rune('1' + r))
}

// Coordinate is a validated square on the board.
type Coordinate struct {
	File File
	Rank Rank
}

// Square builds a coordinate from a file and rank.
func Square(file File, rank Rank) Coordinate {
	return Coordinate{File: file, Rank: rank}
}

// CoordinateFromIndex converts a board index (file + rank*8) to a coordinate.
func CoordinateFromIndex(index int) Coordinate {
	return Coordinate{File: File(index % BoardSize), Rank: Rank(index / BoardSize)}
}

// ParseCoordinate parses an algebraic square such as "e4".
func ParseCoordinate(s string) (Coordinate, error) {
	if len(s) != 2 {
		return Coordinate{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	c := Coordinate{File: File(s[0] - 'a'), Rank: Rank(s[1] - '1')}
	if !c.Valid() {
		return Coordinate{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	return c, nil
}

// Valid reports whether both file and rank are on the board.
func (c Coordinate) Valid() bool {
	return c.File.Valid() && c.Rank.Valid()
}

// Index returns the board index file + rank*8.
func (c Coordinate) Index() int {
	return int(c.File) + int(c.Rank)*BoardSize
}

// Offset returns the square df files and dr ranks away, or false when the
// result is off the board.
func (c Coordinate) Offset(df, dr int) (Coordinate, bool) {
	file, ok := c.File.Add(df)
	if !ok {
		return Coordinate{}, false
	}
	rank, ok := c.Rank.Add(dr)
	if !ok {
		return Coordinate{}, false
	}
	return Coordinate{File: file, Rank: rank}, true
}

// String returns the algebraic name of the square.
func (c Coordinate) String() string {
	return c.File.String() + c.Rank.String()
}
