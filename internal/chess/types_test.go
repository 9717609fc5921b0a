package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPieceEncoding(t *testing.T) {
	for _, colour := range []Colour{White, Black} {
		for pt := Pawn; pt <= King; pt++ {
			p := MakePiece(colour, pt)
			if p.IsEmpty() {
				t.Errorf("MakePiece(%v, %v) is Empty", colour, pt)
			}
			if p.Type() != pt {
				t.Errorf("MakePiece(%v, %v).Type() = %v", colour, pt, p.Type())
			}
			if p.Colour() != colour {
				t.Errorf("MakePiece(%v, %v).Colour() = %v", colour, pt, p.Colour())
			}
		}
	}
}

func TestPieceLetter(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{W(King), 'K'},
		{W(Pawn), 'P'},
		{B(Knight), 'n'},
		{B(Queen), 'q'},
	}
	for _, tt := range tests {
		if got := tt.piece.Letter(); got != tt.want {
			t.Errorf("%v.Letter() = %c; want %c", tt.piece, got, tt.want)
		}
		if back := PieceTypeFromLetter(tt.want); back != tt.piece.Type() {
			t.Errorf("PieceTypeFromLetter(%c) = %v; want %v", tt.want, back, tt.piece.Type())
		}
	}
	if got := PieceTypeFromLetter('x'); got != NoPieceType {
		t.Errorf("PieceTypeFromLetter('x') = %v; want NoPieceType", got)
	}
}

func TestPieceValues(t *testing.T) {
	want := map[PieceType]int{Pawn: 1, Knight: 3, Bishop: 3, Rook: 5, Queen: 9, King: 0}
	got := make(map[PieceType]int)
	for pt := range want {
		got[pt] = pt.Value()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("piece values mismatch (-want +got):\n%s", diff)
	}
}

func TestColourRanks(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not an involution")
	}
	if White.Forward() != 1 || Black.Forward() != -1 {
		t.Error("Forward() direction wrong")
	}
	if White.PawnRank() != Rank2 || Black.PawnRank() != Rank7 {
		t.Error("PawnRank() wrong")
	}
	if White.LastRank() != Rank8 || Black.LastRank() != Rank1 {
		t.Error("LastRank() wrong")
	}
	if ColourOf(true) != White || ColourOf(false) != Black {
		t.Error("ColourOf() wrong")
	}
}
