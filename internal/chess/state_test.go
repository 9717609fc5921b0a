package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewGameState(t *testing.T) {
	s := NewGameState()

	if s.ToMove != White {
		t.Errorf("ToMove = %v; want White", s.ToMove)
	}
	if s.Turn != 1 {
		t.Errorf("Turn = %d; want 1", s.Turn)
	}
	if s.Castling != AllCastlingRights {
		t.Errorf("Castling = %+v; want all rights", s.Castling)
	}
	if s.HalfmoveClock() != 0 || s.FullmoveNumber() != 1 {
		t.Errorf("clocks = %d %d; want 0 1", s.HalfmoveClock(), s.FullmoveNumber())
	}
}

func TestCastlingRightsWithout(t *testing.T) {
	rights := AllCastlingRights.Without(White, true).Without(Black, false)

	want := CastlingRights{WhiteQueenside: true, BlackKingside: true}
	if rights != want {
		t.Errorf("rights = %+v; want %+v", rights, want)
	}
	if rights.Has(White, true) || !rights.Has(White, false) || !rights.Has(Black, true) || rights.Has(Black, false) {
		t.Errorf("Has() disagrees with fields: %+v", rights)
	}
	if !AllCastlingRights.WhiteKingside {
		t.Error("Without modified the receiver")
	}
}

func TestCapturedPiecesRecordDoesNotAlias(t *testing.T) {
	base := CapturedPieces{ByWhite: make([]PieceType, 0, 8)}
	base = base.Record(White, Pawn, 3)

	left := base.Record(White, Knight, 5)
	right := base.Record(White, Rook, 5)

	if diff := cmp.Diff([]PieceType{Pawn, Knight}, left.Of(White)); diff != "" {
		t.Errorf("left captures mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]PieceType{Pawn, Rook}, right.Of(White)); diff != "" {
		t.Errorf("right captures mismatch (-want +got):\n%s", diff)
	}
	if len(base.Of(White)) != 1 || base.LastCaptureTurn != 3 {
		t.Errorf("base changed: %+v", base)
	}
	if left.LastCaptureTurn != 5 {
		t.Errorf("LastCaptureTurn = %d; want 5", left.LastCaptureTurn)
	}
}

func TestGameStateSansOf(t *testing.T) {
	s := NewGameState()
	for _, san := range []string{"e4", "e5", "Nf3", "Nc6", "Bb5"} {
		s = s.WithSan(san)
		s.Turn++
	}

	if diff := cmp.Diff([]string{"e4", "Nf3", "Bb5"}, s.SansOf(White)); diff != "" {
		t.Errorf("SansOf(White) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"e5", "Nc6"}, s.SansOf(Black)); diff != "" {
		t.Errorf("SansOf(Black) mismatch (-want +got):\n%s", diff)
	}
}

func TestGameStateSansOfBlackFirst(t *testing.T) {
	s := GameState{Turn: 2, ToMove: Black}
	s = s.WithSan("e5")
	s.Turn++
	s = s.WithSan("Nf3")
	s.Turn++

	if diff := cmp.Diff([]string{"e5"}, s.SansOf(Black)); diff != "" {
		t.Errorf("SansOf(Black) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Nf3"}, s.SansOf(White)); diff != "" {
		t.Errorf("SansOf(White) mismatch (-want +got):\n%s", diff)
	}
}
