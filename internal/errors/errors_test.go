package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
// and are distinct from one another.
func TestSentinelErrors_Wrapping(t *testing.T) {
	sentinels := []error{ErrInvalidFEN, ErrInvalidSquare, ErrIllegalMove, ErrGameOver, ErrNoMoves, ErrInvalidConfig}

	for i, sentinel := range sentinels {
		wrapped := fmt.Errorf("context: %w", sentinel)
		if !errors.Is(wrapped, sentinel) {
			t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
		}
		for j, other := range sentinels {
			if i != j && errors.Is(wrapped, other) {
				t.Errorf("errors.Is(wrapped %v, %v) = true, want false", sentinel, other)
			}
		}
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
		want     string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:      ErrIllegalMove,
				Ply:      12,
				MoveText: "Nxe5",
				FEN:      "8/8/8/8/8/8/8/K6k w - - 0 1",
			},
			contains: []string{"ply 12", "Nxe5", "K6k", "illegal move"},
		},
		{
			name: "error only",
			err:  &MoveError{Err: ErrGameOver},
			want: "game is over",
		},
		{
			name: "empty",
			err:  &MoveError{},
			want: "move error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			if tt.want != "" && msg != tt.want {
				t.Errorf("MoveError.Error() = %q, want %q", msg, tt.want)
			}
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrIllegalMove,
		Ply:      24,
		MoveText: "O-O-O",
	}

	wrapped := fmt.Errorf("session failed: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.Ply != 24 {
		t.Errorf("extracted.Ply = %d, want 24", extracted.Ply)
	}
	if extracted.MoveText != "O-O-O" {
		t.Errorf("extracted.MoveText = %q, want %q", extracted.MoveText, "O-O-O")
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

func TestPositionError_Error(t *testing.T) {
	err := &PositionError{
		Err:   ErrInvalidFEN,
		FEN:   "rnbqkbnr/ppp w KQkq - 0 1",
		Field: "placement",
		Got:   "ppp",
	}

	msg := err.Error()
	for _, s := range []string{"placement", `"ppp"`, "invalid FEN"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("PositionError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrInvalidFEN) {
		t.Error("errors.Is(positionErr, ErrInvalidFEN) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")
	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrNoMoves, "search at depth %d", 3)

	if !errors.Is(wrapped, ErrNoMoves) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "depth 3") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
