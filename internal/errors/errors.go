// Package errors provides sentinel errors and error types for the iroh engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed position-notation string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a malformed algebraic square name.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrIllegalMove indicates move text that matches no legal move.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move submitted after the game finished.
	ErrGameOver = errors.New("game is over")

	// ErrNoMoves indicates a search on a position without legal moves.
	ErrNoMoves = errors.New("no legal moves")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the ply the move was submitted
// at, the move text and the position it was played from.
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // Turn number the move was submitted at (0 if not applicable)
	MoveText string // The move text that caused the error
	FEN      string // Position the move was tried against (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// PositionError reports which field of a position-notation string could not
// be parsed.
type PositionError struct {
	Err   error  // The underlying error
	FEN   string // The full notation string
	Field string // Field name: "placement", "side", "castling", "clocks" ...
	Got   string // The offending text
}

// Error returns a formatted error message with field and context.
func (e *PositionError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("in %q", e.FEN))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "position error"
}

// Unwrap returns the underlying error.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
