// Package output formats games and analysis results: move-pair transcripts,
// plain text and JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/iroh-go/internal/chess"
	"github.com/lgbarn/iroh-go/internal/engine"
)

// DefaultMaxLineLength is the line length used when none is configured.
const DefaultMaxLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. A maxLineLength of zero or
// less uses DefaultMaxLineLength.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultMaxLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// Transcript returns the moves of game numbered in pairs and followed by the
// result, on one line: "1. e4 e5 2. d4 *".
func Transcript(game engine.Game) string {
	var sb strings.Builder
	ow := &OutputWriter{w: &sb, maxLineLength: int(^uint(0) >> 1)}
	writeTranscript(ow, game)
	return sb.String()
}

// WriteTranscript writes the transcript of game wrapped at maxLineLength,
// ending with a newline.
func WriteTranscript(w io.Writer, game engine.Game, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)
	writeTranscript(ow, game)
	ow.NewLine()
}

// writeTranscript emits move numbers, moves and the result. A history that
// starts with the second player is numbered "12... e5".
func writeTranscript(ow *OutputWriter, game engine.Game) {
	state := game.State()
	turn := state.Turn - len(state.Sans)

	for i, san := range state.Sans {
		moveNum := (turn + 1) / 2
		switch {
		case turn%2 == 1:
			ow.Write(fmt.Sprintf("%d.", moveNum))
		case i == 0:
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(san)
		turn++
	}

	ow.Write(engine.Result(game))
}

// moveColour returns the colour that played the i-th entry of the history.
func moveColour(state chess.GameState, i int) chess.Colour {
	turn := state.Turn - len(state.Sans) + i
	return chess.ColourOf(turn%2 == 1)
}
