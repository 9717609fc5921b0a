package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// Analysis is the outcome of searching one position.
type Analysis struct {
	Index    int // Original input position, 0-based
	FEN      string
	BestMove string
	UCI      string
	Score    float64
	Nodes    int
	Depth    int
	Err      error
}

// AnalysisWriter is the interface for writing analysis results.
// Different implementations handle different output formats (text, JSON).
type AnalysisWriter interface {
	// WriteAnalysis writes a single result to the output.
	WriteAnalysis(a Analysis) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes one tab-separated line per analysis:
// index, best move, score, nodes, FEN. Failures print the error in place of
// the move.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteAnalysis writes an analysis as a text line.
func (tw *TextWriter) WriteAnalysis(a Analysis) error {
	if a.Err != nil {
		_, err := fmt.Fprintf(tw.w, "%d\terror: %v\t%s\n", a.Index+1, a.Err, a.FEN)
		return err
	}
	_, err := fmt.Fprintf(tw.w, "%d\t%s\t%.2f\t%d\t%s\n", a.Index+1, a.BestMove, a.Score, a.Nodes, a.FEN)
	return err
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes analyses in JSON format.
// It buffers analyses and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w        io.Writer
	runID    string
	analyses []*JSONAnalysis
	single   bool // If true, write each analysis immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches analyses and writes them as an array on Close().
// The runID, if not empty, labels the batch.
func NewJSONWriter(w io.Writer, runID string) *JSONWriter {
	return &JSONWriter{
		w:        w,
		runID:    runID,
		analyses: make([]*JSONAnalysis, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each analysis immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteAnalysis buffers an analysis for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteAnalysis(a Analysis) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(AnalysisToJSON(a))
	}

	jw.analyses = append(jw.analyses, AnalysisToJSON(a))
	return nil
}

// Flush writes all buffered analyses as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.analyses) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{RunID: jw.runID, Analyses: jw.analyses})

	// Clear buffer after writing
	jw.analyses = jw.analyses[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
