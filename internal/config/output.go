package config

// OutputFormat selects how results are written.
type OutputFormat int

const (
	TextFormat OutputFormat = iota // Tab-separated lines and plain transcripts
	JSONFormat                     // JSON documents
)

// String returns the string representation of an output format.
func (f OutputFormat) String() string {
	switch f {
	case TextFormat:
		return "text"
	case JSONFormat:
		return "json"
	}
	return "unknown"
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies text or JSON output
	Format OutputFormat

	// MaxLineLength is the maximum line length for transcripts
	MaxLineLength int

	// ShowFEN prints the final position after a transcript
	ShowFEN bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        TextFormat,
		MaxLineLength: 80,
	}
}
