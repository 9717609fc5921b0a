package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/iroh-go/internal/engine"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Moves      []JSONMove `json:"moves,omitempty"`
	Result     string     `json:"result"`
	Status     string     `json:"status"`
	PlyCount   int        `json:"plyCount"`
	FinalFEN   string     `json:"finalFEN"`
	Transcript string     `json:"transcript"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
}

// JSONAnalysis represents one analysed position in JSON format.
type JSONAnalysis struct {
	Index    int     `json:"index"`
	FEN      string  `json:"fen"`
	BestMove string  `json:"bestMove,omitempty"`
	UCI      string  `json:"uci,omitempty"`
	Score    float64 `json:"score"`
	Nodes    int     `json:"nodes"`
	Depth    int     `json:"depth"`
	Error    string  `json:"error,omitempty"`
}

// JSONOutput holds multiple analyses for array output.
type JSONOutput struct {
	RunID    string          `json:"runId,omitempty"`
	Analyses []*JSONAnalysis `json:"analyses"`
}

// GameToJSON converts a game to JSON format.
func GameToJSON(game engine.Game) *JSONGame {
	state := game.State()
	jg := &JSONGame{
		Result:     engine.Result(game),
		Status:     game.Status().String(),
		PlyCount:   len(state.Sans),
		FinalFEN:   engine.FEN(state),
		Transcript: Transcript(game),
	}

	for i, san := range state.Sans {
		turn := state.Turn - len(state.Sans) + i
		jg.Moves = append(jg.Moves, JSONMove{
			MoveNumber: (turn + 1) / 2,
			Color:      colourName(moveColour(state, i).IsFirst()),
			SAN:        san,
		})
	}
	return jg
}

// OutputGameJSON writes a single game in JSON format.
func OutputGameJSON(w io.Writer, game engine.Game) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(game))
}

// AnalysisToJSON converts an analysis to JSON format.
func AnalysisToJSON(a Analysis) *JSONAnalysis {
	ja := &JSONAnalysis{
		Index:    a.Index,
		FEN:      a.FEN,
		BestMove: a.BestMove,
		UCI:      a.UCI,
		Score:    a.Score,
		Nodes:    a.Nodes,
		Depth:    a.Depth,
	}
	if a.Err != nil {
		ja.Error = a.Err.Error()
	}
	return ja
}

func colourName(isFirstPlayer bool) string {
	if isFirstPlayer {
		return "white"
	}
	return "black"
}
