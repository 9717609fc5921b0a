package engine_test

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	nchess "github.com/notnil/chess"

	"github.com/lgbarn/iroh-go/internal/chess"
	"github.com/lgbarn/iroh-go/internal/engine"
	"github.com/lgbarn/iroh-go/internal/testutil"
)

// oraclePositions avoid en passant and pawn captures onto the last rank
// within two plies, which the move set here does not model.
var oraclePositions = []struct {
	name string
	fen  string
}{
	{"initial", engine.InitialFEN},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"},
	{"rook endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"},
	{"castling", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"},
	{"promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1"},
	{"black to move", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"},
}

func TestLegalMoves_MatchNotnil(t *testing.T) {
	for _, pos := range oraclePositions {
		t.Run(pos.name, func(t *testing.T) {
			state := testutil.MustState(t, pos.fen)
			compareWithNotnil(t, state)

			for _, move := range engine.LegalMoves(state) {
				compareWithNotnil(t, engine.Resolve(move, state))
			}
		})
	}
}

func TestLegalMoves_MatchDragontooth(t *testing.T) {
	for _, pos := range oraclePositions {
		t.Run(pos.name, func(t *testing.T) {
			state := testutil.MustState(t, pos.fen)
			compareWithDragontooth(t, state)

			for _, move := range engine.LegalMoves(state) {
				compareWithDragontooth(t, engine.Resolve(move, state))
			}
		})
	}
}

func compareWithNotnil(t *testing.T, state chess.GameState) {
	t.Helper()
	fen := engine.FEN(state)

	opt, err := nchess.FEN(fen)
	if err != nil {
		t.Fatalf("notnil rejected %q: %v", fen, err)
	}
	game := nchess.NewGame(opt)

	var want []string
	for _, m := range game.ValidMoves() {
		want = append(want, m.String())
	}
	sort.Strings(want)

	testutil.AssertEqual(t, ourUCI(state), want, "moves in %s", fen)
}

func compareWithDragontooth(t *testing.T, state chess.GameState) {
	t.Helper()
	fen := engine.FEN(state)

	board := dragontoothmg.ParseFen(fen)
	var want []string
	for _, m := range board.GenerateLegalMoves() {
		want = append(want, m.String())
	}
	sort.Strings(want)

	testutil.AssertEqual(t, ourUCI(state), want, "moves in %s", fen)
}

func ourUCI(state chess.GameState) []string {
	var out []string
	for _, m := range engine.LegalMoves(state) {
		out = append(out, engine.UCI(m, state.ToMove))
	}
	sort.Strings(out)
	return out
}

func BenchmarkLegalMoves(b *testing.B) {
	state := engine.MustParseFEN(oraclePositions[1].fen)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = engine.LegalMoves(state)
	}
}

func BenchmarkApplyMove(b *testing.B) {
	state := chess.NewGameState()

	for i := 0; i < b.N; i++ {
		_ = engine.ApplyMove(state, "Nf3")
	}
}
