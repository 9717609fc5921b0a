// Package session runs a game between a human and the search, one move at a
// time. Each session carries a random ID for log correlation.
package session

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgbarn/iroh-go/internal/chess"
	"github.com/lgbarn/iroh-go/internal/engine"
	"github.com/lgbarn/iroh-go/internal/errors"
	"github.com/lgbarn/iroh-go/internal/output"
	"github.com/lgbarn/iroh-go/internal/search"
)

// Session is a game in progress between a human and the engine.
// A Session is not safe for concurrent use.
type Session struct {
	ID       uuid.UUID
	game     engine.Game
	human    chess.Colour
	searcher *search.Searcher
	log      zerolog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithHumanColour sets the side the human plays. The default is White.
func WithHumanColour(c chess.Colour) Option {
	return func(s *Session) {
		s.human = c
	}
}

// WithSearcher sets the searcher that picks the engine's moves.
func WithSearcher(searcher *search.Searcher) Option {
	return func(s *Session) {
		if searcher != nil {
			s.searcher = searcher
		}
	}
}

// WithLogger sets the session logger. Entries carry the session ID.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// New starts a session from the standard position.
func New(opts ...Option) *Session {
	return newSession(engine.NewGame(), opts)
}

// NewFromFEN starts a session from a FEN position.
func NewFromFEN(fen string, opts ...Option) (*Session, error) {
	game, err := engine.NewGameFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return newSession(game, opts), nil
}

func newSession(game engine.Game, opts []Option) *Session {
	s := &Session{
		ID:       uuid.New(),
		game:     game,
		human:    chess.White,
		searcher: search.New(),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("game_id", s.ID.String()).Logger()
	s.log.Info().
		Str("fen", engine.FEN(game.State())).
		Str("human", s.human.String()).
		Msg("session started")
	return s
}

// Game returns the current game.
func (s *Session) Game() engine.Game {
	return s.game
}

// HumanColour returns the side the human plays.
func (s *Session) HumanColour() chess.Colour {
	return s.human
}

// IsOver reports whether the game has finished.
func (s *Session) IsOver() bool {
	_, playable := s.game.(engine.Playable)
	return !playable
}

// HumanToMove reports whether the game awaits a human move.
func (s *Session) HumanToMove() bool {
	return !s.IsOver() && s.game.State().ToMove == s.human
}

// Transcript returns the move-pair transcript of the game so far.
func (s *Session) Transcript() string {
	return output.Transcript(s.game)
}

// Play submits a move for the side to move. An illegal move returns a
// *errors.MoveError wrapping errors.ErrIllegalMove and leaves the game as it
// was; a move after the game ended wraps errors.ErrGameOver.
func (s *Session) Play(notation string) (engine.Game, error) {
	state := s.game.State()

	playable, ok := s.game.(engine.Playable)
	if !ok {
		return s.game, s.moveError(errors.ErrGameOver, notation, state)
	}

	next := playable.MakeMove(notation)
	if _, illegal := next.(engine.IllegalMove); illegal {
		s.log.Debug().Str("move", notation).Msg("illegal move rejected")
		return s.game, s.moveError(errors.ErrIllegalMove, notation, state)
	}

	s.game = next
	s.log.Info().
		Str("move", notation).
		Str("status", next.Status().String()).
		Msg("move played")
	return next, nil
}

// EngineMove searches the current position and plays the chosen move.
func (s *Session) EngineMove() (search.Result, error) {
	if s.IsOver() {
		return search.Result{}, s.moveError(errors.ErrGameOver, "", s.game.State())
	}

	result, err := s.searcher.Search(s.game.State())
	if err != nil {
		return result, err
	}
	s.log.Debug().
		Str("best", result.Notation).
		Float64("score", result.Score).
		Int("nodes", result.Nodes).
		Msg("engine chose move")

	// Play the searched move itself: its notation may also name another
	// piece's move, and FindMove would return the first of those.
	s.game = engine.Play(s.game.State(), result.Move)
	s.log.Info().
		Str("move", result.Notation).
		Str("status", s.game.Status().String()).
		Msg("move played")
	return result, nil
}

func (s *Session) moveError(err error, notation string, state chess.GameState) error {
	return &errors.MoveError{
		Err:      err,
		Ply:      state.Turn,
		MoveText: notation,
		FEN:      engine.FEN(state),
	}
}
