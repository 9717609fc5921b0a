package session

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/iroh-go/internal/engine"
	"github.com/lgbarn/iroh-go/internal/errors"
)

// Commands understood by Run besides move text.
const (
	cmdQuit       = "quit"
	cmdMoves      = "moves"
	cmdFEN        = "fen"
	cmdTranscript = "transcript"
	cmdHelp       = "help"
)

// Run plays the session interactively: it reads one move or command per line
// from in and answers each human move with an engine move. It returns when
// the game ends, the input is exhausted, or "quit" is entered.
func (s *Session) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	if err := s.engineTurns(out); err != nil {
		return err
	}

	for !s.IsOver() {
		fmt.Fprintf(out, "%s> ", s.human)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case cmdQuit:
			fmt.Fprintln(out, s.Transcript())
			return nil
		case cmdMoves:
			fmt.Fprintln(out, strings.Join(engine.LegalNotations(s.game.State()), " "))
			continue
		case cmdFEN:
			fmt.Fprintln(out, engine.FEN(s.game.State()))
			continue
		case cmdTranscript:
			fmt.Fprintln(out, s.Transcript())
			continue
		case cmdHelp:
			fmt.Fprintln(out, "enter a move (e4, Nf3, exd5, e8=Q, O-O) or one of: moves fen transcript quit")
			continue
		}

		if _, err := s.Play(line); err != nil {
			if stderrors.Is(err, errors.ErrIllegalMove) {
				fmt.Fprintf(out, "illegal move %q; type %q to list legal moves\n", line, cmdMoves)
				continue
			}
			return err
		}

		if err := s.engineTurns(out); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading moves")
	}

	fmt.Fprintln(out, s.Transcript())
	return nil
}

// engineTurns plays engine moves until the human is to move or the game ends.
func (s *Session) engineTurns(out io.Writer) error {
	for !s.IsOver() && !s.HumanToMove() {
		result, err := s.EngineMove()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s plays %s\n", s.human.Opposite(), result.Notation)
	}
	return nil
}
