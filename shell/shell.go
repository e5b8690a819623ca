// Package shell implements the interactive console loop around the game
// engine. All input retries live here: the engine only ever receives a
// well-formed move, and re-prompting on bad or illegal input is this
// layer's job.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/aureliano/dominoes/ai"
	"github.com/aureliano/dominoes/config"
	"github.com/aureliano/dominoes/game"
	"github.com/aureliano/dominoes/move"
)

var errQuit = errors.New("quit")

// Shell runs one game to completion over a readline loop.
type Shell struct {
	l        *readline.Instance
	g        *game.Game
	strategy ai.Strategy
}

func NewShell(cfg *config.Config, g *game.Game, strategy ai.Strategy) (*Shell, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: cfg.HistoryFile,
		EOFPrompt:   "exit",
	})
	if err != nil {
		return nil, err
	}
	return &Shell{l: l, g: g, strategy: strategy}, nil
}

func (s *Shell) Close() error {
	return s.l.Close()
}

// Loop renders the game, alternates turns, and returns when the game
// reaches a terminal status or the user quits.
func (s *Shell) Loop() error {
	for {
		fmt.Println(s.g.ToDisplayText())
		if s.g.Over() {
			return nil
		}
		var err error
		if s.g.PlayerOnTurn() == game.SeatHuman {
			err = s.humanTurn()
		} else {
			err = s.computerTurn()
		}
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// humanTurn re-prompts until a line parses as an in-bounds integer that
// the engine accepts.
func (s *Shell) humanTurn() error {
	for {
		line, err := s.readLine()
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Println("Invalid input. Please try again.")
			continue
		}
		err = s.g.PlayMove(move.Move(n))
		switch {
		case errors.Is(err, game.ErrOutOfBounds):
			fmt.Println("Invalid input. Please try again.")
		case errors.Is(err, game.ErrIllegalMove):
			fmt.Println("Illegal move. Please try again.")
		case err != nil:
			return err
		default:
			return nil
		}
	}
}

// computerTurn waits for a bare Enter, then asks the strategy for a move.
// The strategy only returns legal moves, so a play error here is a bug.
func (s *Shell) computerTurn() error {
	if _, err := s.readLine(); err != nil {
		return err
	}
	m := s.strategy.ChooseMove(s.g.HandFor(game.SeatComputer).Tiles(), s.g.Snake())
	if err := s.g.PlayMove(m); err != nil {
		log.Error().Err(err).Stringer("move", m).Msg("strategy returned a bad move")
		return err
	}
	return nil
}

func (s *Shell) readLine() (string, error) {
	line, err := s.l.Readline()
	if err == readline.ErrInterrupt || err == io.EOF {
		return "", errQuit
	}
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "exit" || line == "bye" {
		return "", errQuit
	}
	return line, nil
}
