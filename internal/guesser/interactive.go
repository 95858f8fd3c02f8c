package guesser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"example.com/bc-solver/internal/game"
)

var ErrNoPrompter = errors.New("interactive guesser needs a prompter")

// Interactive reads guesses typed by a player. With assist on, guesses that
// contradict earlier scores are refused as well.
type Interactive struct {
	solver *game.Solver
	ask    Prompter
	out    io.Writer
	assist bool
}

func NewInteractive(s *game.Solver, ask Prompter, out io.Writer, assist bool) *Interactive {
	if out == nil {
		out = io.Discard
	}
	return &Interactive{solver: s, ask: ask, out: out, assist: assist}
}

func (m *Interactive) Solver() *game.Solver { return m.solver }

func (m *Interactive) Next(ctx context.Context) (int, error) {
	if m.ask == nil {
		return 0, ErrNoPrompter
	}

	question := strconv.Itoa(m.solver.History().Len() + 1)
	for {
		line, err := m.ask.Ask(ctx, question)
		if err != nil {
			return 0, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		guess, err := game.ParseGuess(line)
		if err == nil {
			err = m.solver.Validate(guess)
		}
		if err == nil && m.assist {
			err = m.solver.CheckCompliance(guess)
		}
		if err != nil {
			fmt.Fprintln(m.out, err)
			continue
		}
		return guess, nil
	}
}
