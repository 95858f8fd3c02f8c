// Package guesser holds the strategies that pick the next guess of a game.
//
// Every strategy wraps a *game.Solver:
//   - Probabilistic draws from the likelihood grid until a guess is acceptable
//   - Brute draws for the opening and then scans the number range
//   - Interactive asks a human through a Prompter
package guesser

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"example.com/bc-solver/internal/game"
)

var ErrNoCandidate = errors.New("no guess is compliant with the history")

type Guesser interface {
	Next(ctx context.Context) (int, error)
	Solver() *game.Solver
}

// Prompter asks a question and returns the answer line.
type Prompter interface {
	Ask(ctx context.Context, question string) (string, error)
}

type Kind string

const (
	KindAuto   Kind = "auto"
	KindBrute  Kind = "brute"
	KindLoop   Kind = "loop"
	KindManual Kind = "manual"
	KindAssist Kind = "assist"
)

// Interactive reports whether the kind needs a human at the prompt.
func (k Kind) Interactive() bool {
	switch k {
	case KindAuto, KindBrute, KindLoop:
		return false
	}
	return true
}

type Options struct {
	MaxDraws   int // probabilistic draws before falling back to a scan
	BruteAfter int // attempts after which Brute switches to scanning

	Prompter Prompter  // required by the interactive kinds
	Out      io.Writer // where the interactive kinds report rejected input
	Log      *slog.Logger
}

// New picks a strategy by name. Unknown names get the manual guesser.
func New(kind Kind, solver *game.Solver, opts Options) Guesser {
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}

	switch kind {
	case KindAuto:
		return NewProbabilistic(solver, opts.MaxDraws, opts.Log)
	case KindBrute, KindLoop:
		return NewBrute(solver, opts.BruteAfter, opts.MaxDraws, opts.Log)
	case KindAssist:
		return NewInteractive(solver, opts.Prompter, opts.Out, true)
	default:
		return NewInteractive(solver, opts.Prompter, opts.Out, false)
	}
}

// scan returns the smallest acceptable number in [game.MinGuess, game.MaxGuess].
func scan(ctx context.Context, s *game.Solver) (int, error) {
	for n := game.MinGuess; n <= game.MaxGuess; n++ {
		if n%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if s.Acceptable(n) == nil {
			return n, nil
		}
	}
	return 0, ErrNoCandidate
}

// draw asks the generator up to maxDraws times for an acceptable guess.
// ok is false when every draw was rejected.
func draw(ctx context.Context, s *game.Solver, maxDraws int) (guess int, ok bool, err error) {
	for i := 0; i < maxDraws; i++ {
		if i%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, false, err
			}
		}
		g, err := s.Probable()
		if err != nil {
			return 0, false, err
		}
		if s.Acceptable(g) == nil {
			return g, true, nil
		}
	}
	return 0, false, nil
}
