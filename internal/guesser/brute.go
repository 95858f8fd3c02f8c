package guesser

import (
	"context"
	"log/slog"

	"example.com/bc-solver/internal/game"
)

const DefaultBruteAfter = 2

// Brute opens with grid draws, then plays the smallest number still
// consistent with every scored attempt.
type Brute struct {
	solver   *game.Solver
	after    int
	maxDraws int
	log      *slog.Logger
}

func NewBrute(s *game.Solver, after, maxDraws int, log *slog.Logger) *Brute {
	if after <= 0 {
		after = DefaultBruteAfter
	}
	if maxDraws <= 0 {
		maxDraws = DefaultMaxDraws
	}
	if log == nil {
		log = slog.Default()
	}
	return &Brute{solver: s, after: after, maxDraws: maxDraws, log: log}
}

func (b *Brute) Solver() *game.Solver { return b.solver }

func (b *Brute) Next(ctx context.Context) (int, error) {
	if b.solver.History().Len() < b.after {
		guess, ok, err := draw(ctx, b.solver, b.maxDraws)
		if err != nil {
			return 0, err
		}
		if ok {
			return guess, nil
		}
		b.log.Debug("opening draws exhausted, scanning", "draws", b.maxDraws)
	}
	return scan(ctx, b.solver)
}
