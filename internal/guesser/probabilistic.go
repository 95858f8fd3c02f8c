package guesser

import (
	"context"
	"log/slog"

	"example.com/bc-solver/internal/game"
)

const DefaultMaxDraws = 20000

// Probabilistic plays grid draws that are legal and consistent with history.
// When the compliant set gets too small for rejection sampling it scans.
type Probabilistic struct {
	solver   *game.Solver
	maxDraws int
	log      *slog.Logger
}

func NewProbabilistic(s *game.Solver, maxDraws int, log *slog.Logger) *Probabilistic {
	if maxDraws <= 0 {
		maxDraws = DefaultMaxDraws
	}
	if log == nil {
		log = slog.Default()
	}
	return &Probabilistic{solver: s, maxDraws: maxDraws, log: log}
}

func (p *Probabilistic) Solver() *game.Solver { return p.solver }

func (p *Probabilistic) Next(ctx context.Context) (int, error) {
	guess, ok, err := draw(ctx, p.solver, p.maxDraws)
	if err != nil {
		return 0, err
	}
	if ok {
		return guess, nil
	}

	p.log.Debug("draws exhausted, scanning", "draws", p.maxDraws, "attempts", p.solver.History().Len())
	return scan(ctx, p.solver)
}
