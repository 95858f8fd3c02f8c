package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"example.com/bc-solver/internal/game"
	"example.com/bc-solver/internal/guesser"
)

// session is one game: a secret and the guesser trying to find it.
type session struct {
	id          string
	secret      int
	guesser     guesser.Guesser
	maxAttempts int

	out io.Writer // transcript; io.Discard in batch runs
	log *slog.Logger
}

// run plays until the secret is found and returns the number of attempts.
func (s *session) run(ctx context.Context) (int, error) {
	solver := s.guesser.Solver()

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if n := solver.History().Len(); n >= s.maxAttempts {
			return n, fmt.Errorf("game %s: %w after %d attempts", s.id, ErrTooManyAttempts, n)
		}

		guess, err := s.guesser.Next(ctx)
		if err != nil {
			return solver.History().Len(), fmt.Errorf("game %s: next guess: %w", s.id, err)
		}

		res := game.Score(s.secret, guess)
		n := solver.Record(guess, res)

		s.log.Debug("attempt scored", "game", s.id, "attempt", n, "guess", guess, "cows", res.Cows, "bulls", res.Bulls)

		if res.Solved() {
			fmt.Fprintf(s.out, "%d > %d =========== You guessed it in %d attempts\n", n, guess, n)
			return n, nil
		}
		fmt.Fprintf(s.out, "%d > %d =========== %s\n", n, guess, res)
	}
}
