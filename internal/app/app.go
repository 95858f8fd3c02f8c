package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"example.com/bc-solver/internal/config"
	"example.com/bc-solver/internal/game"
	"example.com/bc-solver/internal/guesser"
)

var (
	ErrTooManyAttempts = errors.New("too many attempts")
	ErrInteractiveLoop = errors.New("batch runs need a non-interactive guesser")
)

type App struct {
	cfg config.Config
	log *slog.Logger

	seed game.Grid
	rnd  *rand.Rand

	out      io.Writer
	progress io.Writer
	prompter guesser.Prompter
}

type Options struct {
	Out      io.Writer        // game transcript and summaries; default io.Discard
	Progress io.Writer        // progress bar of batch runs; nil disables it
	Prompter guesser.Prompter // required by the manual and assist guessers
}

func New(cfg config.Config, log *slog.Logger, opts Options) (*App, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Debug("random source", "seed", seed)

	progress := opts.Progress
	if !cfg.Loop.Progress {
		progress = nil
	}

	return &App{
		cfg:      cfg,
		log:      log,
		seed:     game.SeedGrid(),
		rnd:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		out:      opts.Out,
		progress: progress,
		prompter: opts.Prompter,
	}, nil
}

// Play runs a single game and returns the number of attempts it took.
func (a *App) Play(ctx context.Context) (int, error) {
	kind := guesser.Kind(a.cfg.Game.Guesser)
	s, err := a.newSession(kind, a.cfg.Game.Secret, a.rnd, a.out)
	if err != nil {
		return 0, err
	}

	a.log.Info("game started", "game", s.id, "guesser", kind)
	if !kind.Interactive() {
		fmt.Fprintf(a.out, "0 > The secret number is %d\n", s.secret)
	}

	n, err := s.run(ctx)
	if err != nil {
		return n, err
	}
	a.log.Info("game finished", "game", s.id, "attempts", n)
	return n, nil
}

// Summary aggregates a batch run.
type Summary struct {
	Games         int
	TotalAttempts int
	MinAttempts   int
	MaxAttempts   int
}

func (s Summary) Average() float64 {
	if s.Games == 0 {
		return 0
	}
	return math.Round(float64(s.TotalAttempts)/float64(s.Games)*100) / 100
}

func (s *Summary) add(attempts int) {
	if s.Games == 0 || attempts < s.MinAttempts {
		s.MinAttempts = attempts
	}
	if attempts > s.MaxAttempts {
		s.MaxAttempts = attempts
	}
	s.Games++
	s.TotalAttempts += attempts
}

// Simulate plays Loop.Count games with random secrets and prints a summary.
// Games run on at most Loop.Workers goroutines; each one owns its solver and
// random source, so the only shared state is the summary.
func (a *App) Simulate(ctx context.Context) (Summary, error) {
	kind := guesser.Kind(a.cfg.Game.Guesser)
	if kind.Interactive() {
		return Summary{}, fmt.Errorf("%w: %q", ErrInteractiveLoop, kind)
	}

	count := a.cfg.Loop.Count
	bar := a.newProgressBar(count)

	var (
		mu  sync.Mutex
		sum Summary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Loop.Workers)

	a.log.Info("simulation started", "games", count, "workers", a.cfg.Loop.Workers, "guesser", kind)

	for i := 0; i < count; i++ {
		if gctx.Err() != nil {
			break
		}
		rnd := rand.New(rand.NewPCG(a.rnd.Uint64(), a.rnd.Uint64()))

		g.Go(func() error {
			s, err := a.newSession(kind, 0, rnd, io.Discard)
			if err != nil {
				return err
			}
			n, err := s.run(gctx)
			if err != nil {
				return err
			}

			mu.Lock()
			sum.add(n)
			mu.Unlock()

			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return sum, err
	}
	if err := ctx.Err(); err != nil {
		return sum, err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	a.log.Info("simulation finished", "games", sum.Games, "average", sum.Average())
	a.printSummary(sum)
	return sum, nil
}

// newSession builds a solver and guesser for one game. secret 0 means draw one.
func (a *App) newSession(kind guesser.Kind, secret int, rnd *rand.Rand, out io.Writer) (*session, error) {
	solver := game.NewSolver(game.NewGenerator(a.seed, rnd, a.log))

	if secret == 0 {
		var err error
		if secret, err = solver.Probable(); err != nil {
			return nil, fmt.Errorf("draw secret: %w", err)
		}
	}
	if err := solver.Validate(secret); err != nil {
		return nil, fmt.Errorf("secret %d: %w", secret, err)
	}

	g := guesser.New(kind, solver, guesser.Options{
		MaxDraws:   a.cfg.Game.MaxDraws,
		BruteAfter: a.cfg.Game.BruteAfter,
		Prompter:   a.prompter,
		Out:        out,
		Log:        a.log,
	})

	return &session{
		id:          uuid.NewString(),
		secret:      secret,
		guesser:     g,
		maxAttempts: a.cfg.Game.MaxAttempts,
		out:         out,
		log:         a.log,
	}, nil
}

func (a *App) newProgressBar(count int) *progressbar.ProgressBar {
	if a.progress == nil {
		return nil
	}
	return progressbar.NewOptions(count,
		progressbar.OptionSetWriter(a.progress),
		progressbar.OptionSetDescription("games"),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(a.progress) }),
	)
}

func (a *App) printSummary(s Summary) {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "loopCount\ttotalAttempts\taverage\tmin\tmax")
	fmt.Fprintf(tw, "%d\t%d\t%.2f\t%d\t%d\n", s.Games, s.TotalAttempts, s.Average(), s.MinAttempts, s.MaxAttempts)
	_ = tw.Flush()
}
