package main

import (
	"context"
	"log/slog"
	"os"

	"example.com/bc-solver/internal/app"
	"example.com/bc-solver/internal/config"
	"example.com/bc-solver/internal/input"
)

// runner carries what every command needs once flags are parsed.
type runner struct {
	ctx context.Context
	cfg config.Config
	log *slog.Logger
}

type playCommand struct {
	r *runner

	Guesser string `short:"g" long:"guesser" description:"who guesses" choice:"auto" choice:"brute" choice:"manual" choice:"assist"`
	Secret  int    `short:"s" long:"secret" description:"secret number (default: drawn at random)"`
	Seed    uint64 `long:"seed" description:"random seed, 0 for a random one"`
}

func (c *playCommand) Execute(_ []string) error {
	cfg := c.r.cfg
	if c.Guesser != "" {
		cfg.Game.Guesser = c.Guesser
	}
	if c.Secret != 0 {
		cfg.Game.Secret = c.Secret
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}

	a, err := app.New(cfg, c.r.log, app.Options{
		Out:      os.Stdout,
		Prompter: input.NewAsker(os.Stdin, os.Stdout),
	})
	if err != nil {
		return err
	}
	_, err = a.Play(c.r.ctx)
	return err
}

type loopCommand struct {
	r *runner

	Guesser    string `short:"g" long:"guesser" description:"strategy under test" choice:"auto" choice:"brute" choice:"loop" default:"brute"`
	Count      int    `short:"n" long:"count" description:"number of games (default: BNC_LOOP_COUNT)"`
	Workers    int    `short:"w" long:"workers" description:"games played at once (default: BNC_WORKERS)"`
	Seed       uint64 `long:"seed" description:"random seed, 0 for a random one"`
	NoProgress bool   `long:"no-progress" description:"do not draw a progress bar"`
}

func (c *loopCommand) Execute(_ []string) error {
	cfg := c.r.cfg
	cfg.Game.Guesser = c.Guesser
	if c.Count != 0 {
		cfg.Loop.Count = c.Count
	}
	if c.Workers != 0 {
		cfg.Loop.Workers = c.Workers
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	cfg.Loop.Progress = cfg.Loop.Progress && !c.NoProgress && stderrIsTerminal()

	a, err := app.New(cfg, c.r.log, app.Options{
		Out:      os.Stdout,
		Progress: os.Stderr,
	})
	if err != nil {
		return err
	}
	_, err = a.Simulate(c.r.ctx)
	return err
}
