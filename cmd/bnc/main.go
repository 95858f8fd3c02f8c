package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"example.com/bc-solver/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	log := newLogger(cfg, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := &runner{ctx: ctx, cfg: cfg, log: log}
	parser := flags.NewParser(nil, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "bnc"
	mustAdd(parser.AddCommand("play",
		"Play one game",
		"Play one game of Bulls and Cows. Non-interactive guessers print the secret first.",
		&playCommand{r: r}))
	mustAdd(parser.AddCommand("loop",
		"Simulate many games",
		"Play many games with random secrets and print how many attempts they took.",
		&loopCommand{r: r}))

	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, ferr.Message)
			os.Exit(0)
		}
		if errors.As(err, &ferr) {
			fmt.Fprintln(os.Stderr, ferr.Message)
			os.Exit(2)
		}
		log.Error("bnc failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	lvl, _ := cfg.LogLevel() // validated by LoadFromEnv
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler = slog.NewTextHandler(w, opts)
	if cfg.Log.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h).With("env", cfg.Env)
}

func mustAdd(_ *flags.Command, err error) {
	if err != nil {
		panic(err)
	}
}

func stderrIsTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
