package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config describes all runtime settings of the solver.
//
// Load it once in main, validate, and pass it down; nothing reads the
// environment after that.
type Config struct {
	Env string // dev|prod

	Log struct {
		Format string // text|json
		Level  string // debug|info|warn|error
	}

	Game struct {
		Guesser     string // auto|brute|loop|manual|assist
		Secret      int    // 0 => drawn from the grid
		Seed        uint64 // 0 => random
		MaxDraws    int    // grid draws before the auto guesser scans
		BruteAfter  int    // attempts played from the grid before brute scans
		MaxAttempts int    // a game that needs more is aborted
	}

	Loop struct {
		Count    int
		Workers  int
		Progress bool
	}
}

var guessers = map[string]bool{
	"auto": true, "brute": true, "loop": true, "manual": true, "assist": true,
}

func LoadFromEnv() (Config, error) {
	var c Config

	c.Env = envString("APP_ENV", "dev")
	c.Log.Format = envString("LOG_FORMAT", "text")
	c.Log.Level = envString("LOG_LEVEL", "info")

	c.Game.Guesser = envString("BNC_GUESSER", "auto")
	c.Game.Secret = envInt("BNC_SECRET", 0)
	c.Game.Seed = envUint64("BNC_SEED", 0)
	c.Game.MaxDraws = envInt("BNC_MAX_DRAWS", 20000)
	c.Game.BruteAfter = envInt("BNC_BRUTE_AFTER", 2)
	c.Game.MaxAttempts = envInt("BNC_MAX_ATTEMPTS", 50)

	c.Loop.Count = envInt("BNC_LOOP_COUNT", 1000)
	c.Loop.Workers = envInt("BNC_WORKERS", 1)
	c.Loop.Progress = envBool("BNC_PROGRESS", true)

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT=%q (want text|json)", c.Log.Format)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if !guessers[c.Game.Guesser] {
		return fmt.Errorf("unsupported guesser %q (want auto|brute|loop|manual|assist)", c.Game.Guesser)
	}
	if c.Game.Secret < 0 {
		return errors.New("secret must not be negative")
	}
	if c.Game.MaxDraws <= 0 {
		return errors.New("BNC_MAX_DRAWS must be positive")
	}
	if c.Game.BruteAfter <= 0 {
		return errors.New("BNC_BRUTE_AFTER must be positive")
	}
	if c.Game.MaxAttempts <= 0 {
		return errors.New("BNC_MAX_ATTEMPTS must be positive")
	}
	if c.Loop.Count <= 0 {
		return errors.New("loop count must be positive")
	}
	if c.Loop.Workers <= 0 {
		return errors.New("workers must be positive")
	}
	return nil
}

func (c Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.Log.Level))); err != nil {
		return 0, fmt.Errorf("unsupported LOG_LEVEL=%q (want debug|info|warn|error)", c.Log.Level)
	}
	return lvl, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func envUint64(key string, def uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err == nil {
			return n
		}
	}
	return def
}
