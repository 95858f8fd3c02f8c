package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{
		"APP_ENV", "LOG_FORMAT", "LOG_LEVEL", "BNC_GUESSER", "BNC_SECRET", "BNC_SEED",
		"BNC_MAX_DRAWS", "BNC_BRUTE_AFTER", "BNC_MAX_ATTEMPTS", "BNC_LOOP_COUNT",
		"BNC_WORKERS", "BNC_PROGRESS",
	} {
		t.Setenv(k, "") // empty means unset
	}

	c, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "dev", c.Env)
	assert.Equal(t, "text", c.Log.Format)
	assert.Equal(t, "auto", c.Game.Guesser)
	assert.Equal(t, 0, c.Game.Secret)
	assert.Equal(t, 20000, c.Game.MaxDraws)
	assert.Equal(t, 2, c.Game.BruteAfter)
	assert.Equal(t, 50, c.Game.MaxAttempts)
	assert.Equal(t, 1000, c.Loop.Count)
	assert.Equal(t, 1, c.Loop.Workers)
	assert.True(t, c.Loop.Progress)

	lvl, err := c.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BNC_GUESSER", "brute")
	t.Setenv("BNC_SECRET", "4271")
	t.Setenv("BNC_SEED", "99")
	t.Setenv("BNC_LOOP_COUNT", "25")
	t.Setenv("BNC_WORKERS", "4")
	t.Setenv("BNC_PROGRESS", "false")
	t.Setenv("BNC_MAX_DRAWS", "not-a-number") // ignored, default kept

	c, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, "brute", c.Game.Guesser)
	assert.Equal(t, 4271, c.Game.Secret)
	assert.Equal(t, uint64(99), c.Game.Seed)
	assert.Equal(t, 20000, c.Game.MaxDraws)
	assert.Equal(t, 25, c.Loop.Count)
	assert.Equal(t, 4, c.Loop.Workers)
	assert.False(t, c.Loop.Progress)

	lvl, err := c.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"log format", map[string]string{"LOG_FORMAT": "xml"}, "LOG_FORMAT"},
		{"log level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"guesser", map[string]string{"BNC_GUESSER": "oracle"}, "guesser"},
		{"secret", map[string]string{"BNC_SECRET": "-5"}, "secret"},
		{"workers", map[string]string{"BNC_WORKERS": "0"}, "workers"},
		{"loop count", map[string]string{"BNC_LOOP_COUNT": "-1"}, "loop count"},
		{"max attempts", map[string]string{"BNC_MAX_ATTEMPTS": "0"}, "BNC_MAX_ATTEMPTS"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := LoadFromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
