package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brentlaster/spades/internal/bot"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.TargetScore)
	assert.Equal(t, bot.Intermediate, cfg.Level())
	assert.True(t, cfg.ShowHints)
	assert.Equal(t, 800*time.Millisecond, cfg.AIBidDelay)
	assert.Equal(t, 600*time.Millisecond, cfg.AIPlayDelay)
	assert.Equal(t, 1200*time.Millisecond, cfg.TrickPause)
	assert.False(t, cfg.CoachEnabled)
	assert.Equal(t, "http://localhost:11434/v1", cfg.CoachURL)
	assert.Equal(t, "llama3.2", cfg.CoachModel)
	assert.Equal(t, 5*time.Second, cfg.CoachTimeout)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("SPADES_TARGET_SCORE", "300")
	t.Setenv("SPADES_DIFFICULTY", "Advanced")
	t.Setenv("SPADES_SEED", "42")
	t.Setenv("SPADES_TRICK_PAUSE", "0s")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.TargetScore)
	assert.Equal(t, bot.Advanced, cfg.Level())
	assert.Equal(t, int64(42), cfg.ResolveSeed())
	assert.Zero(t, cfg.TrickPause)
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string][2]string{
		"target":     {"SPADES_TARGET_SCORE", "0"},
		"difficulty": {"SPADES_DIFFICULTY", "expert"},
		"log level":  {"SPADES_LOG_LEVEL", "loud"},
		"delay":      {"SPADES_AI_PLAY_DELAY", "-1s"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Parse()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	t.Run("malformed", func(t *testing.T) {
		t.Setenv("SPADES_TARGET_SCORE", "lots")
		_, err := Parse()
		assert.Error(t, err)
	})
}

func TestLoadReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SPADES_COACH_MODEL=mistral\n"), 0o600))
	t.Setenv("SPADES_COACH_MODEL", "")
	require.NoError(t, os.Unsetenv("SPADES_COACH_MODEL"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mistral", cfg.CoachModel)
}

func TestLoadIgnoresMissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = ParseLevel("trace")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestResolveSeedDrawsNonZero(t *testing.T) {
	assert.NotZero(t, Config{}.ResolveSeed())
}
