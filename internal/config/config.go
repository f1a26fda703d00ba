package config

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/brentlaster/spades/internal/bot"
)

// Config holds runtime settings for a table.
type Config struct {
	TargetScore int    `env:"SPADES_TARGET_SCORE" envDefault:"500"`
	Difficulty  string `env:"SPADES_DIFFICULTY"   envDefault:"intermediate"`
	ShowHints   bool   `env:"SPADES_SHOW_HINTS"   envDefault:"true"`
	// Seed fixes the shuffle and bot randomness. Zero draws a fresh seed.
	Seed      int64  `env:"SPADES_SEED"`
	LogLevel  string `env:"SPADES_LOG_LEVEL"  envDefault:"info"`
	SeatsFile string `env:"SPADES_SEATS_FILE"`

	AIBidDelay  time.Duration `env:"SPADES_AI_BID_DELAY"  envDefault:"800ms"`
	AIPlayDelay time.Duration `env:"SPADES_AI_PLAY_DELAY" envDefault:"600ms"`
	TrickPause  time.Duration `env:"SPADES_TRICK_PAUSE"   envDefault:"1200ms"`

	CoachEnabled bool          `env:"SPADES_COACH_ENABLED"`
	CoachURL     string        `env:"SPADES_COACH_URL"     envDefault:"http://localhost:11434/v1"`
	CoachModel   string        `env:"SPADES_COACH_MODEL"   envDefault:"llama3.2"`
	CoachAPIKey  string        `env:"SPADES_COACH_API_KEY" envDefault:"ollama"`
	CoachTimeout time.Duration `env:"SPADES_COACH_TIMEOUT" envDefault:"5s"`
}

var ErrInvalidConfig = errors.New("invalid config")

// Load reads an optional .env file from the working directory, then the
// process environment. A missing .env is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.TargetScore <= 0 {
		return fmt.Errorf("%w: target score must be positive, got %d", ErrInvalidConfig, c.TargetScore)
	}
	if _, err := bot.ParseDifficulty(c.Difficulty); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	for name, d := range map[string]time.Duration{
		"ai bid delay":  c.AIBidDelay,
		"ai play delay": c.AIPlayDelay,
		"trick pause":   c.TrickPause,
		"coach timeout": c.CoachTimeout,
	} {
		if d < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, name)
		}
	}
	if c.CoachEnabled && c.CoachURL == "" {
		return fmt.Errorf("%w: coach url is required when the coach is enabled", ErrInvalidConfig)
	}
	return nil
}

// Level returns the difficulty, which Validate has already checked.
func (c Config) Level() bot.Difficulty {
	level, _ := bot.ParseDifficulty(c.Difficulty)
	return level
}

// ParseLevel maps a log level name to slog.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, s)
}

// ResolveSeed returns Seed, or a random non-zero seed when Seed is zero.
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	if seed := int64(binary.LittleEndian.Uint64(b[:]) >> 1); seed != 0 {
		return seed
	}
	return 1
}
