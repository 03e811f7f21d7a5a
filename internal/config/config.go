// Package config loads atlas settings from an optional YAML file and
// ATLAS_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/atlas/internal/domain"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the atlas binary.
type Config struct {
	// Seed drives the cohort simulator. Nil means seed from the clock.
	Seed *int64 `yaml:"seed,omitempty"`

	// TopWords is how many words the summarizer reports per course.
	TopWords int `yaml:"top_words"`

	// WatchlistHours is the homework load at which a course is flagged.
	WatchlistHours float64 `yaml:"watchlist_hours"`

	// FemalePolicy is "clamp" (default) or "unclamped".
	FemalePolicy domain.FemalePolicy `yaml:"female_policy"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures use-case logging to stderr.
type LoggingConfig struct {
	UseCases bool   `yaml:"use_cases"`
	Level    string `yaml:"level"` // info | debug
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		TopWords:       8,
		WatchlistHours: 5.0,
		FemalePolicy:   domain.FemaleClamp,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load applies defaults, then the YAML file named by ATLAS_CONFIG (if any),
// then environment overrides. Only an unreadable or malformed file is an
// error; bad environment values are ignored.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("ATLAS_CONFIG"); path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// LoadFromFile reads a YAML config. Keys absent from the file keep their
// defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.TopWords <= 0 {
		return fmt.Errorf("top_words must be positive, got %d", c.TopWords)
	}
	if c.WatchlistHours <= 0 {
		return fmt.Errorf("watchlist_hours must be positive, got %v", c.WatchlistHours)
	}
	switch c.FemalePolicy {
	case domain.FemaleClamp, domain.FemaleUnclamped:
	default:
		return fmt.Errorf("invalid female_policy: %s (valid: clamp, unclamped)", c.FemalePolicy)
	}
	switch c.Logging.Level {
	case "", "info", "debug":
	default:
		return fmt.Errorf("invalid log level: %s (valid: info, debug)", c.Logging.Level)
	}
	return nil
}

// SlogLevel maps Logging.Level to a slog level.
func (c Config) SlogLevel() slog.Level {
	if c.Logging.Level == "debug" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ATLAS_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = &n
		}
	}
	if v := os.Getenv("ATLAS_TOP_WORDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TopWords = n
		}
	}
	if v := os.Getenv("ATLAS_WATCHLIST_HOURS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.WatchlistHours = f
		}
	}
	if v := os.Getenv("ATLAS_FEMALE_POLICY"); v != "" {
		switch p := domain.FemalePolicy(strings.ToLower(v)); p {
		case domain.FemaleClamp, domain.FemaleUnclamped:
			cfg.FemalePolicy = p
		}
	}
	if v := os.Getenv("ATLAS_LOG_USE_CASES"); v != "" {
		cfg.Logging.UseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ATLAS_LOG_LEVEL"); v != "" {
		switch l := strings.ToLower(v); l {
		case "info", "debug":
			cfg.Logging.Level = l
		}
	}
}
