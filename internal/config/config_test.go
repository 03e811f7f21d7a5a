package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/atlas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "atlas.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ATLAS_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Nil(t, cfg.Seed)
	assert.Equal(t, 8, cfg.TopWords)
	assert.Equal(t, 5.0, cfg.WatchlistHours)
	assert.Equal(t, domain.FemaleClamp, cfg.FemalePolicy)
	assert.False(t, cfg.Logging.UseCases)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ATLAS_CONFIG", "")
	t.Setenv("ATLAS_SEED", "42")
	t.Setenv("ATLAS_TOP_WORDS", "5")
	t.Setenv("ATLAS_WATCHLIST_HOURS", "4.5")
	t.Setenv("ATLAS_FEMALE_POLICY", "Unclamped")
	t.Setenv("ATLAS_LOG_USE_CASES", "true")
	t.Setenv("ATLAS_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
	assert.Equal(t, 5, cfg.TopWords)
	assert.Equal(t, 4.5, cfg.WatchlistHours)
	assert.Equal(t, domain.FemaleUnclamped, cfg.FemalePolicy)
	assert.True(t, cfg.Logging.UseCases)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_InvalidEnvIgnored(t *testing.T) {
	t.Setenv("ATLAS_CONFIG", "")
	t.Setenv("ATLAS_SEED", "not-a-number")
	t.Setenv("ATLAS_TOP_WORDS", "-3")
	t.Setenv("ATLAS_WATCHLIST_HOURS", "lots")
	t.Setenv("ATLAS_FEMALE_POLICY", "random")
	t.Setenv("ATLAS_LOG_LEVEL", "trace")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeConfig(t, `
seed: 7
top_words: 12
female_policy: unclamped
logging:
  use_cases: true
`)
	t.Setenv("ATLAS_CONFIG", path)
	t.Setenv("ATLAS_TOP_WORDS", "3")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(7), *cfg.Seed)
	assert.Equal(t, 3, cfg.TopWords, "env wins over file")
	assert.Equal(t, 5.0, cfg.WatchlistHours, "missing keys keep defaults")
	assert.Equal(t, domain.FemaleUnclamped, cfg.FemalePolicy)
	assert.True(t, cfg.Logging.UseCases)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_BadFile(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		t.Setenv("ATLAS_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})
	t.Run("malformed", func(t *testing.T) {
		t.Setenv("ATLAS_CONFIG", writeConfig(t, "top_words: [1, 2"))
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config file")
	})
	t.Run("invalid policy", func(t *testing.T) {
		t.Setenv("ATLAS_CONFIG", writeConfig(t, "female_policy: maybe"))
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "female_policy")
	})
}
