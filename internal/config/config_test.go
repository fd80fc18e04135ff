package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/manav03panchal/quotd/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Load Tests
// ============================================================================

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults when no file exists", func(t *testing.T) {
		t.Cleanup(xdg.Reload)
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		xdg.Reload()

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, DefaultDataDir(), cfg.DataDir)
		assert.Equal(t, "quotes.json", cfg.QuotesFile)
		assert.Equal(t, "favorites.json", cfg.FavoritesFile)
		assert.Equal(t, "daily_quotes.txt", cfg.JournalFile)
		assert.Equal(t, DefaultWrapWidth, cfg.WrapWidth)
		assert.True(t, cfg.Animate)
		assert.Equal(t, DefaultAnimateDelay, cfg.AnimateDelay)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, "pretty", cfg.Log.Format)
		assert.False(t, cfg.Log.File.Enabled)
		assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.Log.File.MaxSizeMB)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
data_dir: /tmp/quotd-test
wrap_width: 72
animate: false
animate_delay: 5ms
log:
  level: debug
  format: json
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "/tmp/quotd-test", cfg.DataDir)
		assert.Equal(t, 72, cfg.WrapWidth)
		assert.False(t, cfg.Animate)
		assert.Equal(t, 5*time.Millisecond, cfg.AnimateDelay)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "quotes.json", cfg.QuotesFile)
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := writeConfig(t, "wrap_width: 72\n")
		t.Setenv("QUOTD_WRAP_WIDTH", "90")
		t.Setenv("QUOTD_LOG_LEVEL", "error")
		t.Setenv("QUOTD_LOG_FILE_ENABLED", "true")
		t.Setenv("QUOTD_DATA_DIR", "/tmp/quotd-env")

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 90, cfg.WrapWidth)
		assert.Equal(t, "error", cfg.Log.Level)
		assert.True(t, cfg.Log.File.Enabled)
		assert.Equal(t, "/tmp/quotd-env", cfg.DataDir)
	})

	t.Run("explicit missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := writeConfig(t, "wrap_width: [unclosed\n")
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"QUOTD_DATA_DIR", "data_dir"},
		{"QUOTD_WRAP_WIDTH", "wrap_width"},
		{"QUOTD_LOG_LEVEL", "log.level"},
		{"QUOTD_LOG_FILE_MAX_SIZE", "log.file.max_size"},
		{"QUOTD_ANIMATE", "animate"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.env))
		})
	}
}

// ============================================================================
// Path Tests
// ============================================================================

func TestPaths(t *testing.T) {
	cfg := &Config{
		DataDir:       "/data",
		QuotesFile:    "quotes.json",
		FavoritesFile: "/elsewhere/favs.json",
		JournalFile:   "journal.txt",
	}

	assert.Equal(t, "/data/quotes.json", cfg.QuotesPath())
	assert.Equal(t, "/elsewhere/favs.json", cfg.FavoritesPath())
	assert.Equal(t, "/data/journal.txt", cfg.JournalPath())
	assert.Equal(t, "/data", cfg.SavePath())
	assert.Equal(t, "/data/state", cfg.StatePath())

	cfg.SaveDir = "days"
	cfg.StateDir = "/var/quotd"
	assert.Equal(t, "/data/days", cfg.SavePath())
	assert.Equal(t, "/var/quotd", cfg.StatePath())
}

// ============================================================================
// Validation Tests
// ============================================================================

func validConfig() *Config {
	return &Config{
		DataDir:       "/data",
		QuotesFile:    "quotes.json",
		FavoritesFile: "favorites.json",
		JournalFile:   "daily_quotes.txt",
		WrapWidth:     50,
		AnimateDelay:  30 * time.Millisecond,
		Log:           LogConfig{Level: "warn", Format: "pretty"},
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("wrap width too small", func(t *testing.T) {
		cfg := validConfig()
		cfg.WrapWidth = 5
		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "wrap_width must be at least 10 (got 5)")
	})

	t.Run("wrap width too large", func(t *testing.T) {
		cfg := validConfig()
		cfg.WrapWidth = 500
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be at most 200")
	})

	t.Run("bad log level", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.Level = "verbose"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `log.level must be one of debug, info, warn, error (got "verbose")`)
	})

	t.Run("missing data dir", func(t *testing.T) {
		cfg := validConfig()
		cfg.DataDir = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "data_dir is required")
	})

	t.Run("file logging needs a path", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.File.Enabled = true
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.file.path is required when file logging is enabled")
	})
}

func TestConfigKey(t *testing.T) {
	assert.Equal(t, "log.level", configKey("Config.log.level"))
	assert.Equal(t, "wrap_width", configKey("Config.wrap_width"))
	assert.Equal(t, "single", configKey("single"))
}
