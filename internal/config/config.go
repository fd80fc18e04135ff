// Package config provides layered configuration for quotd using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// AppName is the application name used for data and config directories.
const AppName = "quotd"

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "QUOTD_"

// Default configuration values.
const (
	// DefaultWrapWidth is the column budget for wrapped quote text.
	DefaultWrapWidth = 50

	// DefaultAnimateDelay is the per-character delay of the welcome line.
	DefaultAnimateDelay = 30 * time.Millisecond

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 5

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28
)

// Config is the root configuration structure.
type Config struct {
	DataDir       string        `koanf:"data_dir"       validate:"required"`
	QuotesFile    string        `koanf:"quotes_file"    validate:"required"`
	FavoritesFile string        `koanf:"favorites_file" validate:"required"`
	JournalFile   string        `koanf:"journal_file"   validate:"required"`
	SaveDir       string        `koanf:"save_dir"`
	StateDir      string        `koanf:"state_dir"`
	WrapWidth     int           `koanf:"wrap_width"     validate:"min=10,max=200"`
	Animate       bool          `koanf:"animate"`
	AnimateDelay  time.Duration `koanf:"animate_delay"  validate:"min=0,max=1s"`
	Log           LogConfig     `koanf:"log"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=pretty text json"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// DefaultDataDir returns the data directory under the XDG base directories.
func DefaultDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// DefaultConfigPath returns the config file path under the XDG base directories.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"data_dir":       DefaultDataDir(),
		"quotes_file":    "quotes.json",
		"favorites_file": "favorites.json",
		"journal_file":   "daily_quotes.txt",
		"save_dir":       "",
		"state_dir":      "",
		"wrap_width":     DefaultWrapWidth,
		"animate":        true,
		"animate_delay":  DefaultAnimateDelay.String(),

		"log.level":            "warn",
		"log.format":           "pretty",
		"log.file.enabled":     false,
		"log.file.path":        filepath.Join(xdg.StateHome, AppName, "quotd.log"),
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (QUOTD_ prefix)
//  2. Config file (path, or DefaultConfigPath when path is empty)
//  3. Default values
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if err := loadFileIfExists(k, path, explicit); err != nil {
		return nil, fmt.Errorf("loading config file %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKey maps QUOTD_WRAP_WIDTH to wrap_width and QUOTD_LOG_FILE_PATH to
// log.file.path. Top-level keys keep their underscores.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	switch {
	case strings.HasPrefix(key, "log_file_"):
		return "log.file." + strings.TrimPrefix(key, "log_file_")
	case strings.HasPrefix(key, "log_"):
		return "log." + strings.TrimPrefix(key, "log_")
	default:
		return key
	}
}

// loadFileIfExists loads a YAML config file if it exists. A missing file is
// only an error when the user named it explicitly.
func loadFileIfExists(k *koanf.Koanf, path string, explicit bool) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if explicit {
			return err
		}
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}

// resolve joins name onto dir unless name is already absolute.
func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// QuotesPath returns the absolute path of the quote store file.
func (c *Config) QuotesPath() string {
	return resolve(c.DataDir, c.QuotesFile)
}

// FavoritesPath returns the absolute path of the favorites file.
func (c *Config) FavoritesPath() string {
	return resolve(c.DataDir, c.FavoritesFile)
}

// JournalPath returns the absolute path of the journal file.
func (c *Config) JournalPath() string {
	return resolve(c.DataDir, c.JournalFile)
}

// SavePath returns the directory that per-day quote files are written to.
func (c *Config) SavePath() string {
	if c.SaveDir == "" {
		return c.DataDir
	}
	return resolve(c.DataDir, c.SaveDir)
}

// StatePath returns the directory of the state store.
func (c *Config) StatePath() string {
	if c.StateDir == "" {
		return filepath.Join(c.DataDir, "state")
	}
	return resolve(c.DataDir, c.StateDir)
}
