// Package runtime provides application runtime context for quotd.
package runtime

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/manav03panchal/quotd/internal/config"
	"github.com/manav03panchal/quotd/internal/logging"
	"github.com/manav03panchal/quotd/internal/output"
	"github.com/manav03panchal/quotd/internal/persist"
	"github.com/manav03panchal/quotd/internal/quote"
	"github.com/manav03panchal/quotd/internal/session"
	"github.com/manav03panchal/quotd/internal/storage"
)

// InMemoryState is the state_dir value that keeps the state store in memory.
const InMemoryState = ":memory:"

// Context holds the application runtime context.
type Context struct {
	Config    *config.Config
	DB        *storage.DB
	Formatter *output.Formatter

	// Repositories
	StateRepo *storage.StateRepo

	Session *session.Session

	// Ctx carries the run ID for log correlation.
	Ctx context.Context

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	// ConfigPath is an explicit config file; empty uses the default location.
	ConfigPath string
	// Config skips loading when set.
	Config    *config.Config
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
	// Out defaults to os.Stdout.
	Out io.Writer
	// Now defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
	}
}

// New creates a new runtime context: it loads and validates the config,
// sets up logging, opens the state store and loads the quote files.
func New(opts Options) (*Context, error) {
	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	initLogging(cfg, opts.Debug)
	ctx := logging.NewRunContext()
	logging.LoggerFromContext(ctx).Debug("runtime starting",
		logging.KeyPath, cfg.DataDir,
		"config", opts.ConfigPath,
	)

	db, err := openState(cfg, opts.InMemory)
	if err != nil {
		return nil, err
	}

	store, err := quote.Load(cfg.QuotesPath())
	if err != nil {
		db.Close()
		return nil, err
	}

	stateRepo := storage.NewStateRepo(db)
	sess := session.New(session.Options{
		Store:     store,
		Favorites: persist.LoadFavorites(cfg.FavoritesPath()),
		Journal:   persist.NewJournal(cfg.JournalPath()),
		SaveDir:   cfg.SavePath(),
		State:     stateRepo,
		Now:       opts.Now,
	})
	if err := sess.Restore(); err != nil {
		logging.Warn("could not restore last quote", logging.KeyError, err)
	}

	// Create formatter
	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode
	formatter.WrapWidth = cfg.WrapWidth
	if opts.Out != nil {
		formatter.Writer = opts.Out
	}
	if formatter.Format == "" {
		formatter.Format = output.FormatCLI
	}
	if formatter.ColorMode == "" {
		formatter.ColorMode = output.ColorAuto
	}

	return &Context{
		Config:    cfg,
		DB:        db,
		Formatter: formatter,
		StateRepo: stateRepo,
		Session:   sess,
		Ctx:       ctx,
		Debug:     opts.Debug,
	}, nil
}

func initLogging(cfg *config.Config, debug bool) {
	lc := logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: os.Stderr,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}
	if debug {
		dc := logging.DebugConfig()
		lc.Level = dc.Level
		lc.AddSource = dc.AddSource
	}
	logging.Init(lc)
}

func openState(cfg *config.Config, inMemory bool) (*storage.DB, error) {
	if inMemory || cfg.StateDir == InMemoryState {
		return storage.Open(storage.Options{InMemory: true})
	}
	return storage.OpenOrReset(cfg.StatePath())
}

// Close closes the runtime context.
func (c *Context) Close() error {
	var err error
	if c.DB != nil {
		err = c.DB.Close()
	}
	if closeErr := logging.Close(); err == nil {
		err = closeErr
	}
	return err
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// Debugf prints debug output if debug mode is enabled.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Debug {
		c.Formatter.Printf("[DEBUG] "+format+"\n", args...)
	}
}
