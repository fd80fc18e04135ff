package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/manav03panchal/quotd/internal/config"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"cfg"},
	Short:   "Show configuration",
	Long: `Show the effective configuration and the files quotd uses.

Settings come from built-in defaults, then the config file, then QUOTD_*
environment variables (e.g. QUOTD_WRAP_WIDTH=60, QUOTD_LOG_LEVEL=debug).

Examples:
  quotd config show
  quotd config path
  quotd --config ./quotd.yaml config show`,
}

// configShowCmd prints the effective configuration.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

// configPathCmd prints the config file and data paths.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file and data file paths",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// configView is the printable form of the configuration.
type configView struct {
	DataDir       string  `json:"data_dir" yaml:"data_dir"`
	QuotesFile    string  `json:"quotes_file" yaml:"quotes_file"`
	FavoritesFile string  `json:"favorites_file" yaml:"favorites_file"`
	JournalFile   string  `json:"journal_file" yaml:"journal_file"`
	SaveDir       string  `json:"save_dir" yaml:"save_dir"`
	StateDir      string  `json:"state_dir" yaml:"state_dir"`
	WrapWidth     int     `json:"wrap_width" yaml:"wrap_width"`
	Animate       bool    `json:"animate" yaml:"animate"`
	AnimateDelay  string  `json:"animate_delay" yaml:"animate_delay"`
	Log           logView `json:"log" yaml:"log"`
}

type logView struct {
	Level  string      `json:"level" yaml:"level"`
	Format string      `json:"format" yaml:"format"`
	File   logFileView `json:"file" yaml:"file"`
}

type logFileView struct {
	Enabled    bool   `json:"enabled" yaml:"enabled"`
	Path       string `json:"path,omitempty" yaml:"path,omitempty"`
	MaxSize    int    `json:"max_size" yaml:"max_size"`
	MaxBackups int    `json:"max_backups" yaml:"max_backups"`
	MaxAge     int    `json:"max_age" yaml:"max_age"`
	Compress   bool   `json:"compress" yaml:"compress"`
}

func newConfigView(c *config.Config) configView {
	return configView{
		DataDir:       c.DataDir,
		QuotesFile:    c.QuotesFile,
		FavoritesFile: c.FavoritesFile,
		JournalFile:   c.JournalFile,
		SaveDir:       c.SavePath(),
		StateDir:      c.StatePath(),
		WrapWidth:     c.WrapWidth,
		Animate:       c.Animate,
		AnimateDelay:  c.AnimateDelay.String(),
		Log: logView{
			Level:  c.Log.Level,
			Format: c.Log.Format,
			File: logFileView{
				Enabled:    c.Log.File.Enabled,
				Path:       c.Log.File.Path,
				MaxSize:    c.Log.File.MaxSizeMB,
				MaxBackups: c.Log.File.MaxBackups,
				MaxAge:     c.Log.File.MaxAgeDays,
				Compress:   c.Log.File.Compress,
			},
		},
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	view := newConfigView(ctx.Config)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(view)
	}

	data, err := yaml.Marshal(view)
	if err != nil {
		return err
	}
	ctx.Formatter.Print(string(data))
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	configFile := flagConfig
	if configFile == "" {
		configFile = config.DefaultConfigPath()
	}

	paths := []struct {
		name string
		key  string
		path string
	}{
		{"Config file", "config", configFile},
		{"Data dir", "data_dir", ctx.Config.DataDir},
		{"Quotes", "quotes", ctx.Config.QuotesPath()},
		{"Favorites", "favorites", ctx.Config.FavoritesPath()},
		{"Journal", "journal", ctx.Config.JournalPath()},
		{"Saved quotes", "save_dir", ctx.Config.SavePath()},
		{"State", "state", ctx.Config.StatePath()},
	}

	if ctx.IsJSON() {
		out := make(map[string]string, len(paths))
		for _, p := range paths {
			out[p.key] = p.path
		}
		return ctx.Formatter.JSON(out)
	}

	for _, p := range paths {
		ctx.Formatter.Println(fmt.Sprintf("%-13s %s", p.name+":", p.path))
	}
	return nil
}
