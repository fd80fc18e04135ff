package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/quotd/internal/archive"
	"github.com/manav03panchal/quotd/internal/output"
)

// Export command flags.
var exportFlagOutput string

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"backup"},
	Short:   "Export quotes, favorites and the journal",
	Long: `Write the quote store, favorites and journal to a single bundle file.
The serialization follows --format json|yaml or else the file extension, and
a trailing .gz, .xz or .zst extension compresses the bundle. With --format
json the export report is printed as JSON as well.

Examples:
  quotd export
  quotd export -o quotes.yaml
  quotd export -o backup.json.zst
  quotd export --format yaml -o backup.gz`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file (default quotd-export-YYYYMMDD.json)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := bundleFormat(cmd)
	if err != nil {
		return err
	}

	now := ctx.Session.Now()
	path := exportFlagOutput
	if path == "" {
		name := format
		if name == "" {
			name = archive.FormatJSON
		}
		path = archive.DefaultFileName(now, name)
	}

	journal, hasJournal, err := ctx.Session.Journal()
	if err != nil {
		return err
	}
	bundle := archive.NewBundle(ctx.Session.Store().Quotes(), ctx.Session.Favorites(), journal, now)

	if err := archive.Write(path, bundle, format); err != nil {
		return err
	}
	ctx.Debugf("exported %d quotes to %s", len(bundle.Quotes), path)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.ExportResponse{
			Status:    "ok",
			Path:      path,
			Quotes:    len(bundle.Quotes),
			Favorites: len(bundle.Favorites),
			Journal:   hasJournal,
		})
	}

	ctx.CLIFormatter().Success("Exported to " + path)
	ctx.CLIFormatter().Muted(formatCounts(len(bundle.Quotes), len(bundle.Favorites), hasJournal))
	return nil
}

// bundleFormat reads the bundle serialization from the global --format flag.
// An unset flag or a terminal format leaves the choice to the file extension.
func bundleFormat(cmd *cobra.Command) (archive.Format, error) {
	if !cmd.Flags().Changed("format") {
		return "", nil
	}
	switch flagFormat {
	case "cli", "plain":
		return "", nil
	}
	return archive.ParseFormat(flagFormat)
}

func formatCounts(quotes, favorites int, journal bool) string {
	s := output.Plural(quotes, "quote") + ", " + output.Plural(favorites, "favorite")
	if journal {
		s += ", journal"
	}
	return "  " + s
}
