package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/quotd/internal/archive"
	"github.com/manav03panchal/quotd/internal/errors"
	"github.com/manav03panchal/quotd/internal/logging"
	"github.com/manav03panchal/quotd/internal/output"
	"github.com/manav03panchal/quotd/internal/validate"
)

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:     "import FILE",
	Aliases: []string{"restore"},
	Short:   "Merge quotes from a file into the quote store",
	Long: `Merge quotes from an export bundle or a plain quote list into the quote
store. JSON and YAML are accepted, compressed or not. Quotes already in the
store are skipped, as are entries without text or author.

Examples:
  quotd import backup.json.zst
  quotd import more-quotes.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	bundle, err := archive.Read(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	valid, rejected := validate.Quotes(bundle.Quotes)
	if rejected > 0 {
		logging.Warn("skipped invalid quotes", logging.KeyPath, path, logging.KeyCount, rejected)
	}

	store := ctx.Session.Store()
	added, err := store.Merge(valid)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.ImportResponse{
			Status: "ok",
			Read:   len(bundle.Quotes),
			Added:  added,
			Total:  store.Len(),
		})
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Imported %s from %s", output.Plural(added, "quote"), path))
	if skipped := len(bundle.Quotes) - added; skipped > 0 {
		cli.Muted(fmt.Sprintf("  %d skipped (duplicate or invalid)", skipped))
	}
	cli.Muted(fmt.Sprintf("  %s in the store", output.Plural(store.Len(), "quote")))
	return nil
}
