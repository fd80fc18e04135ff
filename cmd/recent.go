package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/quotd/internal/output"
	"github.com/manav03panchal/quotd/internal/validate"
)

// Recent command flags.
var (
	recentFlagLimit int
	recentFlagClear bool
)

// recentCmd represents the recent command.
var recentCmd = &cobra.Command{
	Use:     "recent",
	Aliases: []string{"shown"},
	Short:   "List recently shown quotes",
	Long: `List the quotes shown by quotd, newest first. A limit of 0 lists all of
them. --clear forgets the list but keeps the last shown quote.

Examples:
  quotd recent
  quotd recent --limit 20
  quotd recent --clear`,
	Args: cobra.NoArgs,
	RunE: runRecent,
}

func init() {
	recentCmd.Flags().IntVarP(&recentFlagLimit, "limit", "n", 10, "Maximum entries to show (0 for all)")
	recentCmd.Flags().BoolVar(&recentFlagClear, "clear", false, "Forget the shown quotes")

	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, args []string) error {
	if recentFlagClear {
		return runRecentClear()
	}

	if err := validate.InRange("limit", recentFlagLimit, 0, 10000); err != nil {
		return err
	}

	presentations, err := ctx.StateRepo.Recent(recentFlagLimit)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewPresentationsResponse(presentations))
	}

	ctx.CLIFormatter().PrintPresentations(presentations, ctx.Session.Now())
	return nil
}

func runRecentClear() error {
	n, err := ctx.StateRepo.ClearHistory()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"status":  "ok",
			"cleared": n,
		})
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Cleared %d shown quotes", n))
	return nil
}
