package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/quotd/internal/model"
	"github.com/manav03panchal/quotd/internal/output"
	"github.com/manav03panchal/quotd/internal/parser"
)

// Today command flags.
var todayFlagDate string

// todayCmd represents the today command.
var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t", "daily"},
	Short:   "Show the quote of the day",
	Long: `Show the quote of the day. Every run on the same date shows the same
quote. Use --date to see the quote of another day.

Examples:
  quotd today
  quotd today --date yesterday
  quotd today --date "last friday"
  quotd today --date 2024-03-01`,
	Args: cobra.NoArgs,
	RunE: runToday,
}

func init() {
	todayCmd.Flags().StringVarP(&todayFlagDate, "date", "d", "", "Date expression (e.g. yesterday, 2024-03-01)")
	todayCmd.RegisterFlagCompletionFunc("date", completeDates)

	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	if todayFlagDate == "" {
		q, err := ctx.Session.Today()
		if err != nil {
			return err
		}
		return printShown(q, ctx.Session.ShownAt())
	}

	date, err := parser.ParseDate(todayFlagDate, ctx.Session.Now())
	if err != nil {
		return err
	}
	ctx.Debugf("date %q resolved to %s", todayFlagDate, output.FormatDate(date))

	q, err := ctx.Session.ForDate(date)
	if err != nil {
		return err
	}
	return printShown(q, date)
}

// printShown prints the quote that was just shown for date at.
func printShown(q model.Quote, at time.Time) error {
	mode := ctx.Session.Mode()
	favorite := ctx.Session.IsFavorite()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewQuoteResponse(q, mode, at, favorite))
	}

	ctx.CLIFormatter().PrintQuote(q, mode, favorite)
	return nil
}

// completeDates suggests common date expressions.
func completeDates(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"today\tthe current date",
		"yesterday\tthe day before",
		"tomorrow\tthe day after",
		"last monday\ta weekday",
		"3 days ago\ta relative date",
	}, cobra.ShellCompDirectiveNoFileComp
}
