package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/quotd/internal/output"
)

// journalCmd represents the journal command.
var journalCmd = &cobra.Command{
	Use:     "journal",
	Aliases: []string{"history", "j"},
	Short:   "Show the quote journal",
	Long: `Print the quote journal, the file that collects quotes you chose to keep.

Examples:
  quotd journal
  quotd journal add`,
	Args: cobra.NoArgs,
	RunE: runJournal,
}

// journalAddCmd appends the last shown quote to the journal.
var journalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append the last shown quote to the journal",
	Args:  cobra.NoArgs,
	RunE:  runJournalAdd,
}

func init() {
	journalCmd.AddCommand(journalAddCmd)
	rootCmd.AddCommand(journalCmd)
}

func runJournal(cmd *cobra.Command, args []string) error {
	content, ok, err := ctx.Session.Journal()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.JournalResponse{
			Path:    ctx.Config.JournalPath(),
			Exists:  ok,
			Content: content,
		})
	}

	if !ok {
		cli := ctx.CLIFormatter()
		cli.Muted("No quote history found.")
		cli.Muted("Use 'quotd journal add' to keep the last shown quote.")
		return nil
	}
	ctx.Formatter.Print(content)
	return nil
}

func runJournalAdd(cmd *cobra.Command, args []string) error {
	if err := ctx.Session.AppendJournal(); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.PathResponse{Status: "ok", Path: ctx.Config.JournalPath()})
	}

	ctx.CLIFormatter().Success("Quote saved successfully!")
	return nil
}
