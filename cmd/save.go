package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/quotd/internal/output"
)

// saveCmd represents the save command.
var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the last shown quote to today's quote file",
	Long: `Write the last shown quote to quote_YYYYMMDD.txt in the save directory,
replacing the file if it exists.

Examples:
  quotd today
  quotd save`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := ctx.Session.SaveDay()
		if err != nil {
			return err
		}

		if ctx.IsJSON() {
			return ctx.Formatter.JSON(output.PathResponse{Status: "ok", Path: path})
		}

		ctx.CLIFormatter().Success("Quote saved to " + path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
}
