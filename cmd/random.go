package cmd

import (
	"github.com/spf13/cobra"
)

// randomCmd represents the random command.
var randomCmd = &cobra.Command{
	Use:     "random",
	Aliases: []string{"r", "rand"},
	Short:   "Show a random quote",
	Long: `Show a quote picked at random from the quote store.

Examples:
  quotd random
  quotd random --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := ctx.Session.Random()
		if err != nil {
			return err
		}
		return printShown(q, ctx.Session.ShownAt())
	},
}

func init() {
	rootCmd.AddCommand(randomCmd)
}
