package cmd

import (
	"github.com/spf13/cobra"
)

// nextCmd represents the next command.
var nextCmd = &cobra.Command{
	Use:     "next",
	Aliases: []string{"n"},
	Short:   "Show the quote after the last one shown",
	Long: `Show the quote that follows the last shown quote in the store, wrapping
around at the end. When no quote was shown yet, a random one is picked.

Examples:
  quotd today
  quotd next`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := ctx.Session.Next()
		if err != nil {
			return err
		}
		return printShown(q, ctx.Session.ShownAt())
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)
}
