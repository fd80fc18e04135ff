package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/quotd/internal/tui"
)

// uiCmd represents the ui command.
var uiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"view", "tui"},
	Short:   "Open the interactive quote view",
	Long: `Open an interactive terminal view for browsing quotes.

Keyboard shortcuts:
  t  Today's quote
  r  Random quote
  n  Next quote
  f  Add or remove favorite
  s  Save to today's quote file
  j  Add to journal
  v  Show or hide favorites
  c  Copy to clipboard
  ?  About
  q  Quit

Examples:
  quotd ui`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(tui.Config{
			Session:   ctx.Session,
			WrapWidth: ctx.Config.WrapWidth,
		})
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
