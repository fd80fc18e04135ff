package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/quotd/internal/menu"
)

// menuCmd represents the menu command.
var menuCmd = &cobra.Command{
	Use:     "menu",
	Aliases: []string{"m"},
	Short:   "Run the numbered terminal menu",
	Long: `Run the classic numbered menu: today's quote, a random quote, the quote
history, or exit.

Examples:
  quotd menu`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := menu.New(menu.Config{
			Session:      ctx.Session,
			In:           cmd.InOrStdin(),
			Out:          cmd.OutOrStdout(),
			WrapWidth:    ctx.Config.WrapWidth,
			Animate:      ctx.Config.Animate,
			AnimateDelay: ctx.Config.AnimateDelay,
		})
		return m.Run()
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
