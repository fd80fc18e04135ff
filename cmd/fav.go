package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/quotd/internal/output"
)

// favCmd represents the fav command.
var favCmd = &cobra.Command{
	Use:     "fav",
	Aliases: []string{"favorite", "star"},
	Short:   "Add or remove the last shown quote from favorites",
	Long: `Toggle the last shown quote in your favorites. Running it twice leaves
your favorites unchanged.

Examples:
  quotd today
  quotd fav
  quotd fav list`,
	Args: cobra.NoArgs,
	RunE: runFav,
}

// favListCmd lists favorites.
var favListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List favorite quotes",
	Args:    cobra.NoArgs,
	RunE:    runFavList,
}

func init() {
	favCmd.AddCommand(favListCmd)
	rootCmd.AddCommand(favCmd)
}

func runFav(cmd *cobra.Command, args []string) error {
	added, err := ctx.Session.ToggleFavorite()
	if err != nil {
		return err
	}
	q, _ := ctx.Session.Current()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.FavoriteResponse{
			Status:   "ok",
			Favorite: added,
			Quote:    output.NewQuoteOutput(q),
			Count:    len(ctx.Session.Favorites()),
		})
	}

	cli := ctx.CLIFormatter()
	if added {
		cli.Success("Added to favorites")
	} else {
		cli.Success("Removed from favorites")
	}
	cli.Muted("  \"" + output.Truncate(q.Text, cli.Width()) + "\" — " + q.Author)
	return nil
}

func runFavList(cmd *cobra.Command, args []string) error {
	favorites := ctx.Session.Favorites()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.FavoritesResponse{
			Favorites: output.NewQuoteOutputs(favorites),
			Count:     len(favorites),
		})
	}

	ctx.CLIFormatter().PrintFavorites(favorites)
	return nil
}
