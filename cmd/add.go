package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/quotd/internal/model"
	"github.com/manav03panchal/quotd/internal/output"
	"github.com/manav03panchal/quotd/internal/validate"
)

// Add command flags.
var (
	addFlagAuthor   string
	addFlagCategory string
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:   "add TEXT",
	Short: "Add a quote to the quote store",
	Long: `Append a quote to the quote store file.

Examples:
  quotd add "Well done is better than well said." --author "Benjamin Franklin"
  quotd add Stay hungry, stay foolish. --author "Steve Jobs" --category Inspiration`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addFlagAuthor, "author", "a", "", "Who said it (required)")
	addCmd.Flags().StringVarP(&addFlagCategory, "category", "c", "", "Category (optional)")
	addCmd.MarkFlagRequired("author")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	q := validate.SanitizeQuote(model.NewQuote(strings.Join(args, " "), addFlagAuthor, addFlagCategory))
	if err := validate.Quote(q); err != nil {
		return err
	}

	store := ctx.Session.Store()
	if model.IndexOf(store.Quotes(), q) >= 0 {
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(output.AddResponse{Status: "exists", Quote: output.NewQuoteOutput(q), Total: store.Len()})
		}
		ctx.CLIFormatter().Warning("That quote is already in the store")
		return nil
	}

	if err := store.Add(q); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.AddResponse{Status: "ok", Quote: output.NewQuoteOutput(q), Total: store.Len()})
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Added quote by %s (%d quotes)", q.Author, store.Len()))
	return nil
}
