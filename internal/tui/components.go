package tui

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/quotd/internal/model"
	"github.com/manav03panchal/quotd/internal/output"
	"github.com/manav03panchal/quotd/internal/session"
)

// minBoxWidth keeps boxes readable on very narrow terminals.
const minBoxWidth = 20

// QuoteComponent displays the current quote.
type QuoteComponent struct {
	Quote    model.Quote
	HasQuote bool
	Heading  string
	Favorite bool
	Width    int
	Wrap     int
}

// NewQuoteComponent creates a new quote component.
func NewQuoteComponent(q model.Quote, ok bool, mode model.Mode, favorite bool, width, wrap int) *QuoteComponent {
	return &QuoteComponent{
		Quote:    q,
		HasQuote: ok,
		Heading:  output.HeadingFor(mode),
		Favorite: favorite,
		Width:    width,
		Wrap:     wrap,
	}
}

// View renders the quote component.
func (qc *QuoteComponent) View() string {
	var content strings.Builder

	if !qc.HasQuote {
		content.WriteString(StyleSubtitle.Render("No quote yet"))
		content.WriteString("\n\n")
		content.WriteString(StyleSubtitle.Render("Press 't' for today's quote"))
		return StyleQuoteBox.Width(boxWidth(qc.Width)).Render(content.String())
	}

	content.WriteString(StyleTitle.Render(qc.Heading))
	content.WriteString("\n")

	lines := output.Wrap(qc.Quote.Text, qc.Wrap)
	for i, line := range lines {
		text := line
		if i == 0 {
			text = "“" + text
		}
		if i == len(lines)-1 {
			text += "”"
		}
		content.WriteString(StyleQuote.Render(text))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(StyleAuthor.Render("— " + qc.Quote.Author))
	content.WriteString("\n")
	content.WriteString(StyleCategory.Render("Category: " + qc.Quote.CategoryOrDefault()))

	if qc.Favorite {
		content.WriteString("\n\n")
		content.WriteString(StyleFavorite.Render("★ Favorite"))
		return StyleFavoriteQuoteBox.Width(boxWidth(qc.Width)).Render(content.String())
	}

	return StyleQuoteBox.Width(boxWidth(qc.Width)).Render(content.String())
}

// FavoritesComponent lists the favorite quotes.
type FavoritesComponent struct {
	Quotes []model.Quote
	Width  int
	Limit  int
}

// NewFavoritesComponent creates a new favorites component.
func NewFavoritesComponent(quotes []model.Quote, width, limit int) *FavoritesComponent {
	return &FavoritesComponent{
		Quotes: quotes,
		Width:  width,
		Limit:  limit,
	}
}

// View renders the favorites component.
func (fc *FavoritesComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render("⭐ Your Favorite Quotes"))
	content.WriteString("\n")

	if len(fc.Quotes) == 0 {
		content.WriteString(StyleSubtitle.Render("No favorites yet. Press 'f' to add the current quote."))
		return StyleListBox.Width(boxWidth(fc.Width)).Render(content.String())
	}

	textWidth := boxWidth(fc.Width) - 10
	shown := fc.Quotes
	if fc.Limit > 0 && len(shown) > fc.Limit {
		shown = shown[:fc.Limit]
	}
	for i, q := range shown {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(fmt.Sprintf("%d. ", i+1))
		content.WriteString(StyleQuote.Render(output.Truncate("\""+q.Text+"\"", textWidth)))
		content.WriteString("\n")
		content.WriteString("   " + StyleAuthor.Render("— "+q.Author))
	}
	if hidden := len(fc.Quotes) - len(shown); hidden > 0 {
		content.WriteString("\n")
		content.WriteString(StyleSubtitle.Render(fmt.Sprintf("... and %d more", hidden)))
	}

	return StyleListBox.Width(boxWidth(fc.Width)).Render(content.String())
}

// AboutView renders the about panel.
func AboutView(width int) string {
	content := StyleTitle.Render(session.AboutTitle) + "\n" + session.AboutText
	return StyleAboutBox.Width(boxWidth(width)).Render(content)
}

// HelpBar renders the help bar at the bottom.
func HelpBar() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"t", "today"},
		{"r", "random"},
		{"n", "next"},
		{"f", "favorite"},
		{"s", "save"},
		{"j", "journal"},
		{"v", "favorites"},
		{"c", "copy"},
		{"?", "about"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		part := StyleHelpKey.Render(k.key) + " " + StyleHelpDesc.Render(k.desc)
		parts = append(parts, part)
	}

	return StyleHelp.Render(strings.Join(parts, "  •  "))
}

func boxWidth(width int) int {
	w := width - 4
	if w < minBoxWidth {
		return minBoxWidth
	}
	return w
}
