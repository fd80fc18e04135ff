package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/manav03panchal/quotd/internal/model"
	"github.com/mattn/go-runewidth"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#10B981") // Green
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorWarning   = lipgloss.Color("#F59E0B") // Yellow
	colorError     = lipgloss.Color("#EF4444") // Red
	colorSuccess   = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleQuote = lipgloss.NewStyle().
			Italic(true)

	styleAuthor = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary)

	styleFavorite = lipgloss.NewStyle().
			Foreground(colorWarning)
)

// Quote block headings.
const (
	HeadingToday  = "✨ TODAY'S QUOTE ✨"
	HeadingRandom = "✨ RANDOM QUOTE ✨"
	HeadingNext   = "✨ NEXT QUOTE ✨"
)

// HeadingFor returns the quote block heading for a selection mode.
func HeadingFor(mode model.Mode) string {
	switch mode {
	case model.ModeRandom:
		return HeadingRandom
	case model.ModeNext:
		return HeadingNext
	default:
		return HeadingToday
	}
}

// RenderQuote renders the plain quote block: a blank line, the heading, a
// rule, the wrapped text indented by two spaces, a rule, the author line and
// a trailing blank line.
func RenderQuote(q model.Quote, heading string, width int) string {
	rule := strings.Repeat("-", 40)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(heading + "\n")
	b.WriteString(rule + "\n")
	for _, line := range Wrap(q.Text, width) {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString(rule + "\n")
	b.WriteString("  — " + q.Author + "\n")
	b.WriteString("\n")
	return b.String()
}

// RenderFavorites renders the numbered favorites listing.
func RenderFavorites(quotes []model.Quote) string {
	var b strings.Builder
	for i, q := range quotes {
		fmt.Fprintf(&b, "%d. \"%s\"\n", i+1, q.Text)
		fmt.Fprintf(&b, "   — %s\n", q.Author)
		if q.Category != "" {
			fmt.Fprintf(&b, "   Category: %s\n", q.Category)
		}
		b.WriteString(strings.Repeat("-", 60) + "\n\n")
	}
	return b.String()
}

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) render(style lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return style.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, "✓ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.render(styleError, "✗ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// PrintQuote prints a quote block. In plain mode the block is exactly
// RenderQuote's output; otherwise it is styled and followed by the category
// and a favorite marker.
func (c *CLIFormatter) PrintQuote(q model.Quote, mode model.Mode, favorite bool) {
	heading := HeadingFor(mode)
	if c.Format == FormatPlain {
		c.Print(RenderQuote(q, heading, c.Width()))
		return
	}

	rule := c.render(styleMuted, strings.Repeat("-", 40))
	c.Println()
	c.Println(c.render(styleTitle, heading))
	c.Println(rule)
	for _, line := range Wrap(q.Text, c.Width()) {
		c.Println("  " + c.render(styleQuote, line))
	}
	c.Println(rule)
	c.Println("  " + c.render(styleAuthor, "— "+q.Author))

	meta := "  Category: " + q.CategoryOrDefault()
	if favorite {
		meta += "  " + c.render(styleFavorite, "★ favorite")
	}
	c.Println(c.render(styleMuted, meta))
	c.Println()
}

// PrintFavorites prints the favorites listing.
func (c *CLIFormatter) PrintFavorites(quotes []model.Quote) {
	if len(quotes) == 0 {
		c.Muted("You haven't added any quotes to favorites yet!")
		c.Muted("Use 'quotd fav' after showing a quote to add it.")
		return
	}
	if c.Format != FormatPlain {
		c.Title("⭐ Your Favorite Quotes")
		c.Println()
	}
	c.Print(RenderFavorites(quotes))
}

// PrintPresentations prints the recent presentations, newest first.
func (c *CLIFormatter) PrintPresentations(ps []*model.Presentation, now time.Time) {
	if len(ps) == 0 {
		c.Muted("No quotes shown yet.")
		return
	}
	for _, p := range ps {
		when := c.render(styleMuted, fmt.Sprintf("%-8s %-6s", FormatAgo(p.ShownAt, now), p.Mode))
		c.Printf("%s  \"%s\" — %s\n", when, Truncate(p.Quote.Text, c.Width()), p.Quote.Author)
	}
}

// Truncate shortens s to at most width display columns, ending in "...".
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "...")
}
