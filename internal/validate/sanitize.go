package validate

import (
	"strings"
	"unicode"

	"github.com/manav03panchal/quotd/internal/model"
)

// SanitizeText cleans free text for safe storage: trims whitespace, removes
// null bytes and normalizes line endings.
func SanitizeText(s string) string {
	s = strings.TrimSpace(s)

	// Remove null bytes
	s = strings.ReplaceAll(s, "\x00", "")

	// Normalize line endings
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	return StripControlChars(s)
}

// SanitizeLine cleans a single-line value such as an author or category.
func SanitizeLine(s string) string {
	return strings.Join(strings.Fields(StripControlChars(s)), " ")
}

// SanitizeQuote returns q with every field cleaned.
func SanitizeQuote(q model.Quote) model.Quote {
	return model.Quote{
		Text:     SanitizeText(q.Text),
		Author:   SanitizeLine(q.Author),
		Category: SanitizeLine(q.Category),
	}
}

// StripControlChars removes all control characters except newline and tab.
func StripControlChars(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if !unicode.IsControl(r) || r == '\n' || r == '\t' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
