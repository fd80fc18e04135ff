package model

import "fmt"

// Quote is a single quotation record. Quotes are values: two quotes are the
// same quote when all of their fields match.
type Quote struct {
	Text     string `json:"quote" yaml:"quote"`
	Author   string `json:"author" yaml:"author"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// NewQuote creates a quote record.
func NewQuote(text, author, category string) Quote {
	return Quote{
		Text:     text,
		Author:   author,
		Category: category,
	}
}

// IsZero reports whether q holds no quote at all.
func (q Quote) IsZero() bool {
	return q == Quote{}
}

// CategoryOrDefault returns the category, or "Uncategorized" when it is empty.
func (q Quote) CategoryOrDefault() string {
	if q.Category == "" {
		return "Uncategorized"
	}
	return q.Category
}

// ClipboardText is the text placed on the clipboard for a quote.
func (q Quote) ClipboardText() string {
	return fmt.Sprintf("\"%s\"\n— %s", q.Text, q.Author)
}

// IndexOf returns the position of the first quote in quotes equal to q, or -1.
func IndexOf(quotes []Quote, q Quote) int {
	for i, candidate := range quotes {
		if candidate == q {
			return i
		}
	}
	return -1
}
