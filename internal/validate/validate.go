// Package validate provides input validation helpers for quotes entered
// through the CLI or imported from files.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/manav03panchal/quotd/internal/errors"
	"github.com/manav03panchal/quotd/internal/model"
)

const (
	// MaxTextLength is the maximum length of quote text in runes.
	MaxTextLength = 1000
	// MaxAuthorLength is the maximum length of an author name.
	MaxAuthorLength = 128
	// MaxCategoryLength is the maximum length of a category.
	MaxCategoryLength = 64
)

// Text validates quote text.
func Text(text string) error {
	if strings.TrimSpace(text) == "" {
		return invalid("", "Quote text cannot be empty", "Provide the quote text as the first argument")
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return invalid("quote", "Quote text too long",
			fmt.Sprintf("Quotes must be %d characters or fewer", MaxTextLength))
	}
	return nil
}

// Author validates an author name.
func Author(author string) error {
	if strings.TrimSpace(author) == "" {
		return invalid("", "Author cannot be empty", "Provide the author with --author")
	}
	if utf8.RuneCountInString(author) > MaxAuthorLength {
		return invalid("author", "Author name too long",
			fmt.Sprintf("Author names must be %d characters or fewer", MaxAuthorLength))
	}
	return nil
}

// Category validates a category. Empty is allowed.
func Category(category string) error {
	if utf8.RuneCountInString(category) > MaxCategoryLength {
		return invalid("category", "Category too long",
			fmt.Sprintf("Categories must be %d characters or fewer", MaxCategoryLength))
	}
	if strings.ContainsAny(category, "\n\r") {
		return invalid("category", "Category must be a single line", "Remove line breaks from the category")
	}
	return nil
}

// Quote validates every field of q.
func Quote(q model.Quote) error {
	if err := Text(q.Text); err != nil {
		return err
	}
	if err := Author(q.Author); err != nil {
		return err
	}
	return Category(q.Category)
}

// Quotes validates a list and returns the valid entries together with the
// number that were rejected.
func Quotes(quotes []model.Quote) (valid []model.Quote, rejected int) {
	for _, q := range quotes {
		q = SanitizeQuote(q)
		if Quote(q) != nil {
			rejected++
			continue
		}
		valid = append(valid, q)
	}
	return valid, rejected
}

// InRange validates that an integer is within a range.
func InRange(field string, value, min, max int) error {
	if value < min || value > max {
		return errors.NewUserErrorWithField(field, fmt.Sprint(value),
			"Value out of range",
			fmt.Sprintf("Must be between %d and %d", min, max))
	}
	return nil
}

func invalid(field, message, suggestion string) error {
	ue := errors.NewUserError(message, suggestion)
	ue.Field = field
	ue.Cause = errors.ErrInvalidQuote
	return ue
}
