package parser

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/quotd/internal/errors"
)

// DateParseError represents a date parsing error with helpful suggestions.
type DateParseError struct {
	Input      string
	Message    string
	Examples   []string
	Suggestion string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid date '%s': %s", e.Input, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidDate.
func (e *DateParseError) Unwrap() error {
	return errors.ErrInvalidDate
}

// DateExamples provides example date formats.
var DateExamples = []string{
	"yesterday",
	"last friday",
	"3 days ago",
	"2024-03-01",
	"March 1 2024",
}

// NewDateError creates a date parse error with standard examples.
func NewDateError(input string) *DateParseError {
	return &DateParseError{
		Input:      input,
		Message:    "could not parse date",
		Examples:   DateExamples,
		Suggestion: "Use a calendar date or a relative day like 'yesterday' or 'last monday'.",
	}
}

// FormatWithExamples returns the error message with example suggestions.
func (e *DateParseError) FormatWithExamples() string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Examples) > 0 {
		sb.WriteString("\n\nValid examples:\n")
		for _, ex := range e.Examples {
			sb.WriteString("  - ")
			sb.WriteString(ex)
			sb.WriteString("\n")
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

// ToUserError converts a DateParseError to a UserError for consistent handling.
func (e *DateParseError) ToUserError() *errors.UserError {
	suggestion := e.Suggestion
	if suggestion == "" && len(e.Examples) > 0 {
		suggestion = fmt.Sprintf("Try: %s", strings.Join(e.Examples[:min(3, len(e.Examples))], ", "))
	}

	ue := errors.NewUserErrorWithField("date", e.Input, e.Message, suggestion)
	ue.Cause = errors.ErrInvalidDate
	return ue
}
