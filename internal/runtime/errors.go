package runtime

import (
	stderrors "errors"

	"github.com/manav03panchal/quotd/internal/errors"
	"github.com/manav03panchal/quotd/internal/parser"
)

// FormatError formats an error with its suggestion for terminal output.
// Date errors also list example inputs.
func FormatError(err error) string {
	var dpe *parser.DateParseError
	if stderrors.As(err, &dpe) {
		return dpe.FormatWithExamples()
	}
	return errors.FormatError(err)
}

// Suggestion returns the suggestion for err, or "".
func Suggestion(err error) string {
	var dpe *parser.DateParseError
	if stderrors.As(err, &dpe) {
		return dpe.Suggestion
	}
	return errors.GetSuggestion(err)
}
