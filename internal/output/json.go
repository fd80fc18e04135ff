package output

import (
	"time"

	"github.com/manav03panchal/quotd/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// QuoteOutput represents a quote in JSON output.
type QuoteOutput struct {
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Category string `json:"category,omitempty"`
}

// NewQuoteOutput creates a QuoteOutput from a Quote.
func NewQuoteOutput(q model.Quote) QuoteOutput {
	return QuoteOutput{Quote: q.Text, Author: q.Author, Category: q.Category}
}

// NewQuoteOutputs converts a slice of quotes.
func NewQuoteOutputs(quotes []model.Quote) []QuoteOutput {
	out := make([]QuoteOutput, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, NewQuoteOutput(q))
	}
	return out
}

// QuoteResponse is the output of the quote-showing commands.
type QuoteResponse struct {
	Status   string      `json:"status"`
	Mode     model.Mode  `json:"mode"`
	Date     string      `json:"date"`
	Quote    QuoteOutput `json:"quote"`
	Favorite bool        `json:"favorite"`
}

// NewQuoteResponse creates a QuoteResponse.
func NewQuoteResponse(q model.Quote, mode model.Mode, at time.Time, favorite bool) *QuoteResponse {
	return &QuoteResponse{
		Status:   "ok",
		Mode:     mode,
		Date:     FormatDate(at),
		Quote:    NewQuoteOutput(q),
		Favorite: favorite,
	}
}

// FavoriteResponse is the output of the favorite toggle.
type FavoriteResponse struct {
	Status   string      `json:"status"`
	Favorite bool        `json:"favorite"`
	Quote    QuoteOutput `json:"quote"`
	Count    int         `json:"count"`
}

// FavoritesResponse is the favorites listing.
type FavoritesResponse struct {
	Favorites []QuoteOutput `json:"favorites"`
	Count     int           `json:"count"`
}

// PathResponse reports a file written by a command.
type PathResponse struct {
	Status string `json:"status"`
	Path   string `json:"path"`
}

// JournalResponse is the journal contents.
type JournalResponse struct {
	Path    string `json:"path"`
	Exists  bool   `json:"exists"`
	Content string `json:"content"`
}

// PresentationOutput represents a presentation in JSON output.
type PresentationOutput struct {
	Key     string      `json:"key"`
	Mode    model.Mode  `json:"mode"`
	ShownAt string      `json:"shown_at"`
	Quote   QuoteOutput `json:"quote"`
}

// PresentationsResponse is the recent presentations listing.
type PresentationsResponse struct {
	Presentations []PresentationOutput `json:"presentations"`
	Count         int                  `json:"count"`
}

// NewPresentationsResponse creates a PresentationsResponse.
func NewPresentationsResponse(ps []*model.Presentation) *PresentationsResponse {
	out := make([]PresentationOutput, 0, len(ps))
	for _, p := range ps {
		out = append(out, PresentationOutput{
			Key:     p.Key,
			Mode:    p.Mode,
			ShownAt: p.ShownAt.Format(time.RFC3339),
			Quote:   NewQuoteOutput(p.Quote),
		})
	}
	return &PresentationsResponse{Presentations: out, Count: len(out)}
}

// AddResponse is the output of adding a quote.
type AddResponse struct {
	Status string      `json:"status"`
	Quote  QuoteOutput `json:"quote"`
	Total  int         `json:"total"`
}

// ImportResponse is the output of an import.
type ImportResponse struct {
	Status string `json:"status"`
	Read   int    `json:"read"`
	Added  int    `json:"added"`
	Total  int    `json:"total"`
}

// ExportResponse is the output of an export.
type ExportResponse struct {
	Status    string `json:"status"`
	Path      string `json:"path"`
	Quotes    int    `json:"quotes"`
	Favorites int    `json:"favorites"`
	Journal   bool   `json:"journal"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PrintError prints an error response.
func (j *JSONFormatter) PrintError(err error, suggestion string) error {
	return j.JSON(ErrorResponse{
		Status:     "error",
		Error:      err.Error(),
		Suggestion: suggestion,
	})
}
