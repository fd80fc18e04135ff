package persist

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/manav03panchal/quotd/internal/model"
	"github.com/manav03panchal/quotd/internal/storage"
)

// DayFileName returns the per-day file name for t, e.g. quote_20240301.txt.
func DayFileName(t time.Time) string {
	return "quote_" + t.Format("20060102") + ".txt"
}

// FormatDayFile renders the per-day file contents.
func FormatDayFile(q model.Quote, t time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Daily Quote - %s\n", t.Format("January 02, 2006"))
	b.WriteString(strings.Repeat("=", 50))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "\"%s\"\n", q.Text)
	fmt.Fprintf(&b, "— %s\n", q.Author)
	if q.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", q.Category)
	}
	return b.String()
}

// SaveDay writes q to the per-day file for t in dir, replacing any earlier
// file for the same day. It returns the written path.
func SaveDay(dir string, q model.Quote, t time.Time) (string, error) {
	path := filepath.Join(dir, DayFileName(t))
	if err := storage.SafeWrite(path, []byte(FormatDayFile(q, t)), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
