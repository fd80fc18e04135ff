// Package parser turns natural-language date expressions into calendar dates.
package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// isoDateRegex matches plain YYYY-MM-DD dates, which skip the natural
// language parser.
var isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate parses a date expression such as "yesterday", "last friday",
// "3 days ago" or "2024-03-01" relative to now. Empty input and "today"
// return now. The result keeps now's location.
func ParseDate(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	switch strings.ToLower(input) {
	case "", "today", "now":
		return now, nil
	case "tomorrow":
		return now.AddDate(0, 0, 1), nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	}

	if isoDateRegex.MatchString(input) {
		t, err := time.ParseInLocation("2006-01-02", input, now.Location())
		if err != nil {
			return time.Time{}, NewDateError(input)
		}
		return t, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return time.Time{}, NewDateError(input)
	}

	y, m, d := result.Time.Date()
	return time.Date(y, m, d, now.Hour(), now.Minute(), now.Second(), 0, now.Location()), nil
}
