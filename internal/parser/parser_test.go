package parser

import (
	"testing"
	"time"

	"github.com/manav03panchal/quotd/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 13, 15, 4, 5, 0, time.UTC) // a Wednesday

func sameDay(t *testing.T, want, got time.Time) {
	t.Helper()
	wy, wm, wd := want.Date()
	gy, gm, gd := got.Date()
	assert.Equal(t, []int{wy, int(wm), wd}, []int{gy, int(gm), gd})
}

func TestParseDateShortcuts(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"", now},
		{"today", now},
		{"  TODAY  ", now},
		{"now", now},
		{"yesterday", now.AddDate(0, 0, -1)},
		{"tomorrow", now.AddDate(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input, now)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestParseDateISO(t *testing.T) {
	got, err := ParseDate("2022-12-11", now)
	require.NoError(t, err)
	sameDay(t, time.Date(2022, 12, 11, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, now.Location(), got.Location())

	_, err = ParseDate("2022-13-45", now)
	assert.Error(t, err)
}

func TestParseDateNatural(t *testing.T) {
	t.Run("days_ago", func(t *testing.T) {
		got, err := ParseDate("3 days ago", now)
		require.NoError(t, err)
		sameDay(t, now.AddDate(0, 0, -3), got)
	})

	t.Run("written_date", func(t *testing.T) {
		got, err := ParseDate("March 1 2024", now)
		require.NoError(t, err)
		sameDay(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)
	})
}

func TestParseDateInvalid(t *testing.T) {
	_, err := ParseDate("definitely not a date", now)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidDate)

	var dpe *DateParseError
	require.ErrorAs(t, err, &dpe)
	assert.Equal(t, "definitely not a date", dpe.Input)
}

func TestDateParseError(t *testing.T) {
	e := NewDateError("blorp")
	assert.Equal(t, "invalid date 'blorp': could not parse date", e.Error())

	formatted := e.FormatWithExamples()
	assert.Contains(t, formatted, "Valid examples:")
	assert.Contains(t, formatted, "  - last friday")

	ue := e.ToUserError()
	assert.Equal(t, "date", ue.Field)
	assert.Equal(t, "blorp", ue.Value)
	assert.NotEmpty(t, ue.Suggestion)
	assert.ErrorIs(t, ue, errors.ErrInvalidDate)

	e.Suggestion = ""
	assert.Contains(t, e.ToUserError().Suggestion, "Try: yesterday")
}
