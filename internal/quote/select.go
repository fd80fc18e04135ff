package quote

import (
	"math/rand/v2"
	"time"

	"github.com/manav03panchal/quotd/internal/errors"
	"github.com/manav03panchal/quotd/internal/model"
)

const (
	// unixEpochOrdinal is the day number of 1970-01-01 when 0001-01-01 is day 1.
	unixEpochOrdinal = 719163

	secondsPerDay = 86400

	// dailySeedStream is the second PCG seed word for the daily pick.
	dailySeedStream uint64 = 0x71756f7464
)

// Ordinal returns the proleptic Gregorian day number of t's calendar date,
// with 0001-01-01 as day 1. Only the year, month and day of t in its own
// location are used.
func Ordinal(t time.Time) int64 {
	y, m, d := t.Date()
	secs := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
	days := secs / secondsPerDay
	if secs%secondsPerDay < 0 {
		days--
	}
	return days + unixEpochOrdinal
}

// DailyIndex returns the index picked for date t among n quotes.
func DailyIndex(t time.Time, n int) int {
	r := rand.New(rand.NewPCG(uint64(Ordinal(t)), dailySeedStream))
	return r.IntN(n)
}

// Daily returns the quote of the day for t. The same date always yields the
// same quote for the same store.
func (s *Store) Daily(t time.Time) (model.Quote, error) {
	if len(s.quotes) == 0 {
		return model.Quote{}, errors.ErrEmptyStore
	}
	return s.quotes[DailyIndex(t, len(s.quotes))], nil
}

// Random returns a uniformly chosen quote.
func (s *Store) Random() (model.Quote, error) {
	if len(s.quotes) == 0 {
		return model.Quote{}, errors.ErrEmptyStore
	}
	return s.quotes[rand.IntN(len(s.quotes))], nil
}

// Next returns the quote after prev, wrapping to the first after the last.
// When prev is nil or not in the store a random quote is returned.
func (s *Store) Next(prev *model.Quote) (model.Quote, error) {
	if len(s.quotes) == 0 {
		return model.Quote{}, errors.ErrEmptyStore
	}
	if prev == nil {
		return s.Random()
	}

	i := model.IndexOf(s.quotes, *prev)
	if i < 0 {
		return s.Random()
	}
	return s.quotes[(i+1)%len(s.quotes)], nil
}
