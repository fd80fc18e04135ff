// Package session holds the application state shared by every front end:
// the loaded quote store, the current quote, favorites and the clock.
package session

import (
	"time"

	"github.com/manav03panchal/quotd/internal/errors"
	"github.com/manav03panchal/quotd/internal/logging"
	"github.com/manav03panchal/quotd/internal/model"
	"github.com/manav03panchal/quotd/internal/persist"
	"github.com/manav03panchal/quotd/internal/quote"
)

// StateRecorder persists the current quote across processes.
type StateRecorder interface {
	Current() (*model.CurrentQuote, error)
	Record(q model.Quote, mode model.Mode, at time.Time) (*model.Presentation, error)
}

// Options configures a Session.
type Options struct {
	Store     *quote.Store
	Favorites *persist.Favorites
	Journal   *persist.Journal
	// SaveDir is where per-day quote files are written.
	SaveDir string
	// State is optional. When set, every shown quote is recorded in it.
	State StateRecorder
	// Now defaults to time.Now.
	Now func() time.Time
}

// Session is the explicit application state. It is not safe for concurrent
// use; each front end drives it from its own event loop.
type Session struct {
	store     *quote.Store
	favorites *persist.Favorites
	journal   *persist.Journal
	saveDir   string
	state     StateRecorder
	now       func() time.Time

	current *model.Quote
	mode    model.Mode
	shownAt time.Time
}

// New creates a session. No quote is current until one is shown or restored.
func New(opts Options) *Session {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Session{
		store:     opts.Store,
		favorites: opts.Favorites,
		journal:   opts.Journal,
		saveDir:   opts.SaveDir,
		state:     opts.State,
		now:       now,
	}
}

// Restore loads the last shown quote from the state store, if any.
func (s *Session) Restore() error {
	if s.state == nil {
		return nil
	}
	cur, err := s.state.Current()
	if err != nil {
		return err
	}
	if cur.IsSet() {
		q := cur.Quote
		s.current = &q
		s.mode = cur.Mode
		s.shownAt = cur.ShownAt
	}
	return nil
}

// Now returns the session clock's current time.
func (s *Session) Now() time.Time {
	return s.now()
}

// Store returns the loaded quote store.
func (s *Session) Store() *quote.Store {
	return s.store
}

// Current returns the current quote and whether there is one.
func (s *Session) Current() (model.Quote, bool) {
	if s.current == nil {
		return model.Quote{}, false
	}
	return *s.current, true
}

// Mode returns how the current quote was picked.
func (s *Session) Mode() model.Mode {
	return s.mode
}

// ShownAt returns when the current quote was shown.
func (s *Session) ShownAt() time.Time {
	return s.shownAt
}

// Today shows the quote of the day for the session clock's date.
func (s *Session) Today() (model.Quote, error) {
	return s.ForDate(s.now())
}

// ForDate shows the quote of the day for date t.
func (s *Session) ForDate(t time.Time) (model.Quote, error) {
	q, err := s.store.Daily(t)
	if err != nil {
		return model.Quote{}, err
	}
	s.show(q, model.ModeDaily)
	logging.DebugLog("daily quote", logging.KeyOrdinal, quote.Ordinal(t), logging.KeyAuthor, q.Author)
	return q, nil
}

// Random shows a uniformly chosen quote.
func (s *Session) Random() (model.Quote, error) {
	q, err := s.store.Random()
	if err != nil {
		return model.Quote{}, err
	}
	s.show(q, model.ModeRandom)
	return q, nil
}

// Next shows the quote after the current one, or a random quote when there
// is no current quote.
func (s *Session) Next() (model.Quote, error) {
	q, err := s.store.Next(s.current)
	if err != nil {
		return model.Quote{}, err
	}
	s.show(q, model.ModeNext)
	return q, nil
}

func (s *Session) show(q model.Quote, mode model.Mode) {
	at := s.now()
	s.current = &q
	s.mode = mode
	s.shownAt = at

	if s.state == nil {
		return
	}
	if _, err := s.state.Record(q, mode, at); err != nil {
		logging.Warn("could not record shown quote", logging.KeyMode, string(mode), logging.KeyError, err)
	}
}

// IsFavorite reports whether the current quote is a favorite.
func (s *Session) IsFavorite() bool {
	if s.current == nil {
		return false
	}
	return s.favorites.Contains(*s.current)
}

// ToggleFavorite adds or removes the current quote from favorites and
// reports whether it is a favorite afterwards.
func (s *Session) ToggleFavorite() (bool, error) {
	if s.current == nil {
		return false, errors.ErrNoCurrentQuote
	}
	return s.favorites.Toggle(*s.current)
}

// Favorites returns the favorites in insertion order.
func (s *Session) Favorites() []model.Quote {
	return s.favorites.List()
}

// SaveDay writes the current quote to today's per-day file and returns its
// path.
func (s *Session) SaveDay() (string, error) {
	if s.current == nil {
		return "", errors.ErrNoCurrentQuote
	}
	return persist.SaveDay(s.saveDir, *s.current, s.now())
}

// AppendJournal appends the current quote to the journal.
func (s *Session) AppendJournal() error {
	if s.current == nil {
		return errors.ErrNoCurrentQuote
	}
	return s.journal.Append(*s.current, s.now())
}

// Journal returns the raw journal text; ok is false when none exists yet.
func (s *Session) Journal() (content string, ok bool, err error) {
	return s.journal.Read()
}

// Counts returns the number of quotes in the store and of favorites.
func (s *Session) Counts() (quotes, favorites int) {
	return s.store.Len(), s.favorites.Len()
}
