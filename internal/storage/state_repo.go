package storage

import (
	"time"

	"github.com/google/uuid"
	"github.com/manav03panchal/quotd/internal/model"
)

// StateRepo keeps the last shown quote and the log of presentations.
type StateRepo struct {
	db *DB
}

// NewStateRepo creates a new state repository.
func NewStateRepo(db *DB) *StateRepo {
	return &StateRepo{db: db}
}

// Current retrieves the last shown quote. An empty record is returned when
// nothing has been shown yet.
func (r *StateRepo) Current() (*model.CurrentQuote, error) {
	current := &model.CurrentQuote{Key: model.KeyCurrent}
	if err := r.db.Get(model.KeyCurrent, current); err != nil {
		if IsErrKeyNotFound(err) {
			return current, nil
		}
		return nil, err
	}
	return current, nil
}

// Record stores q as the current quote and appends a presentation entry,
// both in one transaction.
func (r *StateRepo) Record(q model.Quote, mode model.Mode, at time.Time) (*model.Presentation, error) {
	// UUID v7 keeps presentation keys time-sortable.
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	p := model.NewPresentation(q, mode, at)
	p.Key = model.GeneratePresentationKey(id.String())

	if err := r.db.SetAll(model.NewCurrentQuote(q, mode, at), p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get retrieves a presentation by key.
func (r *StateRepo) Get(key string) (*model.Presentation, error) {
	p := &model.Presentation{}
	if err := r.db.Get(key, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Recent returns up to limit presentations, newest first. A limit of 0
// returns all of them.
func (r *StateRepo) Recent(limit int) ([]*model.Presentation, error) {
	return GetLatestByPrefix(r.db, model.PrefixShown+":", func() *model.Presentation {
		return &model.Presentation{}
	}, limit, true)
}

// List returns every presentation, oldest first.
func (r *StateRepo) List() ([]*model.Presentation, error) {
	return GetAllByPrefix(r.db, model.PrefixShown+":", func() *model.Presentation {
		return &model.Presentation{}
	})
}

// ClearHistory removes all presentations but keeps the current quote.
func (r *StateRepo) ClearHistory() (int, error) {
	return r.db.DeleteByPrefix(model.PrefixShown + ":")
}
