// Package persist manages the user-visible files: favorites, the journal and
// the per-day quote files.
package persist

import (
	"encoding/json"
	"os"

	"github.com/manav03panchal/quotd/internal/logging"
	"github.com/manav03panchal/quotd/internal/model"
	"github.com/manav03panchal/quotd/internal/storage"
)

// Favorites is the user's favorite quotes in insertion order, backed by a
// JSON array that is rewritten wholesale on every change.
type Favorites struct {
	path   string
	quotes []model.Quote
}

// LoadFavorites reads the favorites file. A missing or malformed file gives
// an empty list.
func LoadFavorites(path string) *Favorites {
	f := &Favorites{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn("could not read favorites", logging.KeyPath, path, logging.KeyError, err)
		}
		return f
	}

	if err := json.Unmarshal(data, &f.quotes); err != nil {
		logging.Warn("malformed favorites file, starting empty", logging.KeyPath, path, logging.KeyError, err)
		f.quotes = nil
	}
	return f
}

// Path returns the favorites file path.
func (f *Favorites) Path() string {
	return f.path
}

// Len returns the number of favorites.
func (f *Favorites) Len() int {
	return len(f.quotes)
}

// List returns a copy of the favorites.
func (f *Favorites) List() []model.Quote {
	return append([]model.Quote(nil), f.quotes...)
}

// Contains reports whether q is a favorite.
func (f *Favorites) Contains(q model.Quote) bool {
	return model.IndexOf(f.quotes, q) >= 0
}

// Toggle removes the first occurrence of q, or appends q when it is absent,
// then writes the file. It reports whether q is a favorite afterwards. When
// the write fails the list is left unchanged.
func (f *Favorites) Toggle(q model.Quote) (bool, error) {
	var next []model.Quote
	added := false

	if i := model.IndexOf(f.quotes, q); i >= 0 {
		next = make([]model.Quote, 0, len(f.quotes)-1)
		next = append(next, f.quotes[:i]...)
		next = append(next, f.quotes[i+1:]...)
	} else {
		next = append(f.List(), q)
		added = true
	}

	if err := f.save(next); err != nil {
		return !added, err
	}

	f.quotes = next
	logging.DebugLog("favorites updated", logging.KeyAuthor, q.Author, "added", added, logging.KeyCount, len(next))
	return added, nil
}

func (f *Favorites) save(quotes []model.Quote) error {
	if quotes == nil {
		quotes = []model.Quote{}
	}
	data, err := json.MarshalIndent(quotes, "", "  ")
	if err != nil {
		return err
	}
	return storage.SafeWrite(f.path, append(data, '\n'), 0o644)
}
