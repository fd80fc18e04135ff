// Package quote holds the quote store and the daily, random and sequential
// selectors that pick from it.
package quote

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manav03panchal/quotd/internal/logging"
	"github.com/manav03panchal/quotd/internal/model"
	"github.com/manav03panchal/quotd/internal/storage"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.json
var defaultsJSON []byte

// Defaults returns a fresh copy of the built-in quote list.
func Defaults() []model.Quote {
	var quotes []model.Quote
	if err := json.Unmarshal(defaultsJSON, &quotes); err != nil {
		panic(fmt.Sprintf("quote: embedded defaults are invalid: %v", err))
	}
	return quotes
}

// Store is the ordered list of quotes, loaded once per process.
type Store struct {
	path   string
	quotes []model.Quote
}

// New creates a store that is not backed by a file.
func New(quotes []model.Quote) *Store {
	return &Store{quotes: append([]model.Quote(nil), quotes...)}
}

// Load reads the store at path.
//
// A missing file is created from the defaults. A file that cannot be read or
// parsed is left alone and the defaults are used for this run. A file that
// parses to an empty list gives an empty store; selectors on it return
// ErrEmptyStore.
func Load(path string) (*Store, error) {
	if path == "" {
		return New(Defaults()), nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s := &Store{path: path, quotes: Defaults()}
		if err := s.save(s.quotes); err != nil {
			logging.Warn("could not write default quotes", logging.KeyPath, path, logging.KeyError, err)
		} else {
			logging.DebugLog("wrote default quotes", logging.KeyPath, path, logging.KeyCount, len(s.quotes))
		}
		return s, nil
	}
	if err != nil {
		logging.Warn("could not read quotes, using defaults", logging.KeyPath, path, logging.KeyError, err)
		return &Store{path: path, quotes: Defaults()}, nil
	}

	quotes, err := Decode(data, IsYAML(path))
	if err != nil {
		logging.Warn("malformed quotes file, using defaults", logging.KeyPath, path, logging.KeyError, err)
		return &Store{path: path, quotes: Defaults()}, nil
	}

	logging.DebugLog("loaded quotes", logging.KeyPath, path, logging.KeyCount, len(quotes))
	return &Store{path: path, quotes: quotes}, nil
}

// IsYAML reports whether path names a YAML file.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Decode parses a JSON array or YAML sequence of quotes.
func Decode(data []byte, asYAML bool) ([]model.Quote, error) {
	var quotes []model.Quote
	if asYAML {
		if err := yaml.Unmarshal(data, &quotes); err != nil {
			return nil, err
		}
		return quotes, nil
	}
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

// Encode renders quotes as an indented JSON array or a YAML sequence.
func Encode(quotes []model.Quote, asYAML bool) ([]byte, error) {
	if quotes == nil {
		quotes = []model.Quote{}
	}
	if asYAML {
		return yaml.Marshal(quotes)
	}
	data, err := json.MarshalIndent(quotes, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Path returns the backing file, or "" for an in-memory store.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of quotes.
func (s *Store) Len() int {
	return len(s.quotes)
}

// At returns the quote at index i.
func (s *Store) At(i int) model.Quote {
	return s.quotes[i]
}

// Quotes returns a copy of all quotes in order.
func (s *Store) Quotes() []model.Quote {
	return append([]model.Quote(nil), s.quotes...)
}

// Add appends q and writes the store back. On a failed write the store is
// left as it was.
func (s *Store) Add(q model.Quote) error {
	next := append(s.Quotes(), q)
	if err := s.save(next); err != nil {
		return err
	}
	s.quotes = next
	return nil
}

// Merge appends the quotes not already present and writes the store back.
// It returns how many were added.
func (s *Store) Merge(quotes []model.Quote) (int, error) {
	next := s.Quotes()
	added := 0
	for _, q := range quotes {
		if q.IsZero() || model.IndexOf(next, q) >= 0 {
			continue
		}
		next = append(next, q)
		added++
	}
	if added == 0 {
		return 0, nil
	}

	if err := s.save(next); err != nil {
		return 0, err
	}
	s.quotes = next
	return added, nil
}

func (s *Store) save(quotes []model.Quote) error {
	if s.path == "" {
		return nil
	}
	data, err := Encode(quotes, IsYAML(s.path))
	if err != nil {
		return err
	}
	return storage.SafeWrite(s.path, data, 0o644)
}
