// Package storage provides the state store and safe file writes for quotd.
package storage

import (
	"os"
	"path/filepath"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/manav03panchal/quotd/internal/logging"
)

// DB wraps a Badger database connection.
type DB struct {
	db   *badger.DB
	path string
}

// Options configures the database connection.
type Options struct {
	// Path is the database directory path. Empty string uses in-memory mode.
	Path string
	// InMemory forces in-memory mode regardless of Path.
	InMemory bool
}

// Open opens or creates a database at the given path.
func Open(opts Options) (*DB, error) {
	var badgerOpts badger.Options

	if opts.InMemory || opts.Path == "" {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := EnsureDirectory(opts.Path); err != nil {
			return nil, err
		}
		badgerOpts = badger.DefaultOptions(opts.Path)
	}

	// Reduce logging noise
	badgerOpts = badgerOpts.WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, err
	}

	path := opts.Path
	if opts.InMemory {
		path = ""
	}
	return &DB{db: db, path: path}, nil
}

// OpenOrReset opens the state store at path. The store only holds the last
// shown quote and the presentation log, so when badger refuses to open the
// directory it is moved aside and a fresh store is created.
func OpenOrReset(path string) (*DB, error) {
	db, err := Open(Options{Path: path})
	if err == nil || path == "" {
		return db, err
	}

	backup := path + ".broken-" + time.Now().Format("20060102-150405")
	logging.Warn("state store unreadable, starting fresh",
		logging.KeyPath, path,
		"backup", backup,
		logging.KeyError, err,
	)
	if renameErr := os.Rename(path, backup); renameErr != nil {
		return nil, err
	}
	return Open(Options{Path: filepath.Clean(path)})
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Path returns the on-disk directory, or "" for an in-memory store.
func (d *DB) Path() string {
	return d.path
}
