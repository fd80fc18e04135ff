package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/manav03panchal/quotd/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to create an in-memory database for testing
func setupTestDB(t *testing.T) *DB {
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// =============================================================================
// DB Tests
// =============================================================================

func TestOpenClose(t *testing.T) {
	t.Run("in_memory", func(t *testing.T) {
		db, err := Open(Options{InMemory: true})
		require.NoError(t, err)
		assert.Equal(t, "", db.Path())
		assert.NoError(t, db.Close())
	})

	t.Run("empty_path_uses_in_memory", func(t *testing.T) {
		db, err := Open(Options{Path: ""})
		require.NoError(t, err)
		db.Close()
	})

	t.Run("on_disk_creates_directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "state")
		db, err := Open(Options{Path: path})
		require.NoError(t, err)
		defer db.Close()

		assert.Equal(t, path, db.Path())
		assert.DirExists(t, path)
	})
}

func TestOpenOrReset(t *testing.T) {
	t.Run("reopens_existing_store", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state")
		db, err := OpenOrReset(path)
		require.NoError(t, err)

		repo := NewStateRepo(db)
		_, err = repo.Record(model.NewQuote("kept", "A", ""), model.ModeDaily, time.Now())
		require.NoError(t, err)
		require.NoError(t, db.Close())

		db, err = OpenOrReset(path)
		require.NoError(t, err)
		defer db.Close()

		current, err := NewStateRepo(db).Current()
		require.NoError(t, err)
		assert.Equal(t, "kept", current.Quote.Text)
	})

	t.Run("moves_unusable_store_aside", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "state")
		// A plain file where the directory should be.
		require.NoError(t, os.WriteFile(path, []byte("junk"), 0o644))

		db, err := OpenOrReset(path)
		require.NoError(t, err)
		defer db.Close()

		assert.DirExists(t, path)
		matches, _ := filepath.Glob(path + ".broken-*")
		assert.Len(t, matches, 1)
	})
}

// =============================================================================
// CRUD Tests
// =============================================================================

func TestCRUD(t *testing.T) {
	db := setupTestDB(t)

	p := model.NewPresentation(model.NewQuote("t", "a", "c"), model.ModeRandom, time.Now())
	p.Key = model.GeneratePresentationKey("one")

	require.NoError(t, db.Set(p))

	exists, err := db.Exists(p.Key)
	require.NoError(t, err)
	assert.True(t, exists)

	got := &model.Presentation{}
	require.NoError(t, db.Get(p.Key, got))
	assert.Equal(t, p.Key, got.Key)
	assert.Equal(t, p.Quote, got.Quote)
	assert.Equal(t, model.ModeRandom, got.Mode)

	require.NoError(t, db.Delete(p.Key))
	exists, err = db.Exists(p.Key)
	require.NoError(t, err)
	assert.False(t, exists)

	err = db.Get(p.Key, got)
	assert.True(t, IsErrKeyNotFound(err))
}

func TestPrefixQueries(t *testing.T) {
	db := setupTestDB(t)

	for _, id := range []string{"a", "b", "c"} {
		p := model.NewPresentation(model.NewQuote(id, "x", ""), model.ModeNext, time.Now())
		p.Key = model.GeneratePresentationKey(id)
		require.NoError(t, db.Set(p))
	}
	require.NoError(t, db.Set(model.NewCurrentQuote(model.NewQuote("cur", "x", ""), model.ModeDaily, time.Now())))

	keys, err := db.ListByPrefix("shown:")
	require.NoError(t, err)
	assert.Equal(t, []string{"shown:a", "shown:b", "shown:c"}, keys)

	newest, err := GetLatestByPrefix(db, "shown:", func() *model.Presentation { return &model.Presentation{} }, 2, true)
	require.NoError(t, err)
	require.Len(t, newest, 2)
	assert.Equal(t, "c", newest[0].Quote.Text)
	assert.Equal(t, "b", newest[1].Quote.Text)

	n, err := db.DeleteByPrefix("shown:")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	exists, err := db.Exists(model.KeyCurrent)
	require.NoError(t, err)
	assert.True(t, exists)
}

// =============================================================================
// State Repo Tests
// =============================================================================

func TestStateRepo(t *testing.T) {
	t.Run("current_empty_before_first_record", func(t *testing.T) {
		repo := NewStateRepo(setupTestDB(t))

		current, err := repo.Current()
		require.NoError(t, err)
		assert.False(t, current.IsSet())
	})

	t.Run("record_updates_current_and_log", func(t *testing.T) {
		repo := NewStateRepo(setupTestDB(t))
		at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

		q1 := model.NewQuote("first", "A", "Life")
		q2 := model.NewQuote("second", "B", "")

		p1, err := repo.Record(q1, model.ModeDaily, at)
		require.NoError(t, err)
		assert.Contains(t, p1.Key, "shown:")

		_, err = repo.Record(q2, model.ModeNext, at.Add(time.Minute))
		require.NoError(t, err)

		current, err := repo.Current()
		require.NoError(t, err)
		assert.True(t, current.IsSet())
		assert.Equal(t, q2, current.Quote)
		assert.Equal(t, model.ModeNext, current.Mode)

		got, err := repo.Get(p1.Key)
		require.NoError(t, err)
		assert.Equal(t, q1, got.Quote)
		assert.True(t, at.Equal(got.ShownAt))

		recent, err := repo.Recent(0)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, q2, recent[0].Quote)
		assert.Equal(t, q1, recent[1].Quote)

		all, err := repo.List()
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, q1, all[0].Quote)
	})

	t.Run("recent_respects_limit", func(t *testing.T) {
		repo := NewStateRepo(setupTestDB(t))
		for i := 0; i < 5; i++ {
			_, err := repo.Record(model.NewQuote("q", "a", ""), model.ModeRandom, time.Now())
			require.NoError(t, err)
		}

		recent, err := repo.Recent(3)
		require.NoError(t, err)
		assert.Len(t, recent, 3)
	})

	t.Run("clear_history_keeps_current", func(t *testing.T) {
		repo := NewStateRepo(setupTestDB(t))
		_, err := repo.Record(model.NewQuote("q", "a", ""), model.ModeRandom, time.Now())
		require.NoError(t, err)

		n, err := repo.ClearHistory()
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		recent, err := repo.Recent(0)
		require.NoError(t, err)
		assert.Empty(t, recent)

		current, err := repo.Current()
		require.NoError(t, err)
		assert.True(t, current.IsSet())
	})
}

// =============================================================================
// Safety Tests
// =============================================================================

func TestSafeWrite(t *testing.T) {
	t.Run("creates_parent_and_replaces", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sub", "file.json")

		require.NoError(t, SafeWrite(path, []byte("one"), 0o644))
		require.NoError(t, SafeWrite(path, []byte("two"), 0o644))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "two", string(data))

		leftovers, _ := filepath.Glob(filepath.Join(filepath.Dir(path), ".quotd-*.tmp"))
		assert.Empty(t, leftovers)
	})

	t.Run("fails_when_parent_is_a_file", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))

		err := SafeWrite(filepath.Join(blocker, "file.json"), []byte("x"), 0o644)
		assert.Error(t, err)
	})
}

func TestSafeAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.txt")

	header := []byte("HEADER\n")

	require.NoError(t, SafeAppend(path, header, []byte("a\n"), 0o644))
	require.NoError(t, SafeAppend(path, header, []byte("b\n"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "HEADER\na\nb\n", string(data))

	t.Run("existing_file_gets_no_header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "journal.txt")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		require.NoError(t, SafeAppend(path, header, []byte("a\n"), 0o644))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "a\n", string(data))
	})
}

func TestFreeSpace(t *testing.T) {
	free, err := FreeSpace(filepath.Join(t.TempDir(), "does", "not", "exist"))
	require.NoError(t, err)
	assert.Greater(t, free, uint64(0))

	assert.NoError(t, CheckDiskSpace(t.TempDir()))
	assert.False(t, isDiskFullError(nil))
	assert.False(t, isDiskFullError(os.ErrNotExist))
}
