package persist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/manav03panchal/quotd/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	quoteA = model.NewQuote("Stay hungry.", "Steve Jobs", "Inspiration")
	quoteB = model.NewQuote("Keep going.", "Sam Levenson", "")
	day    = time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)
)

// blockedPath returns a path whose parent is a regular file, so any write
// to it fails regardless of the user running the tests.
func blockedPath(t *testing.T) string {
	t.Helper()
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	return filepath.Join(blocker, "file")
}

// =============================================================================
// Favorites Tests
// =============================================================================

func TestLoadFavorites(t *testing.T) {
	t.Run("missing_file_is_empty", func(t *testing.T) {
		f := LoadFavorites(filepath.Join(t.TempDir(), "favorites.json"))
		assert.Zero(t, f.Len())
	})

	t.Run("malformed_file_is_empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "favorites.json")
		require.NoError(t, os.WriteFile(path, []byte("[{"), 0o644))
		assert.Zero(t, LoadFavorites(path).Len())
	})

	t.Run("reads_existing_list", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "favorites.json")
		content := `[{"quote":"Stay hungry.","author":"Steve Jobs","category":"Inspiration"}]`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		f := LoadFavorites(path)
		assert.Equal(t, []model.Quote{quoteA}, f.List())
		assert.True(t, f.Contains(quoteA))
		assert.False(t, f.Contains(quoteB))
	})
}

func TestToggle(t *testing.T) {
	t.Run("add_then_remove_restores", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "favorites.json")
		f := LoadFavorites(path)

		added, err := f.Toggle(quoteA)
		require.NoError(t, err)
		assert.True(t, added)

		added, err = f.Toggle(quoteB)
		require.NoError(t, err)
		assert.True(t, added)
		before := f.List()

		added, err = f.Toggle(quoteA)
		require.NoError(t, err)
		assert.False(t, added)
		assert.Equal(t, []model.Quote{quoteB}, f.List())

		_, err = f.Toggle(quoteA)
		require.NoError(t, err)
		assert.ElementsMatch(t, before, f.List())

		reloaded := LoadFavorites(path)
		assert.Equal(t, f.List(), reloaded.List())
	})

	t.Run("removes_first_occurrence_only", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "favorites.json")
		content := `[{"quote":"Keep going.","author":"Sam Levenson"},{"quote":"Stay hungry.","author":"Steve Jobs","category":"Inspiration"},{"quote":"Keep going.","author":"Sam Levenson"}]`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		f := LoadFavorites(path)
		_, err := f.Toggle(quoteB)
		require.NoError(t, err)
		assert.Equal(t, []model.Quote{quoteA, quoteB}, f.List())
	})

	t.Run("empty_list_written_as_array", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "favorites.json")
		f := LoadFavorites(path)
		_, err := f.Toggle(quoteA)
		require.NoError(t, err)
		_, err = f.Toggle(quoteA)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))
	})

	t.Run("write_failure_leaves_list_unchanged", func(t *testing.T) {
		f := LoadFavorites(blockedPath(t))

		added, err := f.Toggle(quoteA)
		assert.Error(t, err)
		assert.False(t, added)
		assert.Zero(t, f.Len())
	})
}

// =============================================================================
// Journal Tests
// =============================================================================

func TestFormatJournalEntry(t *testing.T) {
	want := "📅 Friday, March 01, 2024\n" +
		"\"Stay hungry.\"\n" +
		"— Steve Jobs\n" +
		strings.Repeat("-", 40) + "\n\n"
	assert.Equal(t, want, FormatJournalEntry(quoteA, day))
}

func TestJournal(t *testing.T) {
	t.Run("header_written_once", func(t *testing.T) {
		j := NewJournal(filepath.Join(t.TempDir(), "daily_quotes.txt"))

		_, ok, err := j.Read()
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, j.Append(quoteA, day))
		require.NoError(t, j.Append(quoteB, day.AddDate(0, 0, 1)))

		content, ok, err := j.Read()
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1, strings.Count(content, "DAILY QUOTE JOURNAL"))
		assert.True(t, strings.HasPrefix(content, JournalHeader))
		assert.Equal(t, JournalHeader+FormatJournalEntry(quoteA, day)+FormatJournalEntry(quoteB, day.AddDate(0, 0, 1)), content)
	})

	t.Run("existing_file_gets_no_header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "daily_quotes.txt")
		require.NoError(t, os.WriteFile(path, []byte("old notes\n"), 0o644))

		require.NoError(t, NewJournal(path).Append(quoteA, day))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "old notes\n"+FormatJournalEntry(quoteA, day), string(data))
	})

	t.Run("write_failure_is_returned", func(t *testing.T) {
		assert.Error(t, NewJournal(blockedPath(t)).Append(quoteA, day))
	})
}

// =============================================================================
// Day File Tests
// =============================================================================

func TestDayFileName(t *testing.T) {
	assert.Equal(t, "quote_20240301.txt", DayFileName(day))
}

func TestFormatDayFile(t *testing.T) {
	header := "Daily Quote - March 01, 2024\n" + strings.Repeat("=", 50) + "\n\n"

	assert.Equal(t,
		header+"\"Stay hungry.\"\n— Steve Jobs\nCategory: Inspiration\n",
		FormatDayFile(quoteA, day))
	assert.Equal(t,
		header+"\"Keep going.\"\n— Sam Levenson\n",
		FormatDayFile(quoteB, day))
}

func TestSaveDay(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveDay(dir, quoteA, day)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "quote_20240301.txt"), path)

	// Same day overwrites.
	_, err = SaveDay(dir, quoteB, day)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, FormatDayFile(quoteB, day), string(data))

	_, err = SaveDay(blockedPath(t), quoteA, day)
	assert.Error(t, err)
}
