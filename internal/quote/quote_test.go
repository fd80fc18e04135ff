package quote

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/manav03panchal/quotd/internal/errors"
	"github.com/manav03panchal/quotd/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuotes() []model.Quote {
	return []model.Quote{
		model.NewQuote("one", "A", "Life"),
		model.NewQuote("two", "B", ""),
		model.NewQuote("three", "C", "Hope"),
	}
}

// =============================================================================
// Store Tests
// =============================================================================

func TestDefaults(t *testing.T) {
	quotes := Defaults()
	assert.Len(t, quotes, 20)
	for _, q := range quotes {
		assert.NotEmpty(t, q.Text)
		assert.NotEmpty(t, q.Author)
		assert.NotEmpty(t, q.Category)
	}

	// Each call returns an independent copy.
	quotes[0].Text = "changed"
	assert.NotEqual(t, "changed", Defaults()[0].Text)
}

func TestLoad(t *testing.T) {
	t.Run("missing_file_writes_defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "quotes.json")

		s, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, Defaults(), s.Quotes())
		assert.Equal(t, path, s.Path())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		written, err := Decode(data, false)
		require.NoError(t, err)
		assert.Equal(t, Defaults(), written)
	})

	t.Run("existing_json_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "quotes.json")
		data, err := Encode(sampleQuotes(), false)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		s, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, sampleQuotes(), s.Quotes())
	})

	t.Run("existing_yaml_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "quotes.yaml")
		content := "- quote: one\n  author: A\n  category: Life\n- quote: two\n  author: B\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		s, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 2, s.Len())
		assert.Equal(t, model.NewQuote("one", "A", "Life"), s.At(0))
		assert.Equal(t, "", s.At(1).Category)
	})

	t.Run("malformed_file_uses_defaults_and_is_untouched", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "quotes.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		s, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, Defaults(), s.Quotes())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{not json", string(data))
	})

	t.Run("unwritable_location_still_uses_defaults", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))

		s, err := Load(filepath.Join(blocker, "quotes.json"))
		require.NoError(t, err)
		assert.Equal(t, 20, s.Len())
	})

	t.Run("empty_list_loads_empty_store", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "quotes.json")
		require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

		s, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 0, s.Len())

		_, err = s.Daily(time.Now())
		assert.ErrorIs(t, err, errors.ErrEmptyStore)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("empty_path_is_in_memory", func(t *testing.T) {
		s, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "", s.Path())
		assert.Equal(t, 20, s.Len())
	})
}

func TestIsYAML(t *testing.T) {
	assert.True(t, IsYAML("q.yaml"))
	assert.True(t, IsYAML("q.YML"))
	assert.False(t, IsYAML("q.json"))
	assert.False(t, IsYAML("q"))
}

func TestEncodeOmitsEmptyCategory(t *testing.T) {
	data, err := Encode([]model.Quote{model.NewQuote("t", "a", "")}, false)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "category")
	assert.Contains(t, string(data), `"quote": "t"`)

	data, err = Encode(nil, false)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestAdd(t *testing.T) {
	t.Run("appends_and_persists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "quotes.json")
		s, err := Load(path)
		require.NoError(t, err)

		q := model.NewQuote("new one", "Me", "")
		require.NoError(t, s.Add(q))
		assert.Equal(t, 21, s.Len())
		assert.Equal(t, q, s.At(20))

		reloaded, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, s.Quotes(), reloaded.Quotes())
	})

	t.Run("failed_write_leaves_store_unchanged", func(t *testing.T) {
		s, err := Load(filepath.Join(t.TempDir(), "quotes.json"))
		require.NoError(t, err)

		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))
		s.path = filepath.Join(blocker, "quotes.json")

		assert.Error(t, s.Add(model.NewQuote("x", "y", "")))
		assert.Equal(t, 20, s.Len())
	})
}

func TestMerge(t *testing.T) {
	s := New(sampleQuotes())

	added, err := s.Merge([]model.Quote{
		model.NewQuote("two", "B", ""),
		model.NewQuote("four", "D", ""),
		{},
		model.NewQuote("four", "D", ""),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, 4, s.Len())

	added, err = s.Merge(sampleQuotes())
	require.NoError(t, err)
	assert.Zero(t, added)
}

// =============================================================================
// Selector Tests
// =============================================================================

func TestOrdinal(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int64
	}{
		{"first day", time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC), 1},
		{"unix epoch", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 719163},
		{"new year 2022", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), 738156},
		{"reference day", time.Date(2022, 12, 11, 0, 0, 0, 0, time.UTC), 738500},
		{"late in the day", time.Date(2022, 12, 11, 23, 59, 59, 0, time.UTC), 738500},
		{"before epoch", time.Date(1969, 12, 31, 12, 0, 0, 0, time.UTC), 719162},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ordinal(tt.date))
		})
	}
}

func TestOrdinalUsesLocalDate(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	// 2022-12-11 01:00 in Tokyo is still 2022-12-10 in UTC.
	local := time.Date(2022, 12, 11, 1, 0, 0, 0, tokyo)
	assert.Equal(t, int64(738500), Ordinal(local))
	assert.Equal(t, int64(738499), Ordinal(local.UTC()))
}

func TestDaily(t *testing.T) {
	s := New(Defaults())

	t.Run("stable_for_a_date", func(t *testing.T) {
		morning := time.Date(2024, 6, 1, 6, 0, 0, 0, time.Local)
		night := time.Date(2024, 6, 1, 23, 30, 0, 0, time.Local)

		a, err := s.Daily(morning)
		require.NoError(t, err)
		b, err := s.Daily(night)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("index_in_range", func(t *testing.T) {
		day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 400; i++ {
			idx := DailyIndex(day.AddDate(0, 0, i), s.Len())
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, s.Len())
		}
	})

	t.Run("varies_across_dates", func(t *testing.T) {
		day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		seen := map[int]bool{}
		for i := 0; i < 60; i++ {
			seen[DailyIndex(day.AddDate(0, 0, i), s.Len())] = true
		}
		assert.Greater(t, len(seen), 1)
	})

	t.Run("single_quote", func(t *testing.T) {
		one := New(sampleQuotes()[:1])
		q, err := one.Daily(time.Now())
		require.NoError(t, err)
		assert.Equal(t, "one", q.Text)
	})

	t.Run("empty_store", func(t *testing.T) {
		_, err := New(nil).Daily(time.Now())
		assert.ErrorIs(t, err, errors.ErrEmptyStore)
	})
}

func TestRandom(t *testing.T) {
	s := New(sampleQuotes())
	for i := 0; i < 50; i++ {
		q, err := s.Random()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, model.IndexOf(s.Quotes(), q), 0)
	}

	_, err := New(nil).Random()
	assert.ErrorIs(t, err, errors.ErrEmptyStore)
}

func TestNext(t *testing.T) {
	s := New(sampleQuotes())

	t.Run("cycles_and_wraps", func(t *testing.T) {
		first := s.At(0)
		cur := first
		var visited []model.Quote
		for i := 0; i < s.Len(); i++ {
			next, err := s.Next(&cur)
			require.NoError(t, err)
			visited = append(visited, next)
			cur = next
		}
		assert.Equal(t, []model.Quote{s.At(1), s.At(2), s.At(0)}, visited)
	})

	t.Run("duplicates_use_first_position", func(t *testing.T) {
		dup := New([]model.Quote{
			model.NewQuote("a", "x", ""),
			model.NewQuote("b", "x", ""),
			model.NewQuote("a", "x", ""),
			model.NewQuote("c", "x", ""),
		})
		prev := model.NewQuote("a", "x", "")
		next, err := dup.Next(&prev)
		require.NoError(t, err)
		assert.Equal(t, "b", next.Text)
	})

	t.Run("nil_or_unknown_falls_back_to_random", func(t *testing.T) {
		q, err := s.Next(nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, model.IndexOf(s.Quotes(), q), 0)

		stranger := model.NewQuote("not here", "Nobody", "")
		q, err = s.Next(&stranger)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, model.IndexOf(s.Quotes(), q), 0)
	})

	t.Run("empty_store", func(t *testing.T) {
		_, err := New(nil).Next(nil)
		assert.ErrorIs(t, err, errors.ErrEmptyStore)
	})
}
