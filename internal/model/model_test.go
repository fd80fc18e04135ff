package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Quote Tests
// =============================================================================

func TestNewQuote(t *testing.T) {
	q := NewQuote("Stay hungry.", "Steve Jobs", "Inspiration")

	assert.Equal(t, "Stay hungry.", q.Text)
	assert.Equal(t, "Steve Jobs", q.Author)
	assert.Equal(t, "Inspiration", q.Category)
	assert.False(t, q.IsZero())
	assert.True(t, Quote{}.IsZero())
}

func TestQuoteCategoryOrDefault(t *testing.T) {
	assert.Equal(t, "Life", NewQuote("a", "b", "Life").CategoryOrDefault())
	assert.Equal(t, "Uncategorized", NewQuote("a", "b", "").CategoryOrDefault())
}

func TestQuoteClipboardText(t *testing.T) {
	q := NewQuote("Keep going.", "Sam Levenson", "")
	assert.Equal(t, "\"Keep going.\"\n— Sam Levenson", q.ClipboardText())
}

func TestIndexOf(t *testing.T) {
	a := NewQuote("a", "x", "")
	b := NewQuote("b", "y", "")
	quotes := []Quote{a, b, a}

	assert.Equal(t, 0, IndexOf(quotes, a))
	assert.Equal(t, 1, IndexOf(quotes, b))
	assert.Equal(t, -1, IndexOf(quotes, NewQuote("c", "z", "")))
	assert.Equal(t, -1, IndexOf(nil, a))

	// Category is part of identity
	assert.Equal(t, -1, IndexOf(quotes, NewQuote("a", "x", "Life")))
}

// =============================================================================
// Presentation Tests
// =============================================================================

func TestPresentationKey(t *testing.T) {
	p := NewPresentation(NewQuote("a", "b", ""), ModeRandom, time.Now())
	p.SetKey(GeneratePresentationKey("0192"))

	assert.Equal(t, "shown:0192", p.GetKey())
	assert.Equal(t, ModeRandom, p.Mode)
}

func TestCurrentQuote(t *testing.T) {
	empty := &CurrentQuote{}
	assert.False(t, empty.IsSet())

	now := time.Now()
	c := NewCurrentQuote(NewQuote("a", "b", ""), ModeDaily, now)
	assert.True(t, c.IsSet())
	assert.Equal(t, KeyCurrent, c.GetKey())
	assert.Equal(t, now, c.ShownAt)
}
