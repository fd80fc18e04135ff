package model

import (
	"fmt"
	"time"
)

// Mode says how a quote was picked.
type Mode string

const (
	ModeDaily  Mode = "daily"
	ModeRandom Mode = "random"
	ModeNext   Mode = "next"
)

// Presentation records one time a quote was shown.
type Presentation struct {
	Key     string    `json:"key"`
	Quote   Quote     `json:"quote"`
	Mode    Mode      `json:"mode"`
	ShownAt time.Time `json:"shown_at"`
}

// SetKey sets the database key for this presentation.
func (p *Presentation) SetKey(key string) {
	p.Key = key
}

// GetKey returns the database key for this presentation.
func (p *Presentation) GetKey() string {
	return p.Key
}

// GeneratePresentationKey builds the key for a presentation id.
func GeneratePresentationKey(id string) string {
	return fmt.Sprintf("%s:%s", PrefixShown, id)
}

// NewPresentation creates a presentation record for q shown at t.
func NewPresentation(q Quote, mode Mode, t time.Time) *Presentation {
	return &Presentation{
		Quote:   q,
		Mode:    mode,
		ShownAt: t,
	}
}

// CurrentQuote is the singleton holding the last shown quote, so that
// commands run in separate processes can continue from it.
type CurrentQuote struct {
	Key     string    `json:"key"`
	Quote   Quote     `json:"quote"`
	Mode    Mode      `json:"mode"`
	ShownAt time.Time `json:"shown_at"`
}

// SetKey sets the database key for this record.
func (c *CurrentQuote) SetKey(key string) {
	c.Key = key
}

// GetKey returns the database key for this record.
func (c *CurrentQuote) GetKey() string {
	return c.Key
}

// NewCurrentQuote creates the current-quote singleton.
func NewCurrentQuote(q Quote, mode Mode, t time.Time) *CurrentQuote {
	return &CurrentQuote{
		Key:     KeyCurrent,
		Quote:   q,
		Mode:    mode,
		ShownAt: t,
	}
}

// IsSet returns true if a quote has been recorded.
func (c *CurrentQuote) IsSet() bool {
	return !c.Quote.IsZero()
}
