package persist

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/manav03panchal/quotd/internal/model"
	"github.com/manav03panchal/quotd/internal/storage"
)

// JournalHeader starts a journal file. It is written once, when the file is
// created.
var JournalHeader = "DAILY QUOTE JOURNAL\n" + strings.Repeat("=", 50) + "\n\n"

// Journal is an append-only text log of saved quotes.
type Journal struct {
	path string
}

// NewJournal returns the journal at path.
func NewJournal(path string) *Journal {
	return &Journal{path: path}
}

// Path returns the journal file path.
func (j *Journal) Path() string {
	return j.path
}

// FormatJournalEntry renders one journal block for q saved on t.
func FormatJournalEntry(q model.Quote, t time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 %s\n", t.Format("Monday, January 02, 2006"))
	fmt.Fprintf(&b, "\"%s\"\n", q.Text)
	fmt.Fprintf(&b, "— %s\n", q.Author)
	b.WriteString(strings.Repeat("-", 40))
	b.WriteString("\n\n")
	return b.String()
}

// Append adds q to the journal, writing the header first when the file does
// not exist yet.
func (j *Journal) Append(q model.Quote, t time.Time) error {
	return storage.SafeAppend(j.path, []byte(JournalHeader), []byte(FormatJournalEntry(q, t)), 0o644)
}

// Read returns the raw journal text. ok is false when no journal exists yet.
func (j *Journal) Read() (content string, ok bool, err error) {
	data, err := os.ReadFile(j.path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}
