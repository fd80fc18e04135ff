package output

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultWrapWidth is the default column budget for quote text.
const DefaultWrapWidth = 50

// Wrap splits text on whitespace and packs the words greedily into lines no
// wider than width display columns. Words are never split, so a word wider
// than width gets a line of its own. Empty text yields no lines.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var (
		lines   []string
		line    strings.Builder
		lineLen int
	)
	for _, w := range words {
		wl := runewidth.StringWidth(w)
		if lineLen > 0 && lineLen+1+wl > width {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
		if lineLen > 0 {
			line.WriteByte(' ')
			lineLen++
		}
		line.WriteString(w)
		lineLen += wl
	}
	return append(lines, line.String())
}
