package session

import "fmt"

// Status lines shown by the interactive front ends.
const (
	StatusReady          = "Ready"
	StatusTodayLoaded    = "Today's quote loaded"
	StatusRandomLoaded   = "Random quote loaded"
	StatusNextLoaded     = "Next quote loaded"
	StatusFavoriteAdded  = "Added to favorites"
	StatusFavoriteRemove = "Removed from favorites"
	StatusCopied         = "Quote copied to clipboard"
	StatusJournaled      = "Quote added to journal"
)

// AboutTitle and AboutText describe the application in about dialogs.
const (
	AboutTitle = "About quotd"
	AboutText  = "quotd - daily inspirational quotes\n\n" +
		"Features:\n" +
		"• Get today's quote\n" +
		"• Random quotes\n" +
		"• Save favorites\n" +
		"• Copy to clipboard"
)

// StatusSaved returns the status line for a saved day file.
func StatusSaved(path string) string {
	return "Quote saved to " + path
}

// CounterText renders the quote and favorite counts.
func (s *Session) CounterText() string {
	quotes, favorites := s.Counts()
	return fmt.Sprintf("Quotes: %d | Favorites: %d", quotes, favorites)
}
