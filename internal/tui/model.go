package tui

import (
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/manav03panchal/quotd/internal/errors"
	"github.com/manav03panchal/quotd/internal/logging"
	"github.com/manav03panchal/quotd/internal/model"
	"github.com/manav03panchal/quotd/internal/output"
	"github.com/manav03panchal/quotd/internal/session"
)

// Status message lifetimes.
const (
	messageDuration = 3 * time.Second
	tickInterval    = time.Second
)

// tickMsg is sent when the timer ticks.
type tickMsg time.Time

// loadTodayMsg asks the model to show today's quote.
type loadTodayMsg struct{}

// copiedMsg is sent after the clipboard write.
type copiedMsg struct{}

// errMsg is sent when an error occurs.
type errMsg struct {
	err error
}

// termOutput is the terminal shared by the renderer and clipboard writes.
// Each Write holds the lock, so an OSC52 sequence never lands inside a frame.
type termOutput struct {
	*os.File
	mu sync.Mutex
}

func (o *termOutput) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.File.Write(p)
}

// Model is the bubbletea model for the quote view.
type Model struct {
	session *session.Session
	out     *termOutput
	copy    func(string)
	now     func() time.Time

	// UI state
	width         int
	height        int
	wrapWidth     int
	showFavorites bool
	showAbout     bool
	err           error
	message       string
	messageExp    time.Time
	quitting      bool
}

// Config holds configuration for the quote view.
type Config struct {
	Session *session.Session
	// WrapWidth is the quote text width. Defaults to output.DefaultWrapWidth.
	WrapWidth int
	// Output is the terminal. Defaults to os.Stdout.
	Output *os.File
	// Copy writes text to the clipboard. Defaults to an OSC52 sequence on
	// Output.
	Copy func(string)
	// Now drives status message expiry. Defaults to time.Now.
	Now func() time.Time
}

// NewModel creates a new quote view model.
func NewModel(config Config) *Model {
	if config.WrapWidth <= 0 {
		config.WrapWidth = output.DefaultWrapWidth
	}
	if config.Output == nil {
		config.Output = os.Stdout
	}
	out := &termOutput{File: config.Output}
	if config.Copy == nil {
		term := termenv.NewOutput(out)
		config.Copy = term.Copy
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	return &Model{
		session:   config.Session,
		out:       out,
		copy:      config.Copy,
		now:       config.Now,
		wrapWidth: config.WrapWidth,
		message:   session.StatusReady,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.loadTodayCmd(),
	)
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Revert expired messages
		if !m.messageExp.IsZero() && m.now().After(m.messageExp) {
			m.message = session.StatusReady
			m.messageExp = time.Time{}
		}
		return m, m.tickCmd()

	case loadTodayMsg:
		m.show(m.session.Today, session.StatusTodayLoaded)
		return m, nil

	case copiedMsg:
		m.setMessage(session.StatusCopied, messageDuration)
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "t":
		m.show(m.session.Today, session.StatusTodayLoaded)

	case "r":
		m.show(m.session.Random, session.StatusRandomLoaded)

	case "n":
		m.show(m.session.Next, session.StatusNextLoaded)

	case "f":
		m.toggleFavorite()

	case "s":
		path, err := m.session.SaveDay()
		if m.check(err, "No quote to save!") {
			m.setMessage(session.StatusSaved(path), messageDuration)
		}

	case "j":
		err := m.session.AppendJournal()
		if m.check(err, "No quote to add to the journal!") {
			m.setMessage(session.StatusJournaled, messageDuration)
		}

	case "v":
		m.showFavorites = !m.showFavorites

	case "?":
		m.showAbout = !m.showAbout

	case "c":
		q, ok := m.session.Current()
		if !ok {
			m.setMessage("No quote to copy!", messageDuration)
			return m, nil
		}
		return m, m.copyCmd(q.ClipboardText())
	}

	return m, nil
}

func (m *Model) show(pick func() (model.Quote, error), status string) {
	if _, err := pick(); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.setMessage(status, messageDuration)
}

func (m *Model) toggleFavorite() {
	added, err := m.session.ToggleFavorite()
	if !m.check(err, "No quote to add to favorites!") {
		return
	}
	if added {
		m.setMessage(session.StatusFavoriteAdded, messageDuration)
	} else {
		m.setMessage(session.StatusFavoriteRemove, messageDuration)
	}
}

// check records err and reports whether the action succeeded. A missing
// current quote is a warning message rather than an error.
func (m *Model) check(err error, noQuote string) bool {
	switch {
	case err == nil:
		m.err = nil
		return true
	case errors.Is(err, errors.ErrNoCurrentQuote):
		m.setMessage(noQuote, messageDuration)
	default:
		logging.Warn("quote view action failed", logging.KeyError, err)
		m.err = err
	}
	return false
}

// View renders the quote view.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	q, ok := m.session.Current()
	quoteComp := NewQuoteComponent(q, ok, m.session.Mode(), m.session.IsFavorite(), m.width, m.wrapWidth)
	sections = append(sections, quoteComp.View())

	if m.showFavorites {
		favComp := NewFavoritesComponent(m.session.Favorites(), m.width, m.favoritesLimit())
		sections = append(sections, favComp.View())
	}

	if m.showAbout {
		sections = append(sections, AboutView(m.width))
	}

	sections = append(sections, m.renderStatus())
	sections = append(sections, HelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the view header.
func (m *Model) renderHeader() string {
	title := StyleTitle.Render("✨ Daily Quote ✨")
	date := StyleSubtitle.Render(output.FormatLongDate(m.session.Now()))

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", date) + "\n"
}

// renderStatus renders the status line and the counter.
func (m *Model) renderStatus() string {
	status := StyleStatus.Render(m.message)
	if m.message != session.StatusReady {
		status = StyleWarning.Render(m.message)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, status, "   ", StyleSubtitle.Render(m.session.CounterText()))
}

// favoritesLimit caps the favorites pane to the terminal height.
func (m *Model) favoritesLimit() int {
	if m.height <= 0 {
		return 0
	}
	limit := (m.height - 24) / 2
	if limit < 3 {
		return 3
	}
	return limit
}

// setMessage sets a temporary message.
func (m *Model) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = m.now().Add(duration)
}

// Message returns the current status line.
func (m *Model) Message() string {
	return m.message
}

// tickCmd returns a command that sends a tick message.
func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadTodayCmd returns a command that loads today's quote.
func (m *Model) loadTodayCmd() tea.Cmd {
	return func() tea.Msg {
		return loadTodayMsg{}
	}
}

// copyCmd returns a command that writes text to the clipboard.
func (m *Model) copyCmd(text string) tea.Cmd {
	copyFn := m.copy
	return func() tea.Msg {
		copyFn(text)
		return copiedMsg{}
	}
}

// Run starts the quote view.
func Run(config Config) error {
	m := NewModel(config)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(m.out))
	_, err := p.Run()
	return err
}
