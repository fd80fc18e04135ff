// Package menu implements the numbered terminal menu loop.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/manav03panchal/quotd/internal/logging"
	"github.com/manav03panchal/quotd/internal/model"
	"github.com/manav03panchal/quotd/internal/output"
	"github.com/manav03panchal/quotd/internal/session"
)

const (
	ruleWidth = 60
	title     = "DAILY QUOTE GENERATOR"
	welcome   = "Welcome to the Daily Quote Generator!"
)

// Menu choices.
const (
	ChoiceToday = iota + 1
	ChoiceRandom
	ChoiceHistory
	ChoiceExit
)

var (
	colorTitle   = color.New(color.FgMagenta, color.Bold)
	colorPrompt  = color.New(color.FgCyan)
	colorSuccess = color.New(color.FgGreen)
	colorWarning = color.New(color.FgYellow)
	colorError   = color.New(color.FgRed)
)

// Config configures a menu loop.
type Config struct {
	Session *session.Session
	In      io.Reader
	Out     io.Writer
	// WrapWidth is the quote text width.
	WrapWidth int
	// Animate types the welcome line out one character at a time.
	Animate      bool
	AnimateDelay time.Duration
	// Sleep defaults to time.Sleep.
	Sleep func(time.Duration)
}

// Menu is the interactive numbered menu.
type Menu struct {
	session *session.Session
	in      *bufio.Scanner
	out     io.Writer
	wrap    int
	animate bool
	delay   time.Duration
	sleep   func(time.Duration)
	isTTY   bool
}

// New creates a menu reading choices from cfg.In.
func New(cfg Config) *Menu {
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.WrapWidth <= 0 {
		cfg.WrapWidth = output.DefaultWrapWidth
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}

	return &Menu{
		session: cfg.Session,
		in:      bufio.NewScanner(cfg.In),
		out:     cfg.Out,
		wrap:    cfg.WrapWidth,
		animate: cfg.Animate,
		delay:   cfg.AnimateDelay,
		sleep:   cfg.Sleep,
		isTTY:   isTerminal(cfg.Out),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run shows the welcome banner and loops until the user exits or input
// ends.
func (m *Menu) Run() error {
	m.clearScreen()
	m.welcome()

	for {
		m.header()
		choice, ok := m.readChoice()
		if !ok {
			fmt.Fprintln(m.out)
			return m.in.Err()
		}
		logging.DebugLog("menu choice", "choice", choice)

		switch choice {
		case ChoiceToday:
			if !m.showQuote(m.session.Today) {
				return m.in.Err()
			}
		case ChoiceRandom:
			if !m.showQuote(m.session.Random) {
				return m.in.Err()
			}
		case ChoiceHistory:
			m.history()
			if !m.pause() {
				return m.in.Err()
			}
		case ChoiceExit:
			m.farewell()
			return nil
		}

		m.clearScreen()
	}
}

func (m *Menu) welcome() {
	fmt.Fprintln(m.out, "\n"+strings.Repeat("=", ruleWidth))
	m.typeOut(welcome)
	fmt.Fprintln(m.out, strings.Repeat("=", ruleWidth))
}

// typeOut writes text, one character at a time when animation is on.
func (m *Menu) typeOut(text string) {
	if !m.animate || m.delay <= 0 {
		colorTitle.Fprintln(m.out, text)
		return
	}
	for _, r := range text {
		colorTitle.Fprint(m.out, string(r))
		m.sleep(m.delay)
	}
	fmt.Fprintln(m.out)
}

func (m *Menu) header() {
	fmt.Fprintln(m.out, strings.Repeat("=", ruleWidth))
	colorTitle.Fprintln(m.out, strings.Repeat(" ", 20)+title)
	fmt.Fprintln(m.out, strings.Repeat("=", ruleWidth))
	fmt.Fprintf(m.out, "Date: %s\n", output.FormatLongDate(m.session.Now()))
	fmt.Fprintln(m.out, strings.Repeat("-", ruleWidth))
}

// readChoice prints the menu and reads a choice, re-prompting until it is
// valid. ok is false when input ends.
func (m *Menu) readChoice() (choice int, ok bool) {
	fmt.Fprintln(m.out, "\n"+strings.Repeat("=", ruleWidth))
	fmt.Fprintln(m.out, "MENU:")
	fmt.Fprintln(m.out, "  1. Get today's daily quote")
	fmt.Fprintln(m.out, "  2. Get a random quote")
	fmt.Fprintln(m.out, "  3. View quote history")
	fmt.Fprintln(m.out, "  4. Exit")
	fmt.Fprintln(m.out, strings.Repeat("=", ruleWidth))

	for {
		line, ok := m.prompt("Enter your choice (1-4): ")
		if !ok {
			return 0, false
		}
		switch strings.TrimSpace(line) {
		case "1":
			return ChoiceToday, true
		case "2":
			return ChoiceRandom, true
		case "3":
			return ChoiceHistory, true
		case "4":
			return ChoiceExit, true
		}
		colorWarning.Fprintln(m.out, "Please enter a number between 1 and 4.")
	}
}

// prompt writes text and reads one line.
func (m *Menu) prompt(text string) (string, bool) {
	colorPrompt.Fprint(m.out, text)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

// showQuote shows a quote, offers to journal it and waits for Enter. It
// returns false when input ends.
func (m *Menu) showQuote(pick func() (model.Quote, error)) bool {
	q, err := pick()
	if err != nil {
		colorError.Fprintf(m.out, "Could not pick a quote: %v\n", err)
		return m.pause()
	}
	fmt.Fprint(m.out, output.RenderQuote(q, output.HeadingFor(m.session.Mode()), m.wrap))

	answer, ok := m.prompt("Save this quote to your journal? (y/n): ")
	if !ok {
		return false
	}
	if strings.ToLower(strings.TrimSpace(answer)) == "y" {
		if err := m.session.AppendJournal(); err != nil {
			colorError.Fprintf(m.out, "Could not save quote to file: %v\n", err)
		} else {
			colorSuccess.Fprintln(m.out, "Quote saved successfully!")
		}
	}
	return m.pause()
}

func (m *Menu) history() {
	content, ok, err := m.session.Journal()
	if err != nil {
		colorError.Fprintf(m.out, "Error reading quote history: %v\n", err)
		return
	}
	if !ok {
		fmt.Fprintln(m.out, "\nNo quote history found.")
		fmt.Fprintln(m.out, "Save a quote to your journal and it will show up here.")
		return
	}
	fmt.Fprintln(m.out, "\n"+strings.Repeat("=", ruleWidth))
	colorTitle.Fprintln(m.out, "QUOTE HISTORY")
	fmt.Fprintln(m.out, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(m.out, content)
}

func (m *Menu) pause() bool {
	_, ok := m.prompt("\nPress Enter to continue...")
	return ok
}

func (m *Menu) farewell() {
	fmt.Fprintln(m.out, "\nThank you for using the Daily Quote Generator!")
	colorSuccess.Fprintln(m.out, "May your day be filled with inspiration! ✨")
}

// clearScreen clears the terminal. It does nothing when output is not a
// terminal.
func (m *Menu) clearScreen() {
	if !m.isTTY {
		return
	}
	fmt.Fprint(m.out, "\033[H\033[2J")
}
