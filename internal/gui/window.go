// Package gui provides the desktop window for quotd.
package gui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/manav03panchal/quotd/internal/errors"
	"github.com/manav03panchal/quotd/internal/logging"
	"github.com/manav03panchal/quotd/internal/model"
	"github.com/manav03panchal/quotd/internal/output"
	"github.com/manav03panchal/quotd/internal/session"
)

// Window constants
const (
	AppID          = "io.github.manav03panchal.quotd"
	WindowTitle    = "Daily Quote Generator"
	WindowWidth    = 700
	WindowHeight   = 500
	StatusDuration = 3 * time.Second
)

// Favorite button labels
const (
	LabelAddFavorite    = "⭐ Add to Favorites"
	LabelRemoveFavorite = "★ Remove from Favorites"
)

// Window is the desktop quote window.
type Window struct {
	app     fyne.App
	window  fyne.Window
	session *session.Session

	quoteLabel    *widget.Label
	authorLabel   *widget.Label
	categoryLabel *widget.Label
	statusLabel   *widget.Label
	counterLabel  *widget.Label
	favoriteBtn   *widget.Button

	// statusGen discards stale status reverts.
	statusGen      int
	statusDuration time.Duration
}

// New builds the window contents and shows today's quote.
func New(app fyne.App, window fyne.Window, s *session.Session) *Window {
	w := &Window{
		app:            app,
		window:         window,
		session:        s,
		statusDuration: StatusDuration,
	}

	window.SetTitle(WindowTitle)
	w.setupUI()
	w.ShowToday()
	return w
}

// setupUI creates and arranges all widgets
func (w *Window) setupUI() {
	w.createMenu()

	title := widget.NewLabelWithStyle("✨ Daily Quote Generator ✨", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	date := widget.NewLabelWithStyle(output.FormatLongDate(w.session.Now()), fyne.TextAlignCenter, fyne.TextStyle{})

	w.quoteLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	w.quoteLabel.Wrapping = fyne.TextWrapWord
	w.authorLabel = widget.NewLabelWithStyle("", fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})
	w.categoryLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})

	quoteCard := widget.NewCard("", "", container.NewVBox(w.quoteLabel, w.authorLabel, w.categoryLabel))

	w.favoriteBtn = widget.NewButton(LabelAddFavorite, w.ToggleFavorite)
	row1 := container.NewGridWithColumns(3,
		widget.NewButton("Today's Quote", w.ShowToday),
		widget.NewButton("Random Quote", w.ShowRandom),
		widget.NewButton("Next Quote", w.ShowNext),
	)
	row2 := container.NewGridWithColumns(4,
		w.favoriteBtn,
		widget.NewButton("Save to File", w.SaveQuote),
		widget.NewButton("View Favorites", w.ViewFavorites),
		widget.NewButton("Copy Quote", w.CopyQuote),
	)

	w.statusLabel = widget.NewLabel(session.StatusReady)
	w.counterLabel = widget.NewLabel("")
	statusBar := container.NewBorder(nil, nil, w.statusLabel, w.counterLabel)

	top := container.NewVBox(title, date)
	bottom := container.NewVBox(row1, row2, widget.NewSeparator(), statusBar)
	w.window.SetContent(container.NewBorder(top, bottom, nil, nil, container.NewPadded(quoteCard)))
	w.updateCounter()
}

// createMenu installs the File, Quotes and Help menus.
func (w *Window) createMenu() {
	quit := fyne.NewMenuItem("Quit", w.app.Quit)
	quit.IsQuit = true

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Save Current Quote", w.SaveQuote),
			fyne.NewMenuItem("View Favorites", w.ViewFavorites),
			fyne.NewMenuItemSeparator(),
			quit,
		),
		fyne.NewMenu("Quotes",
			fyne.NewMenuItem("Today's Quote", w.ShowToday),
			fyne.NewMenuItem("Random Quote", w.ShowRandom),
			fyne.NewMenuItem("Next Quote", w.ShowNext),
		),
		fyne.NewMenu("Help",
			fyne.NewMenuItem("About", w.ShowAbout),
		),
	)
	w.window.SetMainMenu(mainMenu)
}

// ShowToday shows today's quote.
func (w *Window) ShowToday() {
	w.show(w.session.Today, session.StatusTodayLoaded)
}

// ShowRandom shows a random quote.
func (w *Window) ShowRandom() {
	w.show(w.session.Random, session.StatusRandomLoaded)
}

// ShowNext shows the quote after the current one.
func (w *Window) ShowNext() {
	w.show(w.session.Next, session.StatusNextLoaded)
}

func (w *Window) show(pick func() (model.Quote, error), status string) {
	q, err := pick()
	if err != nil {
		w.showError(err)
		return
	}
	w.quoteLabel.SetText("“" + q.Text + "”")
	w.authorLabel.SetText("— " + q.Author)
	w.categoryLabel.SetText("Category: " + q.CategoryOrDefault())
	w.updateFavoriteButton()
	w.setStatus(status)
}

// ToggleFavorite adds or removes the current quote from favorites.
func (w *Window) ToggleFavorite() {
	added, err := w.session.ToggleFavorite()
	if err != nil {
		w.showError(err)
		return
	}
	if added {
		w.setStatus(session.StatusFavoriteAdded)
	} else {
		w.setStatus(session.StatusFavoriteRemove)
	}
	w.updateFavoriteButton()
	w.updateCounter()
}

// SaveQuote writes the current quote to today's file.
func (w *Window) SaveQuote() {
	path, err := w.session.SaveDay()
	if err != nil {
		w.showError(err)
		return
	}
	w.setStatus(session.StatusSaved(path))
	dialog.ShowInformation("Success", session.StatusSaved(path), w.window)
}

// ViewFavorites opens a window listing the favorites.
func (w *Window) ViewFavorites() {
	favorites := w.session.Favorites()
	if len(favorites) == 0 {
		dialog.ShowInformation("No Favorites", "You haven't added any quotes to favorites yet!", w.window)
		return
	}

	list := widget.NewLabel(output.RenderFavorites(favorites))
	list.Wrapping = fyne.TextWrapWord

	favWindow := w.app.NewWindow("Favorite Quotes")
	closeBtn := widget.NewButton("Close", favWindow.Close)
	header := widget.NewLabelWithStyle("⭐ Your Favorite Quotes", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	favWindow.SetContent(container.NewBorder(header, closeBtn, nil, nil, container.NewVScroll(list)))
	favWindow.Resize(fyne.NewSize(600, 500))
	favWindow.Show()
}

// CopyQuote places the current quote on the clipboard.
func (w *Window) CopyQuote() {
	q, ok := w.session.Current()
	if !ok {
		w.showError(errors.ErrNoCurrentQuote)
		return
	}
	w.app.Clipboard().SetContent(q.ClipboardText())
	w.setStatus(session.StatusCopied)
}

// ShowAbout shows the about dialog.
func (w *Window) ShowAbout() {
	dialog.ShowInformation(session.AboutTitle, session.AboutText, w.window)
}

// showError reports err in a dialog. A missing current quote gets a plain
// notice instead of an error dialog.
func (w *Window) showError(err error) {
	if errors.Is(err, errors.ErrNoCurrentQuote) {
		dialog.ShowInformation("No Quote", "No quote to work with yet!", w.window)
		return
	}
	logging.Warn("window action failed", logging.KeyError, err)
	dialog.ShowError(err, w.window)
}

func (w *Window) updateFavoriteButton() {
	if w.session.IsFavorite() {
		w.favoriteBtn.SetText(LabelRemoveFavorite)
	} else {
		w.favoriteBtn.SetText(LabelAddFavorite)
	}
}

func (w *Window) updateCounter() {
	w.counterLabel.SetText(w.session.CounterText())
}

// setStatus shows msg and reverts to "Ready" after the status duration,
// unless another message replaced it first.
func (w *Window) setStatus(msg string) {
	w.statusGen++
	gen := w.statusGen
	w.statusLabel.SetText(msg)

	time.AfterFunc(w.statusDuration, func() {
		fyne.Do(func() {
			if w.statusGen == gen {
				w.statusLabel.SetText(session.StatusReady)
			}
		})
	})
}
