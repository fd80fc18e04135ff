// Command quotd-window opens the quotd desktop window.
package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/manav03panchal/quotd/internal/gui"
	"github.com/manav03panchal/quotd/internal/runtime"
)

func main() {
	opts := runtime.DefaultOptions()
	if len(os.Args) > 1 {
		opts.ConfigPath = os.Args[1]
	}

	ctx, err := runtime.New(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+runtime.FormatError(err))
		os.Exit(1)
	}
	defer ctx.Close()

	myApp := app.NewWithID(gui.AppID)
	myWindow := myApp.NewWindow(gui.WindowTitle)
	myWindow.Resize(fyne.NewSize(gui.WindowWidth, gui.WindowHeight))

	gui.New(myApp, myWindow, ctx.Session)

	myWindow.ShowAndRun()
}
