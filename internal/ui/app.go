package ui

import (
	"log"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"ColorDropper/internal/config"
	"ColorDropper/internal/state"
)

func RunApp(cfg config.Config, w *Eyedropper) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Window.Title)

	w.dropper.OnPicked = func(s state.Selection) {
		log.Printf("[UI] Selection %s: %s", s.ID, s.Hex)
	}

	content := container.NewBorder(NewHeader(w), nil, nil, nil, w)
	myWindow.SetContent(content)
	myWindow.Resize(content.MinSize())

	// the app must exist before the load can schedule its redraw
	w.LoadImage(cfg.Image.Path, nil)

	myWindow.ShowAndRun()
}
