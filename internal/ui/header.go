package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"ColorDropper/assets"
	"ColorDropper/internal/hexcolor"
)

// --- Swatch showing the picked color ---
type colorSwatch struct {
	widget.BaseWidget
	rect     *canvas.Rectangle
	OnTapped func()
}

func newColorSwatch(hex string, tapped func()) *colorSwatch {
	s := &colorSwatch{OnTapped: tapped}
	s.rect = canvas.NewRectangle(swatchColor(hex))
	s.rect.SetMinSize(fyne.NewSize(32, 32))
	s.ExtendBaseWidget(s)
	return s
}

func swatchColor(hex string) color.Color {
	c, err := hexcolor.Parse(hex)
	if err != nil {
		return color.Transparent
	}
	return c
}

func (s *colorSwatch) SetHex(hex string) {
	s.rect.FillColor = swatchColor(hex)
	s.rect.Refresh()
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(s.rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped()
	}
}

// --- The header above the surface ---
func NewHeader(w *Eyedropper) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(assets.EyedropperIcon, w.Activate), // Eyedropper
	)

	picked, _ := w.PickedColor.Get()
	swatch := newColorSwatch(picked, w.Activate)
	w.PickedColor.AddListener(binding.NewDataListener(func() {
		hex, err := w.PickedColor.Get()
		if err == nil {
			swatch.SetHex(hex)
		}
	}))

	return container.NewHBox(
		tb,
		widget.NewLabelWithData(w.PickedColor),
		swatch,
		layout.NewSpacer(),
	)
}
