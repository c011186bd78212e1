package ui

import (
	"image/color"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"ColorDropper/internal/config"
	"ColorDropper/internal/hexcolor"
	"ColorDropper/internal/state"
	"ColorDropper/internal/surface"
)

// Eyedropper shows the painted surface and, while picking, a ring following
// the pointer that previews the color beneath it.
type Eyedropper struct {
	widget.BaseWidget
	dropper *state.Dropper
	surface *surface.Surface
	overlay config.OverlayConfig

	mu       sync.RWMutex
	local    fyne.Position // cursor relative to the widget
	renderer *eyedropperRenderer

	// PickedColor mirrors the last committed hex color for the header.
	PickedColor binding.String
}

var _ fyne.Widget = (*Eyedropper)(nil)
var _ fyne.Tappable = (*Eyedropper)(nil)
var _ desktop.Hoverable = (*Eyedropper)(nil)
var _ desktop.Cursorable = (*Eyedropper)(nil)

func NewEyedropper(d *state.Dropper, s *surface.Surface, overlay config.OverlayConfig) *Eyedropper {
	w := &Eyedropper{
		dropper:     d,
		surface:     s,
		overlay:     overlay,
		PickedColor: binding.NewString(),
	}
	_ = w.PickedColor.Set(d.Picked())
	w.ExtendBaseWidget(w)
	return w
}

// Activate switches the widget into picking mode.
func (w *Eyedropper) Activate() {
	w.dropper.Activate()
	w.refreshOverlay()
}

// LoadImage paints the surface from path in the background and redraws once
// done. done, if set, runs on the UI goroutine after the redraw.
func (w *Eyedropper) LoadImage(path string, done func(error)) {
	w.surface.LoadAsync(path, func(err error) {
		if err == nil {
			log.Printf("[SURFACE] Painted %s", path)
		}
		fyne.Do(func() {
			w.Refresh()
			if done != nil {
				done(err)
			}
		})
	})
}

func (w *Eyedropper) MouseIn(e *desktop.MouseEvent) {
	w.MouseMoved(e)
}

func (w *Eyedropper) MouseMoved(e *desktop.MouseEvent) {
	origin := e.AbsolutePosition.Subtract(e.Position)
	if !w.dropper.Move(e.AbsolutePosition, origin) {
		return
	}
	w.mu.Lock()
	w.local = e.Position
	w.mu.Unlock()
	w.refreshOverlay()
}

func (w *Eyedropper) MouseOut() {}

func (w *Eyedropper) Tapped(_ *fyne.PointEvent) {
	sel, ok := w.dropper.Click()
	if !ok {
		return
	}
	_ = w.PickedColor.Set(sel.Hex)
	w.refreshOverlay()
}

func (w *Eyedropper) Cursor() desktop.Cursor {
	if w.dropper.Picking() {
		return desktop.CrosshairCursor
	}
	return desktop.DefaultCursor
}

// refreshOverlay redraws the ring and label only. The surface raster is
// regenerated by Refresh, which only LoadImage needs.
func (w *Eyedropper) refreshOverlay() {
	w.mu.RLock()
	r := w.renderer
	w.mu.RUnlock()
	if r == nil {
		return
	}
	r.updateOverlay()
	r.ring.Refresh()
	r.label.Refresh()
}

func (w *Eyedropper) cursorLocal() fyne.Position {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.local
}

func (w *Eyedropper) CreateRenderer() fyne.WidgetRenderer {
	r := &eyedropperRenderer{w: w}
	r.raster = canvas.NewRasterWithPixels(r.pixel)
	r.raster.ScaleMode = canvas.ImageScalePixels
	r.ring = canvas.NewCircle(color.Transparent)
	r.ring.StrokeWidth = w.overlay.StrokeWidth
	r.label = canvas.NewText("", color.Black)
	r.label.Alignment = fyne.TextAlignCenter
	r.label.TextSize = w.overlay.TextSize
	r.updateOverlay()
	w.mu.Lock()
	w.renderer = r
	w.mu.Unlock()
	return r
}

type eyedropperRenderer struct {
	w      *Eyedropper
	raster *canvas.Raster
	ring   *canvas.Circle
	label  *canvas.Text
}

// pixel maps raster pixels, which may be denser than surface pixels on
// scaled displays, back onto the surface.
func (r *eyedropperRenderer) pixel(x, y, width, height int) color.Color {
	b := r.w.surface.Bounds()
	if width <= 0 || height <= 0 {
		return color.Transparent
	}
	return r.w.surface.Sample(x*b.Dx()/width, y*b.Dy()/height)
}

func (r *eyedropperRenderer) surfaceSize() fyne.Size {
	b := r.w.surface.Bounds()
	return fyne.NewSize(float32(b.Dx()), float32(b.Dy()))
}

// overlayBox is the square the ring and its stroke fit in.
func (r *eyedropperRenderer) overlayBox() float32 {
	return 2*r.w.overlay.Radius + r.w.overlay.StrokeWidth
}

func (r *eyedropperRenderer) updateOverlay() {
	picking := r.w.dropper.Picking()
	r.ring.Hidden = !picking
	r.label.Hidden = !picking
	if !picking {
		return
	}

	hex := r.w.dropper.Current()
	r.ring.FillColor = hexcolor.WithAlpha(hexcolor.White, r.w.overlay.Opacity)
	r.ring.StrokeColor = hexcolor.WithAlpha(hex, r.w.overlay.Opacity)
	r.label.Text = hex

	c := r.w.cursorLocal()
	rad := r.w.overlay.Radius
	r.ring.Resize(fyne.NewSize(2*rad, 2*rad))
	r.ring.Move(fyne.NewPos(c.X-rad, c.Y-rad))

	box := r.overlayBox()
	th := fyne.MeasureText(hex, r.label.TextSize, r.label.TextStyle).Height
	r.label.Resize(fyne.NewSize(box, th))
	r.label.Move(fyne.NewPos(c.X-box/2, c.Y-box/2+box*0.7-th/2))
}

func (r *eyedropperRenderer) Layout(_ fyne.Size) {
	r.raster.Move(fyne.NewPos(0, 0))
	r.raster.Resize(r.surfaceSize())
	r.updateOverlay()
}

func (r *eyedropperRenderer) MinSize() fyne.Size {
	return r.surfaceSize()
}

func (r *eyedropperRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster, r.ring, r.label}
}

func (r *eyedropperRenderer) Refresh() {
	r.updateOverlay()
	r.raster.Refresh()
	r.ring.Refresh()
	r.label.Refresh()
}

func (r *eyedropperRenderer) Destroy() {}
