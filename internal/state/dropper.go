package state

import (
	"log"
	"math"
	"sync"

	"fyne.io/fyne/v2"

	"ColorDropper/internal/hexcolor"
)

// Dropper is the eyedropper state machine. It is idle until Activate, samples
// on every Move while picking, and returns to idle when Click commits.
type Dropper struct {
	mu      sync.RWMutex
	sampler Sampler
	mode    Mode
	cursor  fyne.Position
	current string
	picked  string
	picks   uint64

	// OnPicked runs after each commit, outside the lock.
	OnPicked func(Selection)
}

// NewDropper returns an idle dropper reading from s. An invalid initial
// color falls back to white.
func NewDropper(s Sampler, initial string) *Dropper {
	if !hexcolor.Valid(initial) {
		initial = hexcolor.White
	}
	return &Dropper{
		sampler: s,
		current: initial,
		picked:  initial,
	}
}

// Activate enters picking mode. Calling it while already picking changes nothing.
func (d *Dropper) Activate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mode == ModePicking {
		return
	}
	d.mode = ModePicking
	log.Println("[DROPPER] Picking started")
}

// Move samples the pixel under pos. origin is the surface's top-left corner
// in the same viewport coordinates. It reports false while idle.
func (d *Dropper) Move(pos, origin fyne.Position) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mode != ModePicking {
		return false
	}
	d.cursor = pos

	x := int(math.Floor(float64(pos.X - origin.X)))
	y := int(math.Floor(float64(pos.Y - origin.Y)))
	px := d.sampler.Sample(x, y)
	d.current = hexcolor.FromColor(px)
	return true
}

// Click commits the live color and returns to idle. It reports false, and
// leaves the picked color alone, while idle.
func (d *Dropper) Click() (Selection, bool) {
	d.mu.Lock()
	if d.mode != ModePicking {
		d.mu.Unlock()
		return Selection{}, false
	}
	d.picked = d.current
	d.mode = ModeIdle
	d.picks++
	sel := newSelection(d.picked, d.picks)
	sel.At = d.cursor
	cb := d.OnPicked
	d.mu.Unlock()

	log.Printf("[DROPPER] Picked %s (#%d)", sel.Hex, sel.Seq)
	if cb != nil {
		cb(sel)
	}
	return sel, true
}

func (d *Dropper) Mode() Mode {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.mode
}

func (d *Dropper) Picking() bool {
	return d.Mode() == ModePicking
}

// Cursor is the viewport position of the last sample. Stale while idle.
func (d *Dropper) Cursor() fyne.Position {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cursor
}

// Current is the live sampled color. Stale while idle.
func (d *Dropper) Current() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.current
}

// Picked is the last committed color.
func (d *Dropper) Picked() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.picked
}
