package state

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"
)

type Mode int

const (
	ModeIdle Mode = iota
	ModePicking
)

func (m Mode) String() string {
	if m == ModePicking {
		return "picking"
	}
	return "idle"
}

// Sampler reads the pixel at surface-local integer coordinates.
type Sampler interface {
	Sample(x, y int) color.NRGBA
}

// Selection is one committed pick.
type Selection struct {
	ID   uuid.UUID
	Seq  uint64
	Hex  string
	At   fyne.Position // viewport position of the last sample
	Time time.Time
}
