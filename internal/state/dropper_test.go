package state

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/require"

	"ColorDropper/internal/hexcolor"
)

// gridSampler returns a color derived from the coordinates, or transparent
// black outside w x h.
type gridSampler struct {
	w, h  int
	calls []fyne.Position
}

func (g *gridSampler) Sample(x, y int) color.NRGBA {
	g.calls = append(g.calls, fyne.NewPos(float32(x), float32(y)))
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return color.NRGBA{}
	}
	return color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x + y), A: 255}
}

func newTestDropper() (*Dropper, *gridSampler) {
	g := &gridSampler{w: 800, h: 600}
	return NewDropper(g, hexcolor.White), g
}

func TestInitialState(t *testing.T) {
	d, _ := newTestDropper()
	require.Equal(t, ModeIdle, d.Mode())
	require.False(t, d.Picking())
	require.Equal(t, "#FFFFFF", d.Picked())
	require.Equal(t, "#FFFFFF", d.Current())
}

func TestNewDropperInvalidInitial(t *testing.T) {
	d := NewDropper(&gridSampler{}, "red")
	require.Equal(t, hexcolor.White, d.Picked())
}

func TestActivateIsIdempotent(t *testing.T) {
	d, _ := newTestDropper()
	d.Activate()
	require.True(t, d.Picking())
	require.True(t, d.Move(fyne.NewPos(5, 5), fyne.NewPos(0, 0)))
	before := d.Current()

	d.Activate()
	d.Activate()
	require.Equal(t, ModePicking, d.Mode())
	require.Equal(t, before, d.Current())
	require.Equal(t, fyne.NewPos(5, 5), d.Cursor())
}

func TestMoveWhileIdleIsNoop(t *testing.T) {
	d, g := newTestDropper()
	require.False(t, d.Move(fyne.NewPos(10, 20), fyne.NewPos(0, 0)))
	require.Empty(t, g.calls)
	require.Equal(t, "#FFFFFF", d.Current())
	require.Equal(t, fyne.Position{}, d.Cursor())
}

func TestMoveTranslatesByOrigin(t *testing.T) {
	d, g := newTestDropper()
	d.Activate()
	require.True(t, d.Move(fyne.NewPos(110.7, 220.2), fyne.NewPos(100, 200)))

	require.Equal(t, []fyne.Position{fyne.NewPos(10, 20)}, g.calls)
	require.Equal(t, fyne.NewPos(110.7, 220.2), d.Cursor())
	require.Equal(t, "#0a141e", d.Current())
}

func TestMoveOutsideSurface(t *testing.T) {
	d, g := newTestDropper()
	d.Activate()
	require.True(t, d.Move(fyne.NewPos(99.5, 300), fyne.NewPos(100, 200)))
	require.Equal(t, fyne.NewPos(-1, 100), g.calls[0])
	require.Equal(t, "#000000", d.Current())
}

func TestClickWhileIdleKeepsPicked(t *testing.T) {
	d, _ := newTestDropper()
	fired := false
	d.OnPicked = func(Selection) { fired = true }

	_, ok := d.Click()
	require.False(t, ok)
	require.False(t, fired)
	require.Equal(t, "#FFFFFF", d.Picked())
	require.Equal(t, ModeIdle, d.Mode())
}

func TestClickCommitsLastSample(t *testing.T) {
	d, _ := newTestDropper()
	var got []Selection
	d.OnPicked = func(s Selection) { got = append(got, s) }

	d.Activate()
	d.Move(fyne.NewPos(1, 1), fyne.NewPos(0, 0))
	d.Move(fyne.NewPos(255, 0), fyne.NewPos(0, 0))
	sel, ok := d.Click()

	require.True(t, ok)
	require.Equal(t, "#ff00ff", sel.Hex)
	require.Equal(t, fyne.NewPos(255, 0), sel.At)
	require.Equal(t, "#ff00ff", d.Picked())
	require.Equal(t, ModeIdle, d.Mode())
	require.Len(t, got, 1)
	require.Equal(t, sel.ID, got[0].ID)
}

func TestClickWithoutMoveRecommitsPicked(t *testing.T) {
	d, _ := newTestDropper()
	d.Activate()
	sel, ok := d.Click()
	require.True(t, ok)
	require.Equal(t, "#FFFFFF", sel.Hex)
}

func TestMovesAfterCommitAreIgnored(t *testing.T) {
	d, g := newTestDropper()
	d.Activate()
	d.Move(fyne.NewPos(10, 20), fyne.NewPos(0, 0))
	d.Click()
	calls := len(g.calls)

	require.False(t, d.Move(fyne.NewPos(200, 100), fyne.NewPos(0, 0)))
	require.Len(t, g.calls, calls)
	require.Equal(t, "#0a141e", d.Picked())
	require.Equal(t, "#0a141e", d.Current())
	require.Equal(t, fyne.NewPos(10, 20), d.Cursor())
}

func TestSelectionsAreDistinct(t *testing.T) {
	d, _ := newTestDropper()
	d.Activate()
	first, _ := d.Click()
	d.Activate()
	second, _ := d.Click()

	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, uint64(1), first.Seq)
	require.Equal(t, uint64(2), second.Seq)

	other, _ := newTestDropper()
	other.Activate()
	sel, _ := other.Click()
	require.Equal(t, uint64(1), sel.Seq)
}

type fixedSampler color.NRGBA

func (f fixedSampler) Sample(int, int) color.NRGBA { return color.NRGBA(f) }

func TestEndToEnd(t *testing.T) {
	d := NewDropper(fixedSampler{R: 10, G: 20, B: 30, A: 255}, hexcolor.White)
	require.Equal(t, ModeIdle, d.Mode())
	require.Equal(t, "#FFFFFF", d.Picked())

	d.Activate()
	require.Equal(t, ModePicking, d.Mode())

	d.Move(fyne.NewPos(400, 300), fyne.NewPos(0, 40))
	require.Equal(t, "#0a141e", d.Current())

	d.Click()
	require.Equal(t, "#0a141e", d.Picked())
	require.Equal(t, ModeIdle, d.Mode())
}

func TestModeString(t *testing.T) {
	require.Equal(t, "idle", ModeIdle.String())
	require.Equal(t, "picking", ModePicking.String())
}
