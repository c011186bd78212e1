// Package hexcolor converts between sampled pixel colors and "#rrggbb" strings.
package hexcolor

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// White is the picked color before any selection has been made.
const White = "#FFFFFF"

// ErrInvalid is returned when a string is not a 6-digit hex color.
var ErrInvalid = errors.New("invalid hex color")

// FromRGB renders the three channels as "#rrggbb".
// The 1<<24 offset forces six digits; its leading "1" is dropped.
func FromRGB(r, g, b uint8) string {
	v := int64(1)<<24 + int64(r)<<16 + int64(g)<<8 + int64(b)
	return "#" + strconv.FormatInt(v, 16)[1:]
}

// FromColor converts any color to "#rrggbb", ignoring alpha.
func FromColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGB(n.R, n.G, n.B)
}

// Parse reads "#rrggbb" in either case into an opaque color.
func Parse(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' || !hexDigits(s[1:]) {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Valid reports whether s is a 6-digit hex color.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// WithAlpha parses s and applies opacity in [0,1]. Invalid input yields
// transparent black.
func WithAlpha(s string, opacity float64) color.NRGBA {
	c, err := Parse(s)
	if err != nil {
		return color.NRGBA{}
	}
	c.A = uint8(opacity*255 + 0.5)
	return c
}

func hexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
