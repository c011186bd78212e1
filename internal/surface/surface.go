// Package surface holds the fixed-size pixel buffer the eyedropper samples from.
package surface

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"sync"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Surface is a width x height NRGBA buffer. It starts transparent black and
// is painted by a single image load; every other access is a read.
type Surface struct {
	mu      sync.RWMutex
	buf     *image.NRGBA
	painted bool
}

func New(width, height int) *Surface {
	return &Surface{buf: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

func (s *Surface) Bounds() image.Rectangle {
	return s.buf.Bounds()
}

// Painted reports whether an image has been drawn into the surface.
func (s *Surface) Painted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.painted
}

// Paint stretches img over the whole surface.
func (s *Surface) Paint(img image.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draw.BiLinear.Scale(s.buf, s.buf.Bounds(), img, img.Bounds(), draw.Src, nil)
	s.painted = true
}

// Sample reads one pixel. Coordinates outside the surface yield transparent black.
func (s *Surface) Sample(x, y int) color.NRGBA {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !image.Pt(x, y).In(s.buf.Rect) {
		return color.NRGBA{}
	}
	return s.buf.NRGBAAt(x, y)
}

// Load opens and decodes the raster at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	log.Printf("[SURFACE] Decoded %s image %s (%dx%d)", format, path, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

// LoadAsync loads path on a new goroutine and paints it once decoded.
// done, if set, runs on that goroutine afterwards with the load error.
// A failed load leaves the surface blank.
func (s *Surface) LoadAsync(path string, done func(error)) {
	go func() {
		img, err := Load(path)
		if err != nil {
			log.Printf("[SURFACE] Image load failed, surface stays blank: %v", err)
		} else {
			s.Paint(img)
		}
		if done != nil {
			done(err)
		}
	}()
}
