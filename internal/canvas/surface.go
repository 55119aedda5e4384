// Package canvas holds the offscreen paint surface. Strokes accumulate in
// a CPU raster and are never cleared once stamped.
package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

// Surface is a fixed-size RGBA raster. The zero value is not usable; call New.
type Surface struct {
	img *image.RGBA
	gen uint64

	ras  *vector.Rasterizer
	mask *image.Alpha
}

func New(width, height int, fill color.Color) *Surface {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)
	return &Surface{img: img}
}

func (s *Surface) Bounds() image.Rectangle { return s.img.Bounds() }

func (s *Surface) At(x, y int) color.RGBA { return s.img.RGBAAt(x, y) }

// Pix exposes the premultiplied RGBA bytes, row-major with no padding.
// Callers must not modify it.
func (s *Surface) Pix() []byte { return s.img.Pix }

// Snapshot returns an independent copy of the current pixels.
func (s *Surface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// Generation increases with every stamp that touched the surface.
func (s *Surface) Generation() uint64 { return s.gen }

// Stamp paints an opaque, hard-edged disc centered on center. Pixels whose
// centers fall inside the circle take c exactly; everything else is left
// alone, so repeating a stamp changes nothing. Parts outside the surface
// are clipped. It reports whether any pixel was in range.
func (s *Surface) Stamp(center image.Point, radius int, c color.Color) bool {
	if radius <= 0 {
		return false
	}
	box := image.Rect(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius)
	clip := box.Intersect(s.img.Bounds())
	if clip.Empty() {
		return false
	}

	// Over with a binary mask: inside takes c, outside keeps dst.
	mask := s.discMask(radius)
	draw.DrawMask(s.img, clip, image.NewUniform(opaque(c)), image.Point{}, mask, clip.Min.Sub(box.Min), draw.Over)
	s.gen++
	return true
}

// discMask rasterizes a disc of the given radius into a 2r x 2r binary mask.
func (s *Surface) discMask(radius int) *image.Alpha {
	d := 2 * radius
	if s.ras == nil {
		s.ras = vector.NewRasterizer(d, d)
	} else {
		s.ras.Reset(d, d)
	}
	if s.mask == nil || s.mask.Bounds().Dx() != d {
		s.mask = image.NewAlpha(image.Rect(0, 0, d, d))
	} else {
		clear(s.mask.Pix)
	}

	r := float32(radius)
	cx, cy, k := r, r, float32(kappa)*r
	s.ras.MoveTo(cx+r, cy)
	s.ras.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	s.ras.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	s.ras.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	s.ras.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	s.ras.ClosePath()
	s.ras.Draw(s.mask, s.mask.Bounds(), image.Opaque, image.Point{})

	// Hard edge: a pixel is either fully painted or untouched.
	for i, a := range s.mask.Pix {
		if a >= 0x80 {
			s.mask.Pix[i] = 0xff
		} else {
			s.mask.Pix[i] = 0
		}
	}
	return s.mask
}

func opaque(c color.Color) color.RGBA {
	r, g, b, _ := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 0xff}
}
