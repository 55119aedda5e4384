package entity

import (
	"image"
	"image/color"
)

// Default palette layout
var (
	PaletteOrigin  = image.Pt(20, 10)
	PaletteSpacing = 20

	DefaultColors = []color.RGBA{
		{0xff, 0xff, 0xff, 0xff}, // white
		{0x00, 0x00, 0x00, 0xff}, // black
		{0xff, 0x00, 0x00, 0xff}, // red
	}
)

// Palette is the ordered set of swatches. Order is creation order and
// decides which swatch wins when bounds overlap.
type Palette struct {
	swatches []Swatch
}

// NewPalette tiles one swatch per color horizontally from origin.
func NewPalette(colors []color.RGBA, origin image.Point, spacing int) *Palette {
	p := &Palette{swatches: make([]Swatch, 0, len(colors))}
	x := origin.X
	for _, c := range colors {
		p.swatches = append(p.swatches, NewSwatch(image.Pt(x, origin.Y), c))
		x += spacing
	}
	return p
}

// NewPaletteOf keeps the given swatches as they are, in order.
func NewPaletteOf(swatches ...Swatch) *Palette {
	return &Palette{swatches: append([]Swatch(nil), swatches...)}
}

func DefaultPalette() *Palette {
	return NewPalette(DefaultColors, PaletteOrigin, PaletteSpacing)
}

func (p *Palette) Len() int { return len(p.swatches) }

func (p *Palette) At(i int) Swatch { return p.swatches[i] }

// Swatches returns a copy in creation order.
func (p *Palette) Swatches() []Swatch {
	return append([]Swatch(nil), p.swatches...)
}

// HitTest returns the first swatch containing pt. ok is false when none does.
func (p *Palette) HitTest(pt image.Point) (s Swatch, index int, ok bool) {
	for i, sw := range p.swatches {
		if sw.Contains(pt) {
			return sw, i, true
		}
	}
	return Swatch{}, -1, false
}
