package entity

import (
	"image"
	"image/color"
)

// Swatch geometry
const (
	SwatchSize         = 20
	SwatchOutlineWidth = 2
)

var SwatchOutline = color.RGBA{230, 230, 230, 0xff}

// Swatch is a fixed square of selectable paint color.
type Swatch struct {
	Pos          image.Point
	Size         image.Point
	Fill         color.RGBA
	Outline      color.RGBA
	OutlineWidth int
}

func NewSwatch(pos image.Point, fill color.RGBA) Swatch {
	return Swatch{
		Pos:          pos,
		Size:         image.Pt(SwatchSize, SwatchSize),
		Fill:         fill,
		Outline:      SwatchOutline,
		OutlineWidth: SwatchOutlineWidth,
	}
}

// Bounds is the clickable area. The outline sits outside it.
func (s Swatch) Bounds() image.Rectangle {
	return image.Rectangle{Min: s.Pos, Max: s.Pos.Add(s.Size)}
}

// OutlineBounds covers the fill plus the outline ring.
func (s Swatch) OutlineBounds() image.Rectangle {
	return s.Bounds().Inset(-s.OutlineWidth)
}

func (s Swatch) Contains(p image.Point) bool {
	return p.In(s.Bounds())
}
