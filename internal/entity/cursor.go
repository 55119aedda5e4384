package entity

import (
	"image"
	"image/color"
)

const CursorRadius = 10

var CursorStartColor = color.RGBA{0x00, 0x00, 0x00, 0xff}

// Cursor is both the brush stamp and the on-screen pointer. Pos is
// reassigned per use, so its frame of reference depends on the caller.
type Cursor struct {
	Pos    image.Point
	Radius int
	Color  color.RGBA
}

func NewCursor() *Cursor {
	return &Cursor{
		Radius: CursorRadius,
		Color:  CursorStartColor,
	}
}

// Select takes the swatch's fill as the paint color.
func (c *Cursor) Select(s Swatch) {
	c.Color = s.Fill
}

// MoveTo places the cursor at p shifted into a frame whose origin is at offset.
func (c *Cursor) MoveTo(p, offset image.Point) {
	c.Pos = p.Sub(offset)
}
