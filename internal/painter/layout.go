package painter

import (
	"image"
	"image/color"
)

// Window and surface geometry, in window pixels.
const (
	WindowWidth  = 642
	WindowHeight = 640
	WindowTitle  = "Painter"

	CanvasWidth  = 600
	CanvasHeight = 500
)

var (
	CanvasOffset     = image.Pt(20, 60)
	BackgroundOffset = image.Pt(0, 40)

	ClearColor  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	CanvasColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
)
