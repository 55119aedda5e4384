// Package render composites the paint session onto the ebiten screen.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"painter/internal/canvas"
	"painter/internal/entity"
	"painter/internal/painter"
)

// Compositor draws a frame. It keeps a GPU copy of the canvas and only
// uploads when the surface has new stamps.
type Compositor struct {
	Background *ebiten.Image
	Debug      bool

	canvasTex *ebiten.Image
	uploaded  uint64
	synced    bool
}

func NewCompositor(background *ebiten.Image) *Compositor {
	return &Compositor{Background: background}
}

// Draw paints, back to front: swatches, background, canvas, cursor.
func (c *Compositor) Draw(screen *ebiten.Image, app *painter.App) {
	// 1. Clear
	screen.Fill(painter.ClearColor)

	// 2. Palette
	for _, sw := range app.Palette.Swatches() {
		DrawSwatch(screen, sw)
	}

	// 3. Background
	if c.Background != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(painter.BackgroundOffset.X), float64(painter.BackgroundOffset.Y))
		screen.DrawImage(c.Background, op)
	}

	// 4. Canvas with all strokes so far
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(painter.CanvasOffset.X), float64(painter.CanvasOffset.Y))
	screen.DrawImage(c.canvasTexture(app.Canvas), op)

	// 5. Pointer
	DrawCursor(screen, app.Cursor)

	if c.Debug {
		ebitenutil.DebugPrintAt(screen, debugLine(app.Cursor),
			painter.CanvasOffset.X, painter.CanvasOffset.Y+painter.CanvasHeight+8)
	}
}

func (c *Compositor) canvasTexture(s *canvas.Surface) *ebiten.Image {
	if c.canvasTex == nil {
		b := s.Bounds()
		c.canvasTex = ebiten.NewImage(b.Dx(), b.Dy())
	}
	if !c.synced || c.uploaded != s.Generation() {
		c.canvasTex.WritePixels(s.Pix())
		c.uploaded = s.Generation()
		c.synced = true
	}
	return c.canvasTex
}

// DrawSwatch draws the outline ring first, then the fill on top of it.
func DrawSwatch(dst *ebiten.Image, sw entity.Swatch) {
	if sw.OutlineWidth > 0 {
		fillRect(dst, sw.OutlineBounds(), sw.Outline)
	}
	fillRect(dst, sw.Bounds(), sw.Fill)
}

// DrawCursor draws the brush indicator centered on the cursor position.
func DrawCursor(dst *ebiten.Image, cur *entity.Cursor) {
	vector.DrawFilledCircle(dst, float32(cur.Pos.X), float32(cur.Pos.Y), float32(cur.Radius), cur.Color, false)
}

func fillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

func debugLine(cur *entity.Cursor) string {
	return fmt.Sprintf("%d, %d  #%02x%02x%02x", cur.Pos.X, cur.Pos.Y, cur.Color.R, cur.Color.G, cur.Color.B)
}
