// Package painter owns the paint session state and advances it one frame
// at a time. It has no window dependency; rendering reads the state after
// each Frame.
package painter

import (
	"image"
	"log/slog"

	"painter/internal/canvas"
	"painter/internal/entity"
	"painter/internal/gamemode"
	"painter/internal/input"
)

// App is the single owner of all mutable session state.
type App struct {
	Palette *entity.Palette
	Cursor  *entity.Cursor
	Canvas  *canvas.Surface
	Mode    gamemode.Mode

	log *slog.Logger
}

// FrameResult summarizes what one Frame changed.
type FrameResult struct {
	Closed   bool
	Selected int // palette index picked this frame, -1 if none
	Stamped  bool
}

type Option func(*App)

func WithPalette(p *entity.Palette) Option {
	return func(a *App) { a.Palette = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.log = l }
}

func New(opts ...Option) *App {
	a := &App{
		Palette: entity.DefaultPalette(),
		Cursor:  entity.NewCursor(),
		Canvas:  canvas.New(CanvasWidth, CanvasHeight, CanvasColor),
		Mode:    gamemode.Running,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Frame runs one loop iteration: poll one event, sample the pointer,
// stamp if held, then park the cursor at the raw pointer for display.
// Selection happens before stamping, so a click that is also held paints
// with the new color in the same frame.
func (a *App) Frame(src input.Source) FrameResult {
	res := FrameResult{Selected: -1}
	if a.Mode.IsClosed() {
		res.Closed = true
		return res
	}

	// 1. Event
	switch ev := src.Poll(); ev.Kind {
	case input.Close:
		a.Mode.Close()
		res.Closed = true
		a.log.Info("close requested")
	case input.Press:
		if i, ok := a.Select(ev.Pos); ok {
			res.Selected = i
		}
	}

	// 2. Live sample
	smp := src.Sample()

	// 3. Paint
	if smp.LeftHeld {
		res.Stamped = a.Paint(smp.Pos)
	}

	// 4. Pointer indicator in window coordinates
	a.Cursor.MoveTo(smp.Pos, image.Point{})
	return res
}

// Select hit-tests the palette at a window point and adopts the color of
// the first swatch found.
func (a *App) Select(p image.Point) (int, bool) {
	sw, i, ok := a.Palette.HitTest(p)
	if !ok {
		return -1, false
	}
	a.Cursor.Select(sw)
	a.log.Debug("swatch selected", "index", i, "color", sw.Fill, "x", p.X, "y", p.Y)
	return i, true
}

// Paint stamps the cursor onto the canvas under the window point p.
func (a *App) Paint(p image.Point) bool {
	a.Cursor.MoveTo(p, CanvasOffset)
	return a.Canvas.Stamp(a.Cursor.Pos, a.Cursor.Radius, a.Cursor.Color)
}

// Run drives Frame until the source closes the session or limit frames
// have passed. limit <= 0 means no limit. It returns the frame count.
func (a *App) Run(src input.Source, limit int) int {
	n := 0
	for !a.Mode.IsClosed() && (limit <= 0 || n < limit) {
		a.Frame(src)
		n++
	}
	return n
}
