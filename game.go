package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"painter/internal/input"
	"painter/internal/painter"
	"painter/internal/render"
)

// Game adapts the paint session to ebiten's Update/Draw/Layout loop.
type Game struct {
	app   *painter.App
	input input.Source
	view  *render.Compositor
	blips *blipPlayer // nil when sound is off
}

func NewGame(app *painter.App, src input.Source, view *render.Compositor, blips *blipPlayer) *Game {
	return &Game{
		app:   app,
		input: src,
		view:  view,
		blips: blips,
	}
}

// Update: one paint frame (60 TPS)
func (g *Game) Update() error {
	res := g.app.Frame(g.input)
	if res.Selected >= 0 && g.blips != nil {
		g.blips.Play(res.Selected)
	}
	if res.Closed {
		return ebiten.Termination
	}
	return nil
}

// Draw: composite (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen, g.app)
}

// Layout: the window is fixed size, one pixel per logical pixel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return painter.WindowWidth, painter.WindowHeight
}
