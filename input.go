package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"painter/internal/input"
)

// ebitenInput reads the window and mouse through ebiten. It only reports a close
// if the window was set up with ebiten.SetWindowClosingHandled(true).
type ebitenInput struct{}

func (ebitenInput) Poll() input.Event {
	if ebiten.IsWindowBeingClosed() {
		return input.Event{Kind: input.Close}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return input.Event{Kind: input.Press, Pos: image.Pt(x, y)}
	}
	return input.Event{}
}

func (ebitenInput) Sample() input.Sample {
	x, y := ebiten.CursorPosition()
	return input.Sample{
		Pos:      image.Pt(x, y),
		LeftHeld: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}
