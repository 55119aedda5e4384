// Package input separates queued window events from live device sampling.
// A frame polls at most one event, then samples the pointer.
package input

import "image"

type Kind int

const (
	None  Kind = iota
	Close      // window close requested
	Press      // left button went down
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Close:
		return "close"
	case Press:
		return "press"
	}
	return "unknown"
}

// Event is one queued occurrence. Pos is the pointer at the time of a Press.
type Event struct {
	Kind Kind
	Pos  image.Point
}

// Sample is the live pointer state for the current frame.
type Sample struct {
	Pos      image.Point
	LeftHeld bool
}

// Source feeds the paint loop. Poll must not block.
type Source interface {
	Poll() Event
	Sample() Sample
}
