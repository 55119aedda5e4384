package input

import "image"

// Frame is one scripted loop iteration.
type Frame struct {
	Event  Event
	Sample Sample
}

// Script replays frames in order. Each Sample call advances to the next
// frame; once exhausted it keeps returning the last sample with no events.
type Script struct {
	frames []Frame
	next   int
}

func NewScript(frames ...Frame) *Script {
	return &Script{frames: frames}
}

func (s *Script) Poll() Event {
	if s.next >= len(s.frames) {
		return Event{}
	}
	return s.frames[s.next].Event
}

func (s *Script) Sample() Sample {
	if len(s.frames) == 0 {
		return Sample{}
	}
	if s.next >= len(s.frames) {
		return s.frames[len(s.frames)-1].Sample
	}
	smp := s.frames[s.next].Sample
	s.next++
	return smp
}

// Remaining is the number of frames not yet consumed.
func (s *Script) Remaining() int {
	return len(s.frames) - s.next
}

// Click is a press and release at p, one frame each.
func Click(p image.Point) []Frame {
	return []Frame{
		{Event: Event{Kind: Press, Pos: p}, Sample: Sample{Pos: p, LeftHeld: true}},
		{Sample: Sample{Pos: p}},
	}
}

// Drag holds the button while moving from a to b in steps of step pixels,
// ending exactly on b. The first frame carries the Press.
func Drag(a, b image.Point, step int) []Frame {
	if step <= 0 {
		step = 1
	}
	pts := []image.Point{a}
	d := b.Sub(a)
	n := max(abs(d.X), abs(d.Y)) / step
	for i := 1; i < n; i++ {
		pts = append(pts, a.Add(d.Mul(i).Div(n)))
	}
	if b != a {
		pts = append(pts, b)
	}

	frames := make([]Frame, 0, len(pts)+1)
	for i, p := range pts {
		f := Frame{Sample: Sample{Pos: p, LeftHeld: true}}
		if i == 0 {
			f.Event = Event{Kind: Press, Pos: p}
		}
		frames = append(frames, f)
	}
	return append(frames, Frame{Sample: Sample{Pos: b}})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
