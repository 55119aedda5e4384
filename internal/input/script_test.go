package input

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptReplaysInOrder(t *testing.T) {
	s := NewScript(Click(image.Pt(25, 15))...)
	require.Equal(t, 2, s.Remaining())

	assert.Equal(t, Event{Kind: Press, Pos: image.Pt(25, 15)}, s.Poll())
	assert.Equal(t, Sample{Pos: image.Pt(25, 15), LeftHeld: true}, s.Sample())

	assert.Equal(t, Event{}, s.Poll())
	assert.Equal(t, Sample{Pos: image.Pt(25, 15)}, s.Sample())
	assert.Zero(t, s.Remaining())

	// Exhausted: no events, pointer stays put.
	assert.Equal(t, None, s.Poll().Kind)
	assert.Equal(t, Sample{Pos: image.Pt(25, 15)}, s.Sample())
}

func TestScriptPollDoesNotAdvance(t *testing.T) {
	s := NewScript(Frame{Event: Event{Kind: Close}})
	assert.Equal(t, Close, s.Poll().Kind)
	assert.Equal(t, Close, s.Poll().Kind)
	assert.Equal(t, 1, s.Remaining())
}

func TestEmptyScript(t *testing.T) {
	s := NewScript()
	assert.Equal(t, Event{}, s.Poll())
	assert.Equal(t, Sample{}, s.Sample())
}

func TestDrag(t *testing.T) {
	frames := Drag(image.Pt(100, 100), image.Pt(200, 100), 10)
	require.Len(t, frames, 12)

	assert.Equal(t, Press, frames[0].Event.Kind)
	assert.Equal(t, image.Pt(100, 100), frames[0].Sample.Pos)
	for i, f := range frames[:11] {
		assert.True(t, f.Sample.LeftHeld, "frame %d", i)
		assert.Equal(t, image.Pt(100+10*i, 100), f.Sample.Pos)
		if i > 0 {
			assert.Equal(t, None, f.Event.Kind)
		}
	}
	last := frames[11]
	assert.False(t, last.Sample.LeftHeld)
	assert.Equal(t, image.Pt(200, 100), last.Sample.Pos)
}

func TestDragInPlace(t *testing.T) {
	frames := Drag(image.Pt(5, 5), image.Pt(5, 5), 0)
	require.Len(t, frames, 2)
	assert.True(t, frames[0].Sample.LeftHeld)
	assert.False(t, frames[1].Sample.LeftHeld)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "press", Press.String())
	assert.Equal(t, "close", Close.String())
	assert.Equal(t, "none", None.String())
}
