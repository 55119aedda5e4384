package sound

import (
	"encoding/binary"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPitchFor(t *testing.T) {
	assert.Equal(t, notes[0], PitchFor(0))
	assert.Equal(t, notes[2], PitchFor(2))
	assert.Equal(t, notes[0], PitchFor(3))
	assert.Equal(t, notes[1], PitchFor(-1))
}

func TestBlipLength(t *testing.T) {
	b := NewBlip(440, 10*time.Millisecond)
	require.Equal(t, 441, b.Frames())

	data, err := io.ReadAll(b)
	require.NoError(t, err)
	assert.Len(t, data, 441*4)

	n, err := b.Read(make([]byte, 16))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestBlipStereoAndFade(t *testing.T) {
	b := NewBlip(440, 20*time.Millisecond)
	data, err := io.ReadAll(b)
	require.NoError(t, err)

	peak := func(frame int) int16 {
		l := int16(binary.LittleEndian.Uint16(data[frame*4:]))
		r := int16(binary.LittleEndian.Uint16(data[frame*4+2:]))
		require.Equal(t, l, r, "frame %d channels differ", frame)
		if l < 0 {
			return -l
		}
		return l
	}

	first := peak(0)
	assert.InDelta(t, BlipVolume*32767, float64(first), 1)
	assert.Less(t, peak(b.Frames()-1), first/10)
	assert.LessOrEqual(t, peak(b.Frames()/2), first)
}

func TestBlipPartialReads(t *testing.T) {
	b := NewBlip(440, 10*time.Millisecond)
	buf := make([]byte, 7)
	n, err := b.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n, "only whole frames are written")
}
