// Package sound generates the short feedback tone played on color
// selection. Streams are 16-bit signed little-endian stereo PCM.
package sound

import (
	"io"
	"math"
	"time"
)

const (
	SampleRate    = 44100
	BlipLength    = 60 * time.Millisecond
	BlipVolume    = 0.2
	bytesPerFrame = 4
)

var notes = []float64{523.25, 659.25, 783.99} // C5 E5 G5

// PitchFor maps a palette index to a note, cycling for longer palettes.
func PitchFor(index int) float64 {
	if index < 0 {
		index = -index
	}
	return notes[index%len(notes)]
}

// Blip is a square wave that fades linearly to silence and then ends.
type Blip struct {
	freq  float64
	total int
	pos   int
}

func NewBlip(freq float64, d time.Duration) *Blip {
	return &Blip{
		freq:  freq,
		total: int(math.Round(d.Seconds() * SampleRate)),
	}
}

// Frames is the stream length in sample frames.
func (b *Blip) Frames() int { return b.total }

func (b *Blip) Read(buf []byte) (int, error) {
	if b.pos >= b.total {
		return 0, io.EOF
	}
	n := 0
	for ; n+bytesPerFrame <= len(buf) && b.pos < b.total; n += bytesPerFrame {
		v := int16(b.sample() * 32767)
		buf[n] = byte(v)
		buf[n+1] = byte(v >> 8)
		buf[n+2] = byte(v)
		buf[n+3] = byte(v >> 8)
		b.pos++
	}
	return n, nil
}

func (b *Blip) sample() float64 {
	env := BlipVolume * (1 - float64(b.pos)/float64(b.total))
	phase := int(2 * float64(b.pos) * b.freq / SampleRate)
	if phase%2 == 0 {
		return env
	}
	return -env
}
