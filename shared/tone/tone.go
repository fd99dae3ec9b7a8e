// Package tone synthesizes the short sine beeps used as sound effects. Both
// the desktop and terminal shells render from the same Spec.
package tone

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// amplitude is the peak level of a tone at Volume 1.
const amplitude = 0.5

// Spec describes a single beep.
type Spec struct {
	Frequency float64 // Hz
	Duration  time.Duration
	Volume    float64       // 0.0 - 1.0
	Fade      time.Duration // Linear attack and release
}

// New returns a streamer that plays spec once at the given rate.
func New(spec Spec, rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, spec.Frequency)
	if err != nil {
		return nil, fmt.Errorf("sine tone %.0f Hz: %w", spec.Frequency, err)
	}

	total := rate.N(spec.Duration)
	shaped := &envelope{
		streamer: beep.Take(total, sine),
		total:    total,
		ramp:     min(rate.N(spec.Fade), total/2),
	}
	return &effects.Gain{Streamer: shaped, Gain: amplitude*spec.Volume - 1}, nil
}

// envelope ramps the level in and out to avoid clicks.
type envelope struct {
	streamer beep.Streamer
	position int
	total    int
	ramp     int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.ramp > 0 {
			if e.position < e.ramp {
				vol = float64(e.position) / float64(e.ramp)
			} else if remaining := e.total - e.position; remaining < e.ramp {
				vol = float64(remaining) / float64(e.ramp)
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// PCM16 drains s into signed 16-bit little-endian stereo frames, the layout
// ebiten's audio players expect.
func PCM16(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, 4)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame...)
		}
		if !ok || n == 0 {
			return out
		}
	}
}

// Render synthesizes spec straight to PCM16.
func Render(spec Spec, sampleRate int) ([]byte, error) {
	s, err := New(spec, beep.SampleRate(sampleRate))
	if err != nil {
		return nil, err
	}
	return PCM16(s), nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
