package tone

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
		if len(out) > 1<<20 {
			t.Fatal("streamer never finished")
		}
	}
}

func TestToneLengthMatchesDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	s, err := New(Spec{Frequency: 800, Duration: 60 * time.Millisecond, Volume: 0.15}, rate)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	samples := drain(t, s)
	if expected := rate.N(60 * time.Millisecond); len(samples) != expected {
		t.Errorf("expected %d samples, got %d", expected, len(samples))
	}
}

func TestTonePeakFollowsVolume(t *testing.T) {
	tests := []struct {
		volume float64
	}{
		{0.1},
		{0.5},
		{1.0},
	}
	for _, tt := range tests {
		s, err := New(Spec{Frequency: 440, Duration: 50 * time.Millisecond, Volume: tt.volume}, 44100)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		peak := 0.0
		for _, smp := range drain(t, s) {
			peak = math.Max(peak, math.Abs(smp[0]))
			if smp[0] != smp[1] {
				t.Fatalf("expected identical channels, got %v", smp)
			}
		}
		limit := amplitude * tt.volume
		if peak > limit+1e-9 {
			t.Errorf("volume %v: expected peak <= %v, got %v", tt.volume, limit, peak)
		}
		if peak < limit*0.95 {
			t.Errorf("volume %v: expected peak near %v, got %v", tt.volume, limit, peak)
		}
	}
}

func TestFadeStartsAndEndsQuiet(t *testing.T) {
	s, err := New(Spec{Frequency: 1000, Duration: 100 * time.Millisecond, Volume: 1, Fade: 5 * time.Millisecond}, 44100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	samples := drain(t, s)
	if v := math.Abs(samples[0][0]); v != 0 {
		t.Errorf("expected silent first sample, got %v", v)
	}
	if v := math.Abs(samples[len(samples)-1][0]); v > 0.01 {
		t.Errorf("expected near-silent last sample, got %v", v)
	}
}

func TestRenderPCM16(t *testing.T) {
	spec := Spec{Frequency: 600, Duration: 20 * time.Millisecond, Volume: 1}
	data, err := Render(spec, 44100)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	frames := beep.SampleRate(44100).N(spec.Duration)
	if len(data) != frames*4 {
		t.Fatalf("expected %d bytes, got %d", frames*4, len(data))
	}
	limit := int16(math.Round(amplitude*math.MaxInt16)) + 1
	for i := 0; i < len(data); i += 2 {
		v := int16(binary.LittleEndian.Uint16(data[i:]))
		if v > limit || v < -limit {
			t.Fatalf("sample %d out of range: %d", i/2, v)
		}
	}
}

func TestRenderRejectsBadFrequency(t *testing.T) {
	if _, err := Render(Spec{Frequency: 30000, Duration: time.Millisecond, Volume: 1}, 44100); err == nil {
		t.Error("expected error for frequency above Nyquist")
	}
}
