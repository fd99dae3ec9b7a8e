package tui

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/automoto/rally/config"
	"github.com/automoto/rally/shared/tone"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Sound mixes rally tones into a single speaker stream.
type Sound struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

func NewSound(volume float64) *Sound {
	return &Sound{
		rate:   beep.SampleRate(config.Audio.SampleRate),
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker. Tones played before it succeeds are dropped.
func (s *Sound) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play starts the tone for id.
func (s *Sound) Play(id config.SoundID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	streamer, ok := s.streamer(id)
	if !ok {
		return
	}

	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// streamer builds the tone for id at the current volume. It reports false
// for unknown ids and while muted or silent. Callers hold s.mu.
func (s *Sound) streamer(id config.SoundID) (beep.Streamer, bool) {
	t, ok := config.Sound.Tones[id]
	if !ok || s.muted || s.volume <= 0 {
		return nil, false
	}
	spec := t.Spec()
	spec.Volume *= s.volume

	streamer, err := tone.New(spec, s.rate)
	if err != nil {
		log.Printf("Warning: tone %d: %v", id, err)
		return nil, false
	}
	return streamer, true
}

// ToggleMute flips mute and returns the new state.
func (s *Sound) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = !s.muted
	return s.muted
}

func (s *Sound) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Pending reports how many tones are still on the mixer.
func (s *Sound) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return s.mixer.Len()
}

// Close silences everything still playing.
func (s *Sound) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}
