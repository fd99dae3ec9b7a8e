package config

import (
	"time"

	"github.com/automoto/rally/shared/sim"
	"github.com/automoto/rally/shared/tone"
)

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Rally sounds
	SoundPaddle
	SoundWall
	SoundScore
	SoundMatchEnd
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// Tone is a synthesized sine beep.
type Tone struct {
	Frequency  float64 // Hz
	DurationMS int
	Volume     float64 // 0.0 - 1.0 before the SFX volume is applied
}

// Spec converts t into a synthesizer spec using the configured fade.
func (t Tone) Spec() tone.Spec {
	return tone.Spec{
		Frequency: t.Frequency,
		Duration:  time.Duration(t.DurationMS) * time.Millisecond,
		Volume:    t.Volume,
		Fade:      time.Duration(Audio.FadeMS) * time.Millisecond,
	}
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	FadeMS        int // Attack and release ramp applied to every tone
}

// SoundConfig maps sound IDs to tones
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
		FadeMS:        4,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundPaddle:       {Frequency: 800, DurationMS: 60, Volume: 0.15},
			SoundWall:         {Frequency: 400, DurationMS: 60, Volume: 0.12},
			SoundScore:        {Frequency: 1200, DurationMS: 200, Volume: 0.2},
			SoundMatchEnd:     {Frequency: 600, DurationMS: 400, Volume: 0.2},
			SoundMenuNavigate: {Frequency: 900, DurationMS: 30, Volume: 0.08},
			SoundMenuSelect:   {Frequency: 1100, DurationMS: 50, Volume: 0.1},
		},
	}
}

// SoundForEvent maps a simulation event to the sound it triggers.
func SoundForEvent(ev sim.Event) SoundID {
	switch ev.Kind {
	case sim.PaddleHit:
		return SoundPaddle
	case sim.WallBounce:
		return SoundWall
	case sim.Score:
		return SoundScore
	case sim.MatchEnd:
		return SoundMatchEnd
	}
	return SoundNone
}
