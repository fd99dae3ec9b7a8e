package assets

import (
	"bytes"
	"fmt"

	"github.com/automoto/rally/config"
	"github.com/automoto/rally/shared/tone"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches the sound effect tones
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte // PCM bytes per sound
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a tone and caches it without creating a player.
// Call this at startup to avoid synthesis lag on first play.
func (l *AudioLoader) PreloadSFX(id config.SoundID) error {
	_, err := l.pcm(id)
	return err
}

// LoadSFX returns a new player for the sound each time.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(data))
}

func (l *AudioLoader) pcm(id config.SoundID) ([]byte, error) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, nil
	}

	t, ok := config.Sound.Tones[id]
	if !ok {
		return nil, fmt.Errorf("no tone for sound %d", id)
	}
	data, err := tone.Render(t.Spec(), l.context.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize sound %d: %w", id, err)
	}

	l.sfxCache[id] = data
	return data, nil
}
