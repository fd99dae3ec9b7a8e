package systems

import (
	"testing"

	cfg "github.com/automoto/rally/config"
)

func TestDecodeSettings(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected SavedSettings
	}{
		{
			name:     "round values",
			data:     `{"sfxVolume":0.5,"muted":true,"fullscreen":true,"bestOf":7,"arena":"long"}`,
			expected: SavedSettings{SFXVolume: 0.5, Muted: true, Fullscreen: true, BestOf: 7, Arena: "long"},
		},
		{
			name:     "unknown format falls back",
			data:     `{"sfxVolume":0.25,"bestOf":4,"arena":"classic"}`,
			expected: SavedSettings{SFXVolume: 0.25, BestOf: cfg.Match.DefaultBestOf, Arena: "classic"},
		},
		{
			name:     "missing fields",
			data:     `{}`,
			expected: SavedSettings{SFXVolume: 0, BestOf: cfg.Match.DefaultBestOf, Arena: cfg.Arena.DefaultMap},
		},
		{
			name:     "volume out of range",
			data:     `{"sfxVolume":3,"bestOf":3}`,
			expected: SavedSettings{SFXVolume: cfg.Audio.DefaultSFXVol, BestOf: 3, Arena: cfg.Arena.DefaultMap},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeSettings([]byte(tt.data))
			if err != nil {
				t.Fatalf("decodeSettings: %v", err)
			}
			if *got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, *got)
			}
		})
	}
}

func TestDecodeSettingsRejectsGarbage(t *testing.T) {
	if _, err := decodeSettings([]byte("{")); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveWithoutPersistenceIsNoop(t *testing.T) {
	gdataManager = nil
	gdataInitialized = false
	if err := SaveSettings(&SavedSettings{BestOf: 3}); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	got, err := LoadSettings()
	if got != nil || err != nil {
		t.Errorf("expected nil settings, got %+v, %v", got, err)
	}
}
