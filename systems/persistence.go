package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/rally/components"
	cfg "github.com/automoto/rally/config"
	"github.com/automoto/rally/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk.
// Scores are never persisted.
type SavedSettings struct {
	SFXVolume  float64 `json:"sfxVolume"`
	Muted      bool    `json:"muted"`
	Fullscreen bool    `json:"fullscreen"`
	BestOf     int     `json:"bestOf"`
	Arena      string  `json:"arena"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// Settings picked up by the first scene
var globalSettings = defaultSettings()

func defaultSettings() components.SettingsData {
	return components.SettingsData{
		SFXVolume: cfg.Audio.DefaultSFXVol,
		BestOf:    cfg.Match.DefaultBestOf,
		Arena:     cfg.Arena.DefaultMap,
	}
}

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "rally",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	return decodeSettings(data)
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	if !sim.IsReplayFormat(settings.BestOf) {
		settings.BestOf = cfg.Match.DefaultBestOf
	}
	if settings.SFXVolume < 0 || settings.SFXVolume > 1 {
		settings.SFXVolume = cfg.Audio.DefaultSFXVol
	}
	if settings.Arena == "" {
		settings.Arena = cfg.Arena.DefaultMap
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

func toSaved(s *components.SettingsData) *SavedSettings {
	return &SavedSettings{
		SFXVolume:  s.SFXVolume,
		Muted:      s.Muted,
		Fullscreen: s.Fullscreen,
		BestOf:     s.BestOf,
		Arena:      s.Arena,
	}
}

// SaveCurrentSettings saves the current settings from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	globalSettings = *s
	_ = SaveSettings(toSaved(s))
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before scenes are created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	globalSettings = components.SettingsData{
		SFXVolume:  saved.SFXVolume,
		Muted:      saved.Muted,
		Fullscreen: saved.Fullscreen,
		BestOf:     saved.BestOf,
		Arena:      saved.Arena,
	}
	globalSFXVolume = saved.SFXVolume
	globalMuted = saved.Muted

	ebiten.SetFullscreen(saved.Fullscreen)
}

// GetOrCreateSettings returns the singleton Settings component seeded from the saved values
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, globalSettings)
	}
	return components.Settings.Get(entry)
}
