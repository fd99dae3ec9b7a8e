package components

import "github.com/yohamta/donburi"

// SettingsData holds the player's persisted preferences
type SettingsData struct {
	SFXVolume  float64 // 0.0, 0.25, 0.50, 0.75, 1.0
	Muted      bool
	Fullscreen bool
	BestOf     int    // Last chosen replay format
	Arena      string // Last chosen layout
}

// Settings is the component type for player preferences
var Settings = donburi.NewComponentType[SettingsData]()
