package config

// SettingsMenuConfig contains the adjustable settings offered in the title menu
type SettingsMenuConfig struct {
	VolumeSteps []float64
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}

// NextVolumeStep returns the step after v, wrapping back to silence.
func NextVolumeStep(v float64) float64 {
	steps := SettingsMenu.VolumeSteps
	for i, s := range steps {
		if v < s+0.001 && v > s-0.001 {
			return steps[(i+1)%len(steps)]
		}
	}
	return steps[len(steps)-1]
}
