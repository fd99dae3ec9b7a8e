package systems

import (
	"github.com/automoto/rally/components"
	cfg "github.com/automoto/rally/config"
	"github.com/automoto/rally/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdatePause creates the system that toggles the pause overlay and
// handles its menu. It should run AFTER UpdateInput but BEFORE the gameplay
// systems.
func NewUpdatePause(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		pause := GetOrCreatePause(e)
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionPause).JustPressed {
			pause.IsPaused = !pause.IsPaused
			pause.SelectedOption = components.PauseResume
			return
		}
		if !pause.IsPaused {
			return
		}

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.PauseMainMenu) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) + 1) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}

		if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
			return
		}
		PlaySFX(e, cfg.SoundMenuSelect)
		switch pause.SelectedOption {
		case components.PauseResume:
			pause.IsPaused = false
		case components.PauseRestart:
			pause.IsPaused = false
			if match := GetMatch(e); match != nil && match.Sim.ResetMatch() {
				match.Snapshot = match.Sim.Snapshot()
				match.LongestRally = 0
				syncBodies(e, match.Snapshot)
			}
		case components.PauseMainMenu:
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, width, height, cfg.Pause.OverlayColor, false)

	menuOptions := cfg.Pause.MenuOptions
	step := cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap
	startY := (float64(height) - float64(len(menuOptions))*step) / 2

	for i, option := range menuOptions {
		clr := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			clr = cfg.Pause.TextColorSelected
		}
		y := float32(startY + float64(i)*step)
		drawScaledCentered(screen, option, fonts.Bold.Get(), width/2, y, 1, clr)
	}

	hint := getPauseHint(getOrCreateInput(e).LastInputMethod)
	drawScaledCentered(screen, hint, fonts.Small.Get(), width/2, height-24, 1, cfg.Pause.TextColorNormal)
}

// getPauseHint returns the appropriate hint for pause menu
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select   PS: Resume"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select   Guide: Resume"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused:       false,
			SelectedOption: components.PauseResume,
		})
	}

	ent, _ := components.Pause.First(e.World)
	return components.Pause.Get(ent)
}
