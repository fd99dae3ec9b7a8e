package systems

import (
	"fmt"
	"os"

	"github.com/automoto/rally/components"
	cfg "github.com/automoto/rally/config"
	"github.com/automoto/rally/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability.
// createMatchScene receives the chosen arena name.
func NewUpdateMenu(sceneChanger SceneChanger, arenas []string, createMatchScene func(arena string) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e, arenas)
		input := getOrCreateInput(e)
		settings := GetOrCreateSettings(e)

		numOptions := len(menu.VisibleOptions)
		if numOptions == 0 {
			return
		}

		// Navigate menu with wrap-around
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)

			switch menu.VisibleOptions[menu.SelectedIndex] {
			case components.MainMenuPlay:
				sceneChanger.ChangeScene(createMatchScene(settings.Arena))
			case components.MainMenuArena:
				settings.Arena = nextArena(menu.Arenas, settings.Arena)
				SaveCurrentSettings(settings)
			case components.MainMenuSound:
				settings.SFXVolume = cfg.NextVolumeStep(settings.SFXVolume)
				SetSFXVolume(settings.SFXVolume)
				SaveCurrentSettings(settings)
			case components.MainMenuExit:
				os.Exit(0)
			}
		}

		if GetAction(input, cfg.ActionMute).JustPressed {
			settings.Muted = ToggleMute()
			SaveCurrentSettings(settings)
		}

		// Allow back/escape to exit
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// nextArena cycles through arenas, starting over from the first one when
// current is unknown.
func nextArena(arenas []string, current string) string {
	if len(arenas) == 0 {
		return current
	}
	for i, name := range arenas {
		if name == current {
			return arenas[(i+1)%len(arenas)]
		}
	}
	return arenas[0]
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e, nil)
	settings := GetOrCreateSettings(e)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, width, height, cfg.Menu.BackgroundColor, false)

	drawScaledCentered(screen, "RALLY", fonts.Title.Get(), width/2, float32(cfg.Menu.TitleY), 1, cfg.Menu.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, option := range menu.VisibleOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		label := getOptionLabel(option, settings)
		drawScaledCentered(screen, label, menuFont, width/2, float32(y+cfg.Menu.MenuItemHeight), 1, textColor)
	}

	input := getOrCreateInput(e)
	drawScaledCentered(screen, getMenuHint(input.LastInputMethod), fonts.Small.Get(), width/2, height-12, 1, cfg.Menu.TextColorNormal)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select   M: Mute"
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption, settings *components.SettingsData) string {
	switch option {
	case components.MainMenuPlay:
		return "Play"
	case components.MainMenuArena:
		return fmt.Sprintf("Arena: %s", settings.Arena)
	case components.MainMenuSound:
		if settings.Muted {
			return "Sound: muted"
		}
		return fmt.Sprintf("Sound: %d%%", int(settings.SFXVolume*100+0.5))
	case components.MainMenuExit:
		return "Exit"
	default:
		return ""
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS, arenas []string) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		visibleOptions := []components.MainMenuOption{
			components.MainMenuPlay,
			components.MainMenuSound,
			components.MainMenuExit,
		}
		if len(arenas) > 1 {
			visibleOptions = []components.MainMenuOption{
				components.MainMenuPlay,
				components.MainMenuArena,
				components.MainMenuSound,
				components.MainMenuExit,
			}
		}

		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex:  0,
			VisibleOptions: visibleOptions,
			Arenas:         arenas,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
