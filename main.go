package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/rally/config"
	"github.com/automoto/rally/fonts"
	"github.com/automoto/rally/scenes"
	"github.com/automoto/rally/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(arena string) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewMatchScene(g, arena)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	skipMenu := flag.Bool("play", false, "Skip the title menu and start a match")
	arena := flag.String("arena", "", "Arena to play when skipping the menu")
	colliders := flag.Bool("colliders", false, "Outline collision boxes")
	flag.Parse()

	config.Debug.SkipMenu = *skipMenu
	config.Debug.ShowColliders = *colliders

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Rally")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	name := *arena
	if name == "" {
		name = config.Arena.DefaultMap
		if saved != nil {
			name = saved.Arena
		}
	}

	if err := ebiten.RunGame(NewGame(name)); err != nil {
		log.Fatal(err)
	}
}
