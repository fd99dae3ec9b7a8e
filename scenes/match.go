package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/rally/assets"
	cfg "github.com/automoto/rally/config"
	"github.com/automoto/rally/shared/arena"
	"github.com/automoto/rally/shared/sim"
	"github.com/automoto/rally/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MatchScene plays one table against the scripted opponent until the player
// leaves for the menu.
type MatchScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	arena        string
	once         sync.Once
}

// NewMatchScene creates a match on the named arena
func NewMatchScene(sc SceneChanger, arena string) *MatchScene {
	return &MatchScene{sceneChanger: sc, arena: arena}
}

func (ms *MatchScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MatchScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MatchScene) configure() {
	// Synthesize tones up front to avoid lag on the first hit
	systems.PreloadAllSFX()

	ms.ecs = ecs.NewECS(donburi.NewWorld())

	var layout *arena.Layout
	if l, err := assets.LoadArena(ms.arena); err != nil {
		log.Printf("Warning: Could not load arena %s, using defaults: %v", ms.arena, err)
	} else {
		layout = l
	}
	if _, err := systems.SpawnMatch(ms.ecs, layout); err != nil {
		log.Printf("Warning: %v, using defaults", err)
		if _, err := systems.SpawnMatch(ms.ecs, nil); err != nil {
			log.Fatalf("Failed to start match: %v", err)
		}
	}

	createMenuScene := func() interface{} {
		return NewMenuScene(ms.sceneChanger)
	}
	prompt := systems.NewReplayPrompt(ms.ecs, sim.ReplayFormats)

	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdatePause(ms.sceneChanger, createMenuScene))
	ms.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateMatch))
	ms.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateGameOver))
	ms.ecs.AddSystem(systems.WithPauseCheck(systems.NewUpdateReplayPrompt(prompt)))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ms.ecs.AddRenderer(cfg.Default, systems.DrawBodies)
	ms.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ms.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ms.ecs.AddRenderer(cfg.Overlay, systems.DrawGameOver)
	ms.ecs.AddRenderer(cfg.Overlay, systems.NewDrawReplayPrompt(prompt))
	ms.ecs.AddRenderer(cfg.Overlay, systems.DrawPause)
}
