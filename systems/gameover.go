package systems

import (
	"image/color"

	"github.com/automoto/rally/components"
	cfg "github.com/automoto/rally/config"
	"github.com/automoto/rally/fonts"
	"github.com/automoto/rally/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGameOver fades the winner overlay in once the match is decided and
// drops it as soon as play resumes.
func UpdateGameOver(e *ecs.ECS) {
	match := GetMatch(e)
	if match == nil {
		return
	}
	gameOver := GetOrCreateGameOver(e)

	if match.Snapshot.Phase == sim.Playing {
		gameOver.Hide()
		return
	}
	gameOver.Show(cfg.GameOver.FadeSeconds)
	gameOver.Advance(frameSeconds())
}

// DrawGameOver renders the winner overlay on top of the table
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	match := GetMatch(e)
	if match == nil {
		return
	}
	gameOver := GetOrCreateGameOver(e)
	if !gameOver.Visible {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	alpha := gameOver.Alpha

	vector.FillRect(screen, 0, 0, width, height, fade(cfg.GameOver.OverlayColor, alpha), false)

	title, hint := gameOverText(match.Snapshot)
	drawScaledCentered(screen, title, fonts.Title.Get(), width/2, float32(cfg.GameOver.TitleY), 1,
		fade(cfg.GameOver.TitleColor, alpha))
	drawScaledCentered(screen, hint, fonts.Regular.Get(), width/2, float32(cfg.GameOver.HintY), 1,
		fade(cfg.GameOver.HintColor, alpha))
}

// gameOverText returns the overlay title and the hint under it.
func gameOverText(snap sim.Snapshot) (title, hint string) {
	title = cfg.GameOver.PlayerWins
	if snap.HasWinner && snap.Winner == sim.SideOpponent {
		title = cfg.GameOver.OpponentWins
	}
	hint = cfg.GameOver.RestartHint
	if snap.Phase == sim.AwaitingReplayChoice {
		hint = cfg.GameOver.ReplayHint
	}
	return title, hint
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
