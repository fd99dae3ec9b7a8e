package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/rally/config"
	"github.com/automoto/rally/fonts"
	"github.com/automoto/rally/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision body and prints the ball state.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}
	match := GetMatch(e)
	if match == nil {
		return
	}
	v := arenaView(screen, match.Snapshot)

	for _, obj := range match.Sim.Arena().Objects() {
		x, y := v.point(float32(obj.X), float32(obj.Y))
		w, h := float32(obj.W)*v.scale, float32(obj.H)*v.scale
		vector.StrokeRect(screen, x, y, w, h, 1, colliderColor(obj.HasTags), false)
	}

	bx, by := match.Sim.Ball().Position()
	vx, vy := match.Sim.Ball().Velocity()
	line := fmt.Sprintf("TPS %.0f  FPS %.0f  ball (%.1f, %.1f) v (%.2f, %.2f)",
		ebiten.ActualTPS(), ebiten.ActualFPS(), bx, by, vx, vy)
	drawScaledCentered(screen, line, fonts.Small.Get(), float32(screen.Bounds().Dx())/2,
		float32(screen.Bounds().Dy())-16, 1, cfg.BrightGreen)
}

// colliderColor picks the outline color from a body's tags.
func colliderColor(hasTags func(...string) bool) color.RGBA {
	switch {
	case hasTags(sim.TagBall):
		return cfg.Yellow
	case hasTags(sim.TagPlayer):
		return cfg.LightBlue
	case hasTags(sim.TagOpponent):
		return cfg.LightRed
	}
	return color.RGBA{0, 255, 255, 255} // Cyan default
}
