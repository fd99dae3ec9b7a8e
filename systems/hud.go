package systems

import (
	"fmt"
	"image/color"
	"strconv"

	cfg "github.com/automoto/rally/config"
	"github.com/automoto/rally/fonts"
	"github.com/automoto/rally/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var hudDrawOp = &ebiten.DrawImageOptions{}

// DrawHUD renders both scores, the rally counter and the arena title.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	match := GetMatch(e)
	if match == nil {
		return
	}
	snap := match.Snapshot
	v := arenaView(screen, snap)
	scoreFont := fonts.Score.Get()

	quarter := float32(snap.ArenaWidth) / 4
	px, y := v.point(quarter, float32(cfg.HUD.ScoreY))
	ox, _ := v.point(3*quarter, float32(cfg.HUD.ScoreY))
	drawScaledCentered(screen, strconv.Itoa(snap.PlayerScore), scoreFont, px, y, match.ScoreScale[sim.SidePlayer], cfg.HUD.ScoreColor)
	drawScaledCentered(screen, strconv.Itoa(snap.OpponentScore), scoreFont, ox, y, match.ScoreScale[sim.SideOpponent], cfg.HUD.ScoreColor)

	small := fonts.Small.Get()
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	if label := rallyLabel(snap.Rally); label != "" && snap.Phase == sim.Playing {
		drawScaledCentered(screen, label, small, width/2, height-16, 1, cfg.HUD.RallyColor)
	}

	top := match.Title
	if top == "" {
		top = match.Arena
	}
	top = fmt.Sprintf("%s - first to %d", top, snap.WinningScore)
	if IsMuted() {
		top += " - muted"
	}
	drawScaledCentered(screen, top, small, width/2, 16, 1, cfg.HUD.HintColor)
}

// rallyLabel returns the rally counter text, empty while the rally is short.
func rallyLabel(rally int) string {
	if rally < cfg.HUD.RallyMinShown {
		return ""
	}
	return fmt.Sprintf("Rally %d", rally)
}

// drawScaledCentered draws s with its baseline at y, centred on x.
func drawScaledCentered(screen *ebiten.Image, s string, face font.Face, x, y, scale float32, clr color.Color) {
	bounds := text.BoundString(face, s)
	hudDrawOp.GeoM.Reset()
	hudDrawOp.ColorScale.Reset()
	hudDrawOp.GeoM.Translate(-float64(bounds.Dx())/2, 0)
	hudDrawOp.GeoM.Scale(float64(scale), float64(scale))
	hudDrawOp.GeoM.Translate(float64(x), float64(y))
	hudDrawOp.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, s, face, hudDrawOp)
}
