package systems

import (
	"github.com/automoto/rally/components"
	cfg "github.com/automoto/rally/config"
	"github.com/automoto/rally/shared/sim"
	"github.com/automoto/rally/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view maps arena units onto the screen, letterboxed and centred.
type view struct {
	scale      float32
	offX, offY float32
}

func fitView(screenW, screenH, arenaW, arenaH float32) view {
	scale := min(screenW/arenaW, screenH/arenaH)
	return view{
		scale: scale,
		offX:  (screenW - arenaW*scale) / 2,
		offY:  (screenH - arenaH*scale) / 2,
	}
}

func arenaView(screen *ebiten.Image, snap sim.Snapshot) view {
	b := screen.Bounds()
	return fitView(float32(b.Dx()), float32(b.Dy()), float32(snap.ArenaWidth), float32(snap.ArenaHeight))
}

func (v view) point(x, y float32) (float32, float32) {
	return v.offX + x*v.scale, v.offY + y*v.scale
}

func (v view) rect(r sim.Rect) (x, y, w, h float32) {
	x, y = v.point(float32(r.X), float32(r.Y))
	return x, y, float32(r.W) * v.scale, float32(r.H) * v.scale
}

// DrawArena fills the table and draws the dashed centre line.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	match := GetMatch(e)
	if match == nil {
		return
	}
	snap := match.Snapshot
	v := arenaView(screen, snap)

	x, y := v.point(0, 0)
	vector.FillRect(screen, x, y,
		float32(snap.ArenaWidth)*v.scale, float32(snap.ArenaHeight)*v.scale,
		cfg.Arena.BackgroundColor, false)

	centerX := float32(snap.ArenaWidth) / 2
	for dy := float32(0); dy < float32(snap.ArenaHeight); dy += cfg.Arena.CenterDash + cfg.Arena.CenterGap {
		end := min(dy+cfg.Arena.CenterDash, float32(snap.ArenaHeight))
		x0, y0 := v.point(centerX, dy)
		x1, y1 := v.point(centerX, end)
		vector.StrokeLine(screen, x0, y0, x1, y1, cfg.Arena.CenterLineWidth*v.scale, cfg.Arena.LineColor, false)
	}
}

// DrawBodies draws both paddles and the ball.
func DrawBodies(e *ecs.ECS, screen *ebiten.Image) {
	match := GetMatch(e)
	if match == nil {
		return
	}
	v := arenaView(screen, match.Snapshot)

	draw := func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		x, y, w, h := v.rect(body.Rect)
		vector.FillRect(screen, x, y, w, h, body.Color, false)
	}
	tags.Paddle.Each(e.World, draw)
	tags.Ball.Each(e.World, draw)
}
