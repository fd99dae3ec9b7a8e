package sim

import (
	"github.com/automoto/rally/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Direction is a movement intent for a paddle.
type Direction int

const (
	Up Direction = iota
	Down
)

// Paddle moves vertically at a fixed x and never leaves the arena.
type Paddle struct {
	x, y          float64
	width, height float64
	speed         float64

	moveUp   bool
	moveDown bool

	tag   string
	arena *Arena
	body  *resolv.Object
}

// NewPaddle places a paddle in the arena. side picks the resolv tag the ball
// uses to tell the two paddles apart.
func NewPaddle(arena *Arena, side Side, x, y, width, height, speed float64) *Paddle {
	tag := TagPlayer
	if side == SideOpponent {
		tag = TagOpponent
	}
	p := &Paddle{
		x:      x,
		y:      gamemath.Clamp(y, 0, arena.Height-height),
		width:  width,
		height: height,
		speed:  speed,
		tag:    tag,
		arena:  arena,
	}
	p.body = arena.newBody(p.x, p.y, width, height, TagPaddle, tag)
	return p
}

// SetMoveIntent records whether the up or down control is held.
func (p *Paddle) SetMoveIntent(dir Direction, active bool) {
	switch dir {
	case Up:
		p.moveUp = active
	case Down:
		p.moveDown = active
	}
}

// ApplyContinuousMove moves by the held intents. Holding both applies two
// independent clamped moves rather than cancelling out.
func (p *Paddle) ApplyContinuousMove() {
	if p.moveUp {
		p.move(-p.speed)
	}
	if p.moveDown {
		p.move(p.speed)
	}
}

// AutoTrack steers the paddle centre toward ballCenterY by at most one
// frame's speed, snapping when the remaining gap is smaller than that.
func (p *Paddle) AutoTrack(ballCenterY float64) {
	p.move(gamemath.StepToward(ballCenterY-p.CenterY(), p.speed))
}

func (p *Paddle) move(dy float64) {
	p.y = gamemath.Clamp(p.y+dy, 0, p.arena.Height-p.height)
	p.body.Y = p.y
	p.body.Update()
}

// Rect returns the paddle's bounding box.
func (p *Paddle) Rect() Rect {
	return rectOf(p.x, p.y, p.width, p.height)
}

func (p *Paddle) Y() float64       { return p.y }
func (p *Paddle) CenterY() float64 { return p.y + p.height/2 }
