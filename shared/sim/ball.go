package sim

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/rally/shared/gamemath"
	"github.com/solarlune/resolv"
)

// ServeDirection picks the horizontal direction of a serve.
type ServeDirection int

const (
	ServeLeft   ServeDirection = -1
	ServeRandom ServeDirection = 0
	ServeRight  ServeDirection = 1
)

// spinFactor scales the base vertical speed into the largest spin a single
// paddle contact can add. Vertical speed is capped at twice that.
const spinFactor = 1.25

// Ball bounces off the top and bottom walls and the paddle faces. It is never
// clamped horizontally: leaving the arena sideways is how points are scored.
type Ball struct {
	x, y           float64
	width, height  float64
	spawnX, spawnY float64

	baseSpeedX float64
	baseSpeedY float64
	vx, vy     float64

	arena *Arena
	body  *resolv.Object
	rng   *rand.Rand
}

// NewBall spawns a ball at (x, y) and serves it in a random direction.
func NewBall(arena *Arena, x, y, width, height, speedX, speedY float64, rng *rand.Rand) *Ball {
	b := &Ball{
		x:          x,
		y:          y,
		width:      width,
		height:     height,
		spawnX:     x,
		spawnY:     y,
		baseSpeedX: speedX,
		baseSpeedY: speedY,
		arena:      arena,
		rng:        rng,
	}
	b.body = arena.newBody(x, y, width, height, TagBall)
	b.Reset(ServeRandom)
	return b
}

// Advance applies one frame of velocity and bounces off the top and bottom
// walls. It reports whether a wall was hit.
func (b *Ball) Advance() bool {
	b.x += b.vx
	b.y += b.vy

	bounced := false
	if b.y <= 0 {
		b.y = 0
		b.vy = -b.vy
		bounced = true
	} else if b.y+b.height >= b.arena.Height {
		b.y = b.arena.Height - b.height
		b.vy = -b.vy
		bounced = true
	}

	b.sync()
	return bounced
}

// ResolveCollision bounces the ball off whichever paddle it overlaps, testing
// the player paddle first. A contact only counts while the ball is still
// travelling toward that paddle, so a ball already sent back cannot be hit
// twice.
func (b *Ball) ResolveCollision(player, opponent *Paddle) (Side, bool) {
	check := b.body.Check(0, 0, TagPaddle)
	if check == nil {
		return SidePlayer, false
	}

	box := b.Rect()
	switch {
	case b.touches(check, player) && box.Overlaps(player.Rect()):
		if b.vx >= 0 {
			return SidePlayer, false
		}
		b.x = player.x + player.width
		b.vx = math.Abs(b.vx)
		b.addSpin(player)
		b.sync()
		return SidePlayer, true

	case b.touches(check, opponent) && box.Overlaps(opponent.Rect()):
		if b.vx <= 0 {
			return SideOpponent, false
		}
		b.x = opponent.x - b.width
		b.vx = -math.Abs(b.vx)
		b.addSpin(opponent)
		b.sync()
		return SideOpponent, true
	}

	return SidePlayer, false
}

func (b *Ball) touches(check *resolv.Collision, p *Paddle) bool {
	return len(check.ObjectsByTags(p.tag)) > 0
}

// addSpin bends the vertical speed by how far from the paddle centre the
// ball made contact.
func (b *Ball) addSpin(p *Paddle) {
	offset := (b.CenterY() - p.CenterY()) / (p.height / 2)
	maxSpin := b.baseSpeedY * spinFactor
	b.vy = gamemath.ClampSpeed(b.vy+offset*maxSpin, 2*maxSpin)
}

// Reset puts the ball back on its spawn point and serves it. The vertical
// sign is always drawn fresh; the vertical magnitude returns to base.
func (b *Ball) Reset(dir ServeDirection) {
	b.x = b.spawnX
	b.y = b.spawnY

	sx := b.randomSign()
	if dir != ServeRandom {
		sx = gamemath.Sign(float64(dir))
	}
	b.vx = sx * b.baseSpeedX
	b.vy = b.randomSign() * b.baseSpeedY
	b.sync()
}

func (b *Ball) randomSign() float64 {
	var n int
	if b.rng != nil {
		n = b.rng.IntN(2)
	} else {
		n = rand.IntN(2)
	}
	if n == 0 {
		return -1
	}
	return 1
}

// sync moves the collision body to the truncated box so the broad phase
// and Rect agree on which cells the ball occupies, including left of x=0.
func (b *Ball) sync() {
	r := b.Rect()
	b.body.X = float64(r.X)
	b.body.Y = float64(r.Y)
	b.body.Update()
}

// Rect returns the ball's bounding box.
func (b *Ball) Rect() Rect {
	return rectOf(b.x, b.y, b.width, b.height)
}

// Position returns the top-left corner.
func (b *Ball) Position() (float64, float64) { return b.x, b.y }

// Velocity returns the per-frame velocity.
func (b *Ball) Velocity() (float64, float64) { return b.vx, b.vy }

func (b *Ball) CenterY() float64 { return b.y + b.height/2 }

// MaxVerticalSpeed is the cap spin can push |vy| to.
func (b *Ball) MaxVerticalSpeed() float64 {
	return 2 * b.baseSpeedY * spinFactor
}
