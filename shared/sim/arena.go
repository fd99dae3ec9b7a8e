package sim

import "github.com/solarlune/resolv"

// Resolv tags carried by simulation bodies.
const (
	TagPaddle   = "paddle"
	TagPlayer   = "player"
	TagOpponent = "opponent"
	TagBall     = "ball"
)

const cellSize = 16

// Arena is the playing field and the collision space its bodies share.
type Arena struct {
	Width  float64
	Height float64
	space  *resolv.Space
}

// NewArena builds an arena of the given size. The collision space is rounded
// up to whole cells so bodies touching the far walls still get registered.
func NewArena(width, height int) *Arena {
	cols := (width + cellSize - 1) / cellSize
	rows := (height + cellSize - 1) / cellSize
	return &Arena{
		Width:  float64(width),
		Height: float64(height),
		space:  resolv.NewSpace(cols*cellSize, rows*cellSize, cellSize, cellSize),
	}
}

func (a *Arena) newBody(x, y, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	a.space.Add(obj)
	return obj
}

// Objects returns every collision body in the arena.
func (a *Arena) Objects() []*resolv.Object {
	return a.space.Objects()
}

// Rect is an integer axis-aligned box. Float positions are truncated toward
// zero when boxed, matching how the shells rasterise them.
type Rect struct {
	X, Y, W, H int
}

func rectOf(x, y, w, h float64) Rect {
	return Rect{X: int(x), Y: int(y), W: int(w), H: int(h)}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.H }

// CenterY returns the vertical midpoint.
func (r Rect) CenterY() float64 {
	return float64(r.Y) + float64(r.H)/2
}

// Overlaps reports strict overlap; boxes that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}
