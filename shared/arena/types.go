// Package arena provides TMX arena parsing shared by every shell.
// It has no dependencies on ebitengine or donburi; it only reads layout data.
package arena

import "github.com/automoto/rally/shared/sim"

// Object group and object names read from a map.
const (
	GroupName      = "Arena"
	PlayerPaddle   = "PlayerPaddle"
	OpponentPaddle = "OpponentPaddle"
	BallSpawn      = "BallSpawn"
)

// Layout is the table geometry read from a TMX map.
type Layout struct {
	Name  string
	Title string

	Width  int
	Height int

	PaddleWidth  int
	PaddleHeight int
	PaddleInset  int

	BallWidth  int
	BallHeight int

	// WinningScore is zero when the map does not set one.
	WinningScore int
}

// Apply copies the layout geometry onto cfg. Speeds are left alone.
func (l *Layout) Apply(cfg *sim.Config) {
	cfg.ArenaWidth = l.Width
	cfg.ArenaHeight = l.Height
	cfg.PaddleWidth = l.PaddleWidth
	cfg.PaddleHeight = l.PaddleHeight
	cfg.PaddleInset = l.PaddleInset
	cfg.BallWidth = l.BallWidth
	cfg.BallHeight = l.BallHeight
	if l.WinningScore > 0 {
		cfg.WinningScore = l.WinningScore
	}
}
