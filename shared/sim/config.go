// Package sim is the frame-stepped rally simulation: two paddles, one ball,
// scoring and the match phase machine. It has no dependencies on ebiten,
// donburi or any terminal library, so every shell drives the same core.
package sim

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidConfig is wrapped by every construction-time validation failure.
var ErrInvalidConfig = errors.New("invalid simulation config")

// Config holds construction-time settings. Dimensions are in arena units,
// speeds in units per frame.
type Config struct {
	ArenaWidth  int
	ArenaHeight int

	PaddleWidth  int
	PaddleHeight int
	PaddleInset  int // Gap between each paddle and its side wall

	PlayerSpeed   float64
	OpponentSpeed float64

	BallWidth  int
	BallHeight int
	BaseSpeedX float64
	BaseSpeedY float64

	WinningScore int

	// DisableReplayPrompt ends matches in plain GameOver instead of waiting
	// for a best-of-N choice.
	DisableReplayPrompt bool

	// Rand drives serve randomness. Nil uses the auto-seeded global source.
	Rand *rand.Rand
}

// DefaultConfig returns the classic 800x600 table.
func DefaultConfig() Config {
	return Config{
		ArenaWidth:    800,
		ArenaHeight:   600,
		PaddleWidth:   10,
		PaddleHeight:  100,
		PaddleInset:   10,
		PlayerSpeed:   7,
		OpponentSpeed: 6,
		BallWidth:     7,
		BallHeight:    7,
		BaseSpeedX:    5.0,
		BaseSpeedY:    3.0,
		WinningScore:  5,
	}
}

// Validate reports the first setting that would produce undefined motion.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"arena width", float64(c.ArenaWidth)},
		{"arena height", float64(c.ArenaHeight)},
		{"paddle width", float64(c.PaddleWidth)},
		{"paddle height", float64(c.PaddleHeight)},
		{"player speed", c.PlayerSpeed},
		{"opponent speed", c.OpponentSpeed},
		{"ball width", float64(c.BallWidth)},
		{"ball height", float64(c.BallHeight)},
		{"base speed x", c.BaseSpeedX},
		{"base speed y", c.BaseSpeedY},
		{"winning score", float64(c.WinningScore)},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}

	if c.PaddleInset < 0 {
		return fmt.Errorf("%w: paddle inset must not be negative, got %d", ErrInvalidConfig, c.PaddleInset)
	}
	if 2*(c.PaddleInset+c.PaddleWidth)+c.BallWidth > c.ArenaWidth {
		return fmt.Errorf("%w: arena width %d cannot fit both paddles and the ball", ErrInvalidConfig, c.ArenaWidth)
	}
	if c.PaddleHeight > c.ArenaHeight || c.BallHeight >= c.ArenaHeight {
		return fmt.Errorf("%w: arena height %d cannot fit paddle %d or ball %d",
			ErrInvalidConfig, c.ArenaHeight, c.PaddleHeight, c.BallHeight)
	}
	return nil
}
