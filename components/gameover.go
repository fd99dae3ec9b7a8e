package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// GameOverData stores the winner overlay fade
type GameOverData struct {
	Visible bool
	Fade    *gween.Tween
	Alpha   float32 // 0.0 - 1.0
}

// GameOver is the component type for the winner overlay
var GameOver = donburi.NewComponentType[GameOverData]()

// Show starts fading the overlay in. Calling it while visible is a no-op.
func (g *GameOverData) Show(seconds float32) {
	if g.Visible {
		return
	}
	g.Visible = true
	g.Alpha = 0
	g.Fade = gween.New(0, 1, seconds, ease.InQuad)
}

// Hide removes the overlay immediately.
func (g *GameOverData) Hide() {
	g.Visible = false
	g.Fade = nil
	g.Alpha = 0
}

// Advance steps the fade by dt seconds.
func (g *GameOverData) Advance(dt float32) {
	if !g.Visible || g.Fade == nil {
		return
	}
	alpha, done := g.Fade.Update(dt)
	g.Alpha = alpha
	if done {
		g.Fade = nil
		g.Alpha = 1
	}
}
