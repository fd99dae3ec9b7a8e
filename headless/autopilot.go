package headless

import "github.com/automoto/rally/shared/sim"

// Autopilot steers the player paddle toward the ball through move intents,
// the same way a human would hold the keys.
type Autopilot struct {
	// Deadband is how far off target the paddle may be before it moves.
	Deadband float64
	// Aim is the contact point as a fraction of the paddle half-height. A
	// non-zero aim strikes off-centre in the ball's direction of travel,
	// which adds spin and eventually beats the opponent.
	Aim float64
}

// Drive sets the player's intents for the next step.
func (a Autopilot) Drive(s *sim.Simulation) {
	_, vy := s.Ball().Velocity()
	half := float64(s.Config().PaddleHeight) / 2
	target := a.target(s.Ball().CenterY(), vy, half)

	up, down := a.intents(s.PlayerRect().CenterY(), target)
	s.SetMoveIntent(sim.Up, up)
	s.SetMoveIntent(sim.Down, down)
}

// target is where the paddle centre should be for the chosen contact point.
func (a Autopilot) target(ballCenterY, vy, halfHeight float64) float64 {
	offset := a.Aim * halfHeight
	if vy < 0 {
		return ballCenterY + offset
	}
	return ballCenterY - offset
}

func (a Autopilot) intents(paddleCenterY, targetY float64) (up, down bool) {
	delta := targetY - paddleCenterY
	switch {
	case delta < -a.Deadband:
		return true, false
	case delta > a.Deadband:
		return false, true
	}
	return false, false
}
