package config

import "github.com/automoto/rally/shared/sim"

// Type alias so client code can switch on config.MatchPhase without importing sim.
type MatchPhase = sim.Phase

// Re-export match phase constants.
const (
	PhasePlaying              = sim.Playing
	PhaseGameOver             = sim.GameOver
	PhaseAwaitingReplayChoice = sim.AwaitingReplayChoice
)
