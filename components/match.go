package components

import (
	"github.com/automoto/rally/shared/sim"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// MatchData stores the running simulation and what the renderers need from it.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	Sim      *sim.Simulation
	Arena    string       // Layout name the match was built from
	Title    string       // Layout title shown in the HUD
	Events   []sim.Event  // Events produced by the last step
	Snapshot sim.Snapshot // Copied after every step

	LongestRally int

	// Score pop animation, indexed by sim.Side
	ScorePop   [2]*gween.Tween
	ScoreScale [2]float32
}

var Match = donburi.NewComponentType[MatchData]()

// StartScorePop begins the scale animation on one side's score.
func (m *MatchData) StartScorePop(side sim.Side, peak, seconds float32) {
	m.ScorePop[side] = gween.New(peak, 1, seconds, ease.OutCubic)
	m.ScoreScale[side] = peak
}

// AdvanceScorePop steps both score animations by dt seconds.
func (m *MatchData) AdvanceScorePop(dt float32) {
	for i, tw := range m.ScorePop {
		if tw == nil {
			m.ScoreScale[i] = 1
			continue
		}
		scale, done := tw.Update(dt)
		m.ScoreScale[i] = scale
		if done {
			m.ScorePop[i] = nil
			m.ScoreScale[i] = 1
		}
	}
}
