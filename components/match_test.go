package components

import (
	"testing"

	"github.com/automoto/rally/shared/sim"
)

func TestScorePopSettles(t *testing.T) {
	var m MatchData
	m.StartScorePop(sim.SideOpponent, 1.6, 0.3)

	if m.ScoreScale[sim.SideOpponent] != 1.6 {
		t.Errorf("expected peak 1.6, got %v", m.ScoreScale[sim.SideOpponent])
	}

	m.AdvanceScorePop(0.1)
	mid := m.ScoreScale[sim.SideOpponent]
	if mid >= 1.6 || mid <= 1 {
		t.Errorf("expected scale between 1 and 1.6, got %v", mid)
	}
	if m.ScoreScale[sim.SidePlayer] != 1 {
		t.Errorf("expected untouched side at 1, got %v", m.ScoreScale[sim.SidePlayer])
	}

	m.AdvanceScorePop(1)
	if m.ScorePop[sim.SideOpponent] != nil {
		t.Error("expected finished tween to be cleared")
	}
	if m.ScoreScale[sim.SideOpponent] != 1 {
		t.Errorf("expected settled scale 1, got %v", m.ScoreScale[sim.SideOpponent])
	}
}

func TestGameOverFade(t *testing.T) {
	var g GameOverData
	g.Advance(0.1)
	if g.Alpha != 0 {
		t.Errorf("expected hidden overlay to stay at 0, got %v", g.Alpha)
	}

	g.Show(0.5)
	g.Advance(0.25)
	if g.Alpha <= 0 || g.Alpha >= 1 {
		t.Errorf("expected partial alpha, got %v", g.Alpha)
	}

	g.Show(0.5)
	if g.Fade == nil {
		t.Error("expected Show while visible to keep the running fade")
	}

	g.Advance(1)
	if g.Alpha != 1 {
		t.Errorf("expected full alpha, got %v", g.Alpha)
	}

	g.Hide()
	if g.Visible || g.Alpha != 0 {
		t.Errorf("expected hidden overlay, got visible=%v alpha=%v", g.Visible, g.Alpha)
	}
}
