package sim

import "testing"

func TestMatchStateEndsOnWinningPoint(t *testing.T) {
	tests := []struct {
		name          string
		replayPrompt  bool
		expectedPhase Phase
	}{
		{"replay prompt", true, AwaitingReplayChoice},
		{"simple restart", false, GameOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatchState(3, tt.replayPrompt)
			for i := 0; i < 2; i++ {
				if m.AddPoint(SideOpponent) {
					t.Fatalf("point %d ended the match early", i+1)
				}
			}
			if !m.AddPoint(SideOpponent) {
				t.Fatal("expected third point to end the match")
			}
			if m.Phase() != tt.expectedPhase {
				t.Errorf("expected phase %v, got %v", tt.expectedPhase, m.Phase())
			}
			if !m.GameOver() {
				t.Error("expected GameOver in either end phase")
			}
			if winner, ok := m.Winner(); !ok || winner != SideOpponent {
				t.Errorf("expected opponent winner, got %v %v", winner, ok)
			}

			if m.AddPoint(SidePlayer) {
				t.Error("points after the end must be ignored")
			}
			if p, o := m.Scores(); p != 0 || o != 3 {
				t.Errorf("expected 0-3, got %d-%d", p, o)
			}
		})
	}
}

func TestMatchStateStartNewMatch(t *testing.T) {
	m := NewMatchState(5, true)
	m.AddPoint(SidePlayer)
	m.StartNewMatch(7)

	if m.WinningScore() != 4 {
		t.Errorf("expected winning score 4, got %d", m.WinningScore())
	}
	if p, o := m.Scores(); p != 0 || o != 0 {
		t.Errorf("expected 0-0, got %d-%d", p, o)
	}
	if m.Phase() != Playing {
		t.Errorf("expected Playing, got %v", m.Phase())
	}
	if _, ok := m.Winner(); ok {
		t.Error("no winner expected while playing")
	}
}

func TestReplayFormats(t *testing.T) {
	tests := []struct {
		bestOf   int
		valid    bool
		expected int
	}{
		{1, false, 1},
		{3, true, 2},
		{4, false, 2},
		{5, true, 3},
		{7, true, 4},
		{9, false, 5},
	}

	for _, tt := range tests {
		if got := IsReplayFormat(tt.bestOf); got != tt.valid {
			t.Errorf("IsReplayFormat(%d) = %v, want %v", tt.bestOf, got, tt.valid)
		}
		if got := WinningScoreFor(tt.bestOf); got != tt.expected {
			t.Errorf("WinningScoreFor(%d) = %d, want %d", tt.bestOf, got, tt.expected)
		}
	}
}
