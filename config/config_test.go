package config

import (
	"testing"

	"github.com/automoto/rally/shared/sim"
)

func TestSimConfigMatchesDefaults(t *testing.T) {
	got := SimConfig()
	want := sim.DefaultConfig()
	want.DisableReplayPrompt = !Match.ReplayPrompt

	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestEveryActionIsBound(t *testing.T) {
	for id := ActionNone + 1; id < ActionCount; id++ {
		b, ok := Input.Bindings[id]
		if !ok || len(b.Keys) == 0 {
			t.Errorf("action %d has no keyboard binding", id)
		}
	}
}

func TestBestOfActionsAreReplayFormats(t *testing.T) {
	for id, bestOf := range BestOfActions {
		if !sim.IsReplayFormat(bestOf) {
			t.Errorf("action %d maps to unsupported format %d", id, bestOf)
		}
	}
}

func TestSoundForEvent(t *testing.T) {
	tests := []struct {
		ev       sim.Event
		expected SoundID
	}{
		{sim.Event{Kind: sim.PaddleHit, Side: sim.SideOpponent}, SoundPaddle},
		{sim.Event{Kind: sim.WallBounce}, SoundWall},
		{sim.Event{Kind: sim.Score, Side: sim.SidePlayer}, SoundScore},
		{sim.Event{Kind: sim.MatchEnd, Side: sim.SidePlayer}, SoundMatchEnd},
	}
	for _, tt := range tests {
		if got := SoundForEvent(tt.ev); got != tt.expected {
			t.Errorf("%v: expected sound %d, got %d", tt.ev, tt.expected, got)
		}
		if _, ok := Sound.Tones[tt.expected]; !ok {
			t.Errorf("sound %d has no tone", tt.expected)
		}
	}
}

func TestNextVolumeStep(t *testing.T) {
	tests := []struct {
		v, expected float64
	}{
		{0, 0.25},
		{0.5, 0.75},
		{1.0, 0},
		{0.33, 1.0},
	}
	for _, tt := range tests {
		if got := NextVolumeStep(tt.v); got != tt.expected {
			t.Errorf("NextVolumeStep(%v) = %v, want %v", tt.v, got, tt.expected)
		}
	}
}
