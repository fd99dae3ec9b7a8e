package headless

import "testing"

func TestAutopilotIntents(t *testing.T) {
	a := Autopilot{Deadband: 7}
	tests := []struct {
		name           string
		paddle, target float64
		up, down       bool
	}{
		{"ball far above", 300, 100, true, false},
		{"ball far below", 300, 500, false, true},
		{"inside deadband", 300, 305, false, false},
		{"edge of deadband", 300, 293, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up, down := a.intents(tt.paddle, tt.target)
			if up != tt.up || down != tt.down {
				t.Errorf("expected up=%v down=%v, got up=%v down=%v", tt.up, tt.down, up, down)
			}
		})
	}
}

func TestAutopilotTarget(t *testing.T) {
	a := Autopilot{Aim: 0.5}
	tests := []struct {
		name     string
		vy       float64
		expected float64
	}{
		{"moving down strikes above", 3, 275},
		{"moving up strikes below", -3, 325},
	}
	for _, tt := range tests {
		if got := a.target(300, tt.vy, 50); got != tt.expected {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.expected, got)
		}
	}

	if got := (Autopilot{}).target(300, 3, 50); got != 300 {
		t.Errorf("expected centred target without aim, got %v", got)
	}
}
