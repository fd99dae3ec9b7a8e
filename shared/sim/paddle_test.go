package sim

import "testing"

func newTestPaddle(y float64) *Paddle {
	arena := NewArena(800, 600)
	return NewPaddle(arena, SidePlayer, 10, y, 10, 100, 7)
}

func TestPaddleContinuousMove(t *testing.T) {
	tests := []struct {
		name     string
		startY   float64
		up, down bool
		expected float64
	}{
		{"idle", 250, false, false, 250},
		{"up", 250, true, false, 243},
		{"down", 250, false, true, 257},
		{"clamped at top", 3, true, false, 0},
		{"clamped at bottom", 497, false, true, 500},
		{"both held mid-table", 250, true, true, 250},
		{"both held near top", 3, true, true, 7},
		{"both held on the floor", 500, true, true, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPaddle(tt.startY)
			p.SetMoveIntent(Up, tt.up)
			p.SetMoveIntent(Down, tt.down)
			p.ApplyContinuousMove()
			if p.Y() != tt.expected {
				t.Errorf("expected y %f, got %f", tt.expected, p.Y())
			}
		})
	}
}

func TestPaddleStaysInsideArena(t *testing.T) {
	p := newTestPaddle(250)
	p.SetMoveIntent(Down, true)
	for i := 0; i < 200; i++ {
		p.ApplyContinuousMove()
		if p.Y() < 0 || p.Y() > 500 {
			t.Fatalf("frame %d: y %f left the arena", i, p.Y())
		}
	}
	if p.Y() != 500 {
		t.Errorf("expected paddle resting on the floor, got %f", p.Y())
	}

	p.SetMoveIntent(Down, false)
	p.SetMoveIntent(Up, true)
	p.SetMoveIntent(Up, true) // idempotent
	for i := 0; i < 200; i++ {
		p.ApplyContinuousMove()
	}
	if p.Y() != 0 {
		t.Errorf("expected paddle resting on the ceiling, got %f", p.Y())
	}
}

func TestNewPaddleClampsStart(t *testing.T) {
	if p := newTestPaddle(-40); p.Y() != 0 {
		t.Errorf("expected 0, got %f", p.Y())
	}
	if p := newTestPaddle(900); p.Y() != 500 {
		t.Errorf("expected 500, got %f", p.Y())
	}
}

func TestPaddleAutoTrack(t *testing.T) {
	tests := []struct {
		name        string
		startY      float64
		ballCenterY float64
		expected    float64
	}{
		{"snaps within one step", 250, 303, 253},
		{"already aligned", 250, 300, 250},
		{"steps down", 250, 400, 257},
		{"steps up", 250, 0, 243},
		{"clamped at ceiling", 2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPaddle(tt.startY)
			p.AutoTrack(tt.ballCenterY)
			if p.Y() != tt.expected {
				t.Errorf("expected y %f, got %f", tt.expected, p.Y())
			}
		})
	}
}

func TestPaddleRectTruncates(t *testing.T) {
	p := newTestPaddle(250.9)
	want := Rect{X: 10, Y: 250, W: 10, H: 100}
	if got := p.Rect(); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
