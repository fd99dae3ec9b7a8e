package tui

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/automoto/rally/config"
	"github.com/automoto/rally/shared/sim"
	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(80, 25)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestSim(t *testing.T) *sim.Simulation {
	t.Helper()
	cfg := sim.DefaultConfig()
	cfg.Rand = rand.New(rand.NewPCG(1, 2))
	s, err := sim.New(cfg)
	if err != nil {
		t.Fatalf("sim.New: %v", err)
	}
	return s
}

func rowText(screen tcell.Screen, y int) string {
	width, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestDrawTable(t *testing.T) {
	screen := newTestScreen(t)
	snap := newTestSim(t).Snapshot()

	Draw(screen, snap, false)

	tests := []struct {
		name     string
		x, y     int
		expected rune
	}{
		{"player paddle", 1, 12, paddleRune},
		{"opponent paddle", 78, 12, paddleRune},
		{"centre line", 40, 1, lineRune},
		{"player score", 20, 0, '0'},
		{"opponent score", 60, 0, '0'},
	}
	for _, tt := range tests {
		if r, _, _, _ := screen.GetContent(tt.x, tt.y); r != tt.expected {
			t.Errorf("%s: expected %q at (%d,%d), got %q", tt.name, tt.expected, tt.x, tt.y, r)
		}
	}

	found := false
	for y := 1; y < 25; y++ {
		if strings.ContainsRune(rowText(screen, y), ballRune) {
			found = true
		}
	}
	if !found {
		t.Error("expected ball on screen")
	}
}

func TestDrawOverlay(t *testing.T) {
	screen := newTestScreen(t)
	snap := newTestSim(t).Snapshot()
	snap.Phase = sim.AwaitingReplayChoice
	snap.OpponentScore = 5
	snap.Winner = sim.SideOpponent
	snap.HasWinner = true

	Draw(screen, snap, true)

	var all strings.Builder
	for y := 0; y < 25; y++ {
		all.WriteString(rowText(screen, y))
		all.WriteByte('\n')
	}
	text := all.String()
	for _, want := range []string{config.GameOver.OpponentWins, config.GameOver.ReplayHint, "MUTED", "5"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected screen to contain %q", want)
		}
	}
}

func TestOverlayText(t *testing.T) {
	tests := []struct {
		name      string
		snap      sim.Snapshot
		wantTitle string
		wantHint  string
	}{
		{
			name:      "player wins, prompt disabled",
			snap:      sim.Snapshot{Phase: sim.GameOver, Winner: sim.SidePlayer, HasWinner: true},
			wantTitle: config.GameOver.PlayerWins,
			wantHint:  config.GameOver.RestartHint,
		},
		{
			name:      "opponent wins, awaiting format",
			snap:      sim.Snapshot{Phase: sim.AwaitingReplayChoice, Winner: sim.SideOpponent, HasWinner: true},
			wantTitle: config.GameOver.OpponentWins,
			wantHint:  config.GameOver.ReplayHint,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, hint := overlayText(tt.snap)
			if title != tt.wantTitle || hint != tt.wantHint {
				t.Errorf("expected %q / %q, got %q / %q", tt.wantTitle, tt.wantHint, title, hint)
			}
		})
	}
}

func TestGridScaling(t *testing.T) {
	g := newGrid(sim.Snapshot{ArenaWidth: 800, ArenaHeight: 600}, 80, 25)
	tests := []struct {
		x, y         int
		wantX, wantY int
	}{
		{0, 0, 0, 1},
		{400, 300, 40, 13},
		{799, 599, 79, 24},
	}
	for _, tt := range tests {
		x, y := g.cell(tt.x, tt.y)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("cell(%d,%d): expected (%d,%d), got (%d,%d)", tt.x, tt.y, tt.wantX, tt.wantY, x, y)
		}
	}
}

func TestKeysMovePlayer(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		up   bool
	}{
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), true},
		{"W", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), true},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), true},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), false},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim(t)
			c := NewClient(newTestScreen(t), s, nil, 60)
			start := s.PlayerRect().Y

			c.HandleKey(tt.ev)
			c.Step()

			got := s.PlayerRect().Y
			if tt.up && got >= start {
				t.Errorf("expected paddle to rise from %d, got %d", start, got)
			}
			if !tt.up && got <= start {
				t.Errorf("expected paddle to drop from %d, got %d", start, got)
			}
		})
	}
}

func TestHeldKeyExpires(t *testing.T) {
	s := newTestSim(t)
	c := NewClient(newTestScreen(t), s, nil, 60)

	c.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	for i := 0; i < holdFrames; i++ {
		c.Step()
	}
	stopped := s.PlayerRect().Y
	c.Step()

	if got := s.PlayerRect().Y; got != stopped {
		t.Errorf("expected paddle to stop at %d, got %d", stopped, got)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	} {
		c := NewClient(newTestScreen(t), newTestSim(t), nil, 60)
		c.HandleKey(ev)
		c.HandleKey(ev)
		select {
		case <-c.Done():
		default:
			t.Errorf("expected %s to quit", ev.Name())
		}
	}
}

func TestRunStopsOnInjectedQuit(t *testing.T) {
	screen := newTestScreen(t)
	c := NewClient(screen, newTestSim(t), nil, 120)

	errc := make(chan error, 1)
	go func() { errc <- c.Run() }()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("expected clean exit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		c.Quit()
		t.Fatal("Run did not return after q")
	}
}

func TestSoundPlayWithoutSpeaker(t *testing.T) {
	s := NewSound(1)
	for range 100 {
		s.Play(config.SoundPaddle)
	}
	if got := s.Pending(); got != 0 {
		t.Errorf("expected tones to be dropped without a speaker, got %d queued", got)
	}
}

func TestSoundStreamer(t *testing.T) {
	tests := []struct {
		name     string
		volume   float64
		muted    bool
		id       config.SoundID
		expected bool
	}{
		{"paddle", 1, false, config.SoundPaddle, true},
		{"unknown", 1, false, config.SoundNone, false},
		{"muted", 1, true, config.SoundScore, false},
		{"zero volume", 0, false, config.SoundWall, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSound(tt.volume)
			if tt.muted && !s.ToggleMute() {
				t.Fatal("expected mute on")
			}
			streamer, ok := s.streamer(tt.id)
			if ok != tt.expected {
				t.Fatalf("expected ok %v, got %v", tt.expected, ok)
			}
			if ok && streamer == nil {
				t.Error("expected a streamer")
			}
		})
	}
}
