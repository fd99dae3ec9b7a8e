package headless

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/automoto/rally/shared/sim"
)

func newTestRunner(t *testing.T, opts Options, edit func(*sim.Config)) *Runner {
	t.Helper()
	cfg := sim.DefaultConfig()
	cfg.Rand = rand.New(rand.NewPCG(3, 9))
	if edit != nil {
		edit(&cfg)
	}
	s, err := sim.New(cfg)
	if err != nil {
		t.Fatalf("sim.New: %v", err)
	}
	r, err := NewRunner(s, opts, nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	return r
}

func TestNewRunnerValidates(t *testing.T) {
	s := sim.MustNew(sim.DefaultConfig())
	tests := []struct {
		name string
		opts Options
	}{
		{"bad format", Options{BestOf: 4}},
		{"negative rate", Options{TickRate: -1}},
		{"negative matches", Options{Matches: -2}},
	}
	for _, tt := range tests {
		if _, err := NewRunner(s, tt.opts, nil); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestRunnerPlaysRequestedMatches(t *testing.T) {
	// A crawling opponent loses every rally it cannot reach.
	r := newTestRunner(t, Options{Matches: 2, BestOf: 3, MaxTicks: 500000, Aim: 0.8}, func(c *sim.Config) {
		c.OpponentSpeed = 0.5
	})

	if err := r.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	status := r.Status()
	if len(status.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(status.Results))
	}
	first, second := status.Results[0], status.Results[1]
	if max(first.PlayerScore, first.OpponentScore) != 5 {
		t.Errorf("expected first match to 5, got %+v", first)
	}
	if max(second.PlayerScore, second.OpponentScore) != sim.WinningScoreFor(3) {
		t.Errorf("expected best of 3 second match, got %+v", second)
	}
	if status.Running {
		t.Error("expected runner to report stopped")
	}
	select {
	case <-r.Done():
	default:
		t.Error("expected Done to be closed")
	}
}

func TestRunnerStop(t *testing.T) {
	r := newTestRunner(t, Options{TickRate: 1000}, nil)

	errc := make(chan error, 1)
	go func() { errc <- r.Run() }()

	time.Sleep(20 * time.Millisecond)
	r.Stop()
	r.Stop()

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("expected clean stop, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop")
	}
	if r.Status().Ticks == 0 {
		t.Error("expected some ticks before stopping")
	}
}

func TestRunnerStalls(t *testing.T) {
	r := newTestRunner(t, Options{MaxTicks: 10}, nil)
	err := r.Run()
	if !errors.Is(err, ErrStalled) {
		t.Errorf("expected ErrStalled, got %v", err)
	}
	if got := r.Status().Ticks; got != 10 {
		t.Errorf("expected 10 ticks, got %d", got)
	}
}

func TestTickUpdatesStatus(t *testing.T) {
	r := newTestRunner(t, Options{}, nil)
	for i := 0; i < 5; i++ {
		if !r.Tick() {
			t.Fatal("expected session to continue")
		}
	}
	status := r.Status()
	if status.Ticks != 5 || status.Phase != "playing" || status.WinningScore != 5 {
		t.Errorf("unexpected status %+v", status)
	}
}
