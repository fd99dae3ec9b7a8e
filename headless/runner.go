// Package headless drives the simulation with both paddles on autopilot and
// exposes its progress over HTTP.
package headless

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/automoto/rally/shared/sim"
)

// MatchResult is the outcome of one finished match.
type MatchResult struct {
	Winner        string `json:"winner"`
	PlayerScore   int    `json:"playerScore"`
	OpponentScore int    `json:"opponentScore"`
	Ticks         int    `json:"ticks"`
	LongestRally  int    `json:"longestRally"`
}

// Status is the JSON view of a running session.
type Status struct {
	Running       bool          `json:"running"`
	Ticks         int           `json:"ticks"`
	Phase         string        `json:"phase"`
	PlayerScore   int           `json:"playerScore"`
	OpponentScore int           `json:"opponentScore"`
	WinningScore  int           `json:"winningScore"`
	Rally         int           `json:"rally"`
	Results       []MatchResult `json:"results"`
}

// Options control a headless session.
type Options struct {
	Matches  int // Matches to play before stopping; 0 plays forever
	TickRate int // Steps per second; 0 runs unthrottled
	BestOf   int // Format chosen at the replay prompt
	MaxTicks int // Safety cap on steps per match; 0 disables it

	// Aim is the player autopilot's contact point, see Autopilot.Aim.
	Aim float64
}

// ErrStalled is returned when a match exceeds Options.MaxTicks.
var ErrStalled = errors.New("match exceeded tick limit")

// Runner owns a simulation and steps it from one goroutine.
type Runner struct {
	opts      Options
	sim       *sim.Simulation
	autopilot Autopilot
	metrics   *Metrics

	mu           sync.Mutex
	running      bool
	ticks        int
	matchTicks   int
	longestRally int
	results      []MatchResult
	snapshot     sim.Snapshot
	err          error

	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

func NewRunner(s *sim.Simulation, opts Options, metrics *Metrics) (*Runner, error) {
	if opts.BestOf != 0 && !sim.IsReplayFormat(opts.BestOf) {
		return nil, fmt.Errorf("unsupported format best of %d", opts.BestOf)
	}
	if opts.TickRate < 0 || opts.Matches < 0 || opts.MaxTicks < 0 {
		return nil, errors.New("tick rate, matches and tick limit must not be negative")
	}
	if metrics == nil {
		metrics = NewMetrics()
	}
	return &Runner{
		opts:      opts,
		sim:       s,
		autopilot: Autopilot{Deadband: s.Config().PlayerSpeed, Aim: opts.Aim},
		metrics:   metrics,
		snapshot:  s.Snapshot(),
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
	}, nil
}

// Run steps the simulation until Stop is called or the requested number of
// matches has been played.
func (r *Runner) Run() error {
	r.mu.Lock()
	r.running = true
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
		close(r.done)
	}()

	log.Printf("Headless loop started (tick rate: %s)", tickRateLabel(r.opts.TickRate))

	if r.opts.TickRate == 0 {
		for {
			select {
			case <-r.stopChan:
				log.Println("Headless loop stopped")
				return r.Err()
			default:
			}
			if !r.Tick() {
				return r.Err()
			}
		}
	}

	ticker := time.NewTicker(time.Second / time.Duration(r.opts.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-r.stopChan:
			log.Println("Headless loop stopped")
			return r.Err()
		case <-ticker.C:
			if !r.Tick() {
				return r.Err()
			}
		}
	}
}

func tickRateLabel(rate int) string {
	if rate == 0 {
		return "unthrottled"
	}
	return fmt.Sprintf("%d/s", rate)
}

// Stop ends Run. It is safe to call more than once.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.stopChan) })
}

// Done is closed when Run returns.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Tick advances one step and reports whether the session should continue.
func (r *Runner) Tick() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sim.GameOver() {
		r.startNextMatch()
	}

	rallyBefore := r.sim.Rally()
	r.autopilot.Drive(r.sim)
	events := r.sim.Step()
	r.ticks++
	r.matchTicks++
	if rally := r.sim.Rally(); rally > r.longestRally {
		r.longestRally = rally
	}

	r.snapshot = r.sim.Snapshot()
	r.metrics.Observe(events, r.snapshot, rallyBefore)

	for _, ev := range events {
		if ev.Kind == sim.MatchEnd {
			r.recordResult(ev.Side)
		}
	}

	if r.opts.Matches > 0 && len(r.results) >= r.opts.Matches {
		return false
	}
	if r.opts.MaxTicks > 0 && r.matchTicks >= r.opts.MaxTicks && !r.sim.GameOver() {
		r.err = fmt.Errorf("%w: %d ticks", ErrStalled, r.matchTicks)
		return false
	}
	return true
}

func (r *Runner) recordResult(winner sim.Side) {
	result := MatchResult{
		Winner:        winner.String(),
		PlayerScore:   r.snapshot.PlayerScore,
		OpponentScore: r.snapshot.OpponentScore,
		Ticks:         r.matchTicks,
		LongestRally:  r.longestRally,
	}
	r.results = append(r.results, result)
	log.Printf("Match %d: %s wins %d-%d after %d ticks (longest rally %d)",
		len(r.results), result.Winner, result.PlayerScore, result.OpponentScore,
		result.Ticks, result.LongestRally)
}

// startNextMatch answers the replay prompt, or restarts when the prompt is
// disabled.
func (r *Runner) startNextMatch() {
	if r.sim.AwaitingReplayChoice() {
		bestOf := r.opts.BestOf
		if bestOf == 0 {
			bestOf = sim.ReplayFormats[0]
		}
		r.sim.SelectReplayFormat(bestOf)
	} else {
		r.sim.ResetMatch()
	}
	r.matchTicks = 0
	r.longestRally = 0
}

// Status returns a copy of the session state.
func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	results := make([]MatchResult, len(r.results))
	copy(results, r.results)
	return Status{
		Running:       r.running,
		Ticks:         r.ticks,
		Phase:         r.snapshot.Phase.String(),
		PlayerScore:   r.snapshot.PlayerScore,
		OpponentScore: r.snapshot.OpponentScore,
		WinningScore:  r.snapshot.WinningScore,
		Rally:         r.snapshot.Rally,
		Results:       results,
	}
}

// Snapshot returns the state after the latest step.
func (r *Runner) Snapshot() sim.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot
}

// Err returns the error that ended the session, if any.
func (r *Runner) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}
