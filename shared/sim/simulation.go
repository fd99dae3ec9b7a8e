package sim

import "fmt"

// Simulation owns both paddles, the ball and the match. Shells call Step once
// per frame and render from the accessors or Snapshot.
type Simulation struct {
	cfg      Config
	arena    *Arena
	player   *Paddle
	opponent *Paddle
	ball     *Ball
	match    *MatchState
	rally    int
}

// Snapshot is a copy of everything a renderer needs for one frame.
type Snapshot struct {
	ArenaWidth  int
	ArenaHeight int

	Player   Rect
	Opponent Rect
	Ball     Rect

	PlayerScore   int
	OpponentScore int
	WinningScore  int
	Phase         Phase
	Rally         int

	// Winner is only meaningful when HasWinner is set.
	Winner    Side
	HasWinner bool
}

// New builds a simulation from cfg. Paddles start vertically centred, the
// ball at the centre less half its size, served in a random direction.
func New(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	arena := NewArena(cfg.ArenaWidth, cfg.ArenaHeight)
	w := float64(cfg.ArenaWidth)
	h := float64(cfg.ArenaHeight)
	pw := float64(cfg.PaddleWidth)
	ph := float64(cfg.PaddleHeight)
	inset := float64(cfg.PaddleInset)
	paddleY := float64(cfg.ArenaHeight/2 - cfg.PaddleHeight/2)

	bw := float64(cfg.BallWidth)
	bh := float64(cfg.BallHeight)

	s := &Simulation{
		cfg:      cfg,
		arena:    arena,
		player:   NewPaddle(arena, SidePlayer, inset, paddleY, pw, ph, cfg.PlayerSpeed),
		opponent: NewPaddle(arena, SideOpponent, w-inset-pw, paddleY, pw, ph, cfg.OpponentSpeed),
		ball:     NewBall(arena, w/2-bw/2, h/2-bh/2, bw, bh, cfg.BaseSpeedX, cfg.BaseSpeedY, cfg.Rand),
		match:    NewMatchState(cfg.WinningScore, !cfg.DisableReplayPrompt),
	}
	return s, nil
}

// MustNew is New for configurations known to be valid.
func MustNew(cfg Config) *Simulation {
	s, err := New(cfg)
	if err != nil {
		panic(fmt.Sprintf("sim: %v", err))
	}
	return s
}

// SetMoveIntent sets the player paddle's held controls.
func (s *Simulation) SetMoveIntent(dir Direction, active bool) {
	s.player.SetMoveIntent(dir, active)
}

// Step advances one frame and returns what happened, in order. Outside of
// Playing it does nothing.
func (s *Simulation) Step() []Event {
	if s.match.Phase() != Playing {
		return nil
	}

	var events []Event

	s.player.ApplyContinuousMove()

	if s.ball.Advance() {
		events = append(events, Event{Kind: WallBounce})
	}

	if side, hit := s.ball.ResolveCollision(s.player, s.opponent); hit {
		s.rally++
		events = append(events, Event{Kind: PaddleHit, Side: side})
	}

	ended := false
	if scorer, serve, scored := s.outOfBounds(); scored {
		events = append(events, Event{Kind: Score, Side: scorer})
		s.rally = 0
		s.ball.Reset(serve)
		if s.match.AddPoint(scorer) {
			ended = true
			events = append(events, Event{Kind: MatchEnd, Side: scorer})
		}
	}

	if !ended {
		s.opponent.AutoTrack(s.ball.CenterY())
	}

	return events
}

// outOfBounds checks whether the ball has fully left either side. The serve
// goes toward the side that just conceded.
func (s *Simulation) outOfBounds() (scorer Side, serve ServeDirection, scored bool) {
	b := s.ball
	switch {
	case b.x+b.width < 0:
		return SideOpponent, ServeRight, true
	case b.x > s.arena.Width:
		return SidePlayer, ServeLeft, true
	}
	return SidePlayer, ServeRandom, false
}

// ResetMatch zeroes the scores and re-serves, keeping the winning score. It is
// refused while a replay format is being chosen.
func (s *Simulation) ResetMatch() bool {
	if s.match.AwaitingReplayChoice() {
		return false
	}
	s.restart()
	s.match.Reset()
	return true
}

// SelectReplayFormat starts a best-of-N match. Only 3, 5 and 7 are accepted,
// and only while the replay choice is pending.
func (s *Simulation) SelectReplayFormat(bestOf int) bool {
	if !s.match.AwaitingReplayChoice() || !IsReplayFormat(bestOf) {
		return false
	}
	s.restart()
	s.match.StartNewMatch(bestOf)
	return true
}

func (s *Simulation) restart() {
	s.rally = 0
	s.ball.Reset(ServeRandom)
}

func (s *Simulation) PlayerRect() Rect   { return s.player.Rect() }
func (s *Simulation) OpponentRect() Rect { return s.opponent.Rect() }
func (s *Simulation) BallRect() Rect     { return s.ball.Rect() }

// Scores returns player and opponent points.
func (s *Simulation) Scores() (player, opponent int) { return s.match.Scores() }

func (s *Simulation) GameOver() bool             { return s.match.GameOver() }
func (s *Simulation) AwaitingReplayChoice() bool { return s.match.AwaitingReplayChoice() }
func (s *Simulation) Phase() Phase               { return s.match.Phase() }
func (s *Simulation) WinningScore() int          { return s.match.WinningScore() }

// Winner is valid once the match is over.
func (s *Simulation) Winner() (Side, bool) { return s.match.Winner() }

// Rally counts paddle hits since the last serve.
func (s *Simulation) Rally() int { return s.rally }

// Ball exposes the ball for shells that need its exact float position.
func (s *Simulation) Ball() *Ball { return s.ball }

func (s *Simulation) Config() Config { return s.cfg }

// Arena exposes the collision space for debug drawing.
func (s *Simulation) Arena() *Arena { return s.arena }

func (s *Simulation) Snapshot() Snapshot {
	ps, os := s.match.Scores()
	winner, hasWinner := s.match.Winner()
	return Snapshot{
		ArenaWidth:    s.cfg.ArenaWidth,
		ArenaHeight:   s.cfg.ArenaHeight,
		Player:        s.player.Rect(),
		Opponent:      s.opponent.Rect(),
		Ball:          s.ball.Rect(),
		PlayerScore:   ps,
		OpponentScore: os,
		WinningScore:  s.match.WinningScore(),
		Phase:         s.match.Phase(),
		Rally:         s.rally,
		Winner:        winner,
		HasWinner:     hasWinner,
	}
}
