package sim

import "fmt"

// Phase is the match state machine.
type Phase int

const (
	Playing Phase = iota
	GameOver
	AwaitingReplayChoice
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	case AwaitingReplayChoice:
		return "awaiting_replay_choice"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// ReplayFormats lists the best-of-N formats offered after a match.
var ReplayFormats = []int{3, 5, 7}

// IsReplayFormat reports whether bestOf is one of ReplayFormats.
func IsReplayFormat(bestOf int) bool {
	for _, f := range ReplayFormats {
		if f == bestOf {
			return true
		}
	}
	return false
}

// WinningScoreFor returns the points needed to take a best-of-N match.
func WinningScoreFor(bestOf int) int {
	return (bestOf + 1) / 2
}

// MatchState tracks the score and which phase the match is in.
type MatchState struct {
	playerScore   int
	opponentScore int
	winningScore  int
	replayPrompt  bool
	phase         Phase
}

// NewMatchState starts a match at 0-0. With replayPrompt set, a finished match
// waits for a best-of-N choice instead of sitting in GameOver.
func NewMatchState(winningScore int, replayPrompt bool) *MatchState {
	return &MatchState{
		winningScore: winningScore,
		replayPrompt: replayPrompt,
		phase:        Playing,
	}
}

// AddPoint credits side with a point and reports whether that ended the match.
// Points are ignored once the match is over.
func (m *MatchState) AddPoint(side Side) bool {
	if m.phase != Playing {
		return false
	}
	switch side {
	case SidePlayer:
		m.playerScore++
	case SideOpponent:
		m.opponentScore++
	}
	if m.playerScore >= m.winningScore || m.opponentScore >= m.winningScore {
		if m.replayPrompt {
			m.phase = AwaitingReplayChoice
		} else {
			m.phase = GameOver
		}
		return true
	}
	return false
}

// Reset zeroes the scores and resumes play with the current winning score.
func (m *MatchState) Reset() {
	m.playerScore = 0
	m.opponentScore = 0
	m.phase = Playing
}

// StartNewMatch switches to a best-of-N format and resets.
func (m *MatchState) StartNewMatch(bestOf int) {
	m.winningScore = WinningScoreFor(bestOf)
	m.Reset()
}

func (m *MatchState) Scores() (player, opponent int) {
	return m.playerScore, m.opponentScore
}

func (m *MatchState) WinningScore() int { return m.winningScore }
func (m *MatchState) Phase() Phase      { return m.phase }

// GameOver is true in both end phases.
func (m *MatchState) GameOver() bool { return m.phase != Playing }

func (m *MatchState) AwaitingReplayChoice() bool {
	return m.phase == AwaitingReplayChoice
}

// Winner returns the side that reached the winning score. ok is false while
// the match is still being played.
func (m *MatchState) Winner() (side Side, ok bool) {
	if m.phase == Playing {
		return SidePlayer, false
	}
	if m.opponentScore > m.playerScore {
		return SideOpponent, true
	}
	return SidePlayer, true
}
