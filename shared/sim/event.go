package sim

import "fmt"

// Side identifies one end of the table.
type Side int

const (
	SidePlayer Side = iota
	SideOpponent
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideOpponent:
		return "opponent"
	}
	return fmt.Sprintf("side(%d)", int(s))
}

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == SidePlayer {
		return SideOpponent
	}
	return SidePlayer
}

// EventKind tags what happened during a step.
type EventKind int

const (
	WallBounce EventKind = iota
	PaddleHit
	Score
	MatchEnd
)

func (k EventKind) String() string {
	switch k {
	case WallBounce:
		return "wall"
	case PaddleHit:
		return "paddle"
	case Score:
		return "score"
	case MatchEnd:
		return "match_end"
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is emitted by Step. Side is the paddle that hit for PaddleHit, the
// scorer for Score and the winner for MatchEnd. It is unused for WallBounce.
type Event struct {
	Kind EventKind
	Side Side
}

func (e Event) String() string {
	if e.Kind == WallBounce {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", e.Kind, e.Side)
}
