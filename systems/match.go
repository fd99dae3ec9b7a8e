package systems

import (
	"fmt"

	"github.com/automoto/rally/archetypes"
	"github.com/automoto/rally/components"
	cfg "github.com/automoto/rally/config"
	"github.com/automoto/rally/shared/arena"
	"github.com/automoto/rally/shared/sim"
	"github.com/automoto/rally/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameSeconds is the fixed update step used by tweens.
func frameSeconds() float32 {
	return 1 / float32(cfg.C.TPS)
}

// SpawnMatch builds the simulation for layout and creates the match and body
// entities. A nil layout uses the configured defaults.
func SpawnMatch(e *ecs.ECS, layout *arena.Layout) (*components.MatchData, error) {
	simCfg := cfg.SimConfig()
	name, title := cfg.Arena.DefaultMap, ""
	if layout != nil {
		layout.Apply(&simCfg)
		name, title = layout.Name, layout.Title
	}

	s, err := sim.New(simCfg)
	if err != nil {
		return nil, fmt.Errorf("arena %s: %w", name, err)
	}

	matchEntry := archetypes.Match.Spawn(e)
	components.Match.SetValue(matchEntry, components.MatchData{
		Sim:        s,
		Arena:      name,
		Title:      title,
		Snapshot:   s.Snapshot(),
		ScoreScale: [2]float32{1, 1},
	})

	for _, side := range []sim.Side{sim.SidePlayer, sim.SideOpponent} {
		paddle := archetypes.Paddle.Spawn(e)
		components.Side.SetValue(paddle, components.SideData{Side: side})
		clr := cfg.Paddle.PlayerColor
		if side == sim.SideOpponent {
			clr = cfg.Paddle.OpponentColor
		}
		components.Body.SetValue(paddle, components.BodyData{Color: clr})
	}
	ball := archetypes.Ball.Spawn(e)
	components.Body.SetValue(ball, components.BodyData{Color: cfg.Ball.Color})

	match := components.Match.Get(matchEntry)
	syncBodies(e, match.Snapshot)
	return match, nil
}

// GetMatch returns the match singleton, or nil outside a match scene.
func GetMatch(e *ecs.ECS) *components.MatchData {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return nil
	}
	return components.Match.Get(entry)
}

// UpdateMatch feeds input into the simulation and reacts to the events it
// returns.
func UpdateMatch(e *ecs.ECS) {
	match := GetMatch(e)
	if match == nil {
		return
	}
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionMute).JustPressed {
		settings := GetOrCreateSettings(e)
		settings.Muted = ToggleMute()
		SaveCurrentSettings(settings)
	}

	applyMatchInput(e, match, input)
	match.Events = match.Sim.Step()
	handleMatchEvents(e, match)

	match.Snapshot = match.Sim.Snapshot()
	match.AdvanceScorePop(frameSeconds())
	syncBodies(e, match.Snapshot)
}

func applyMatchInput(e *ecs.ECS, match *components.MatchData, input *components.InputData) {
	s := match.Sim
	s.SetMoveIntent(sim.Up, GetAction(input, cfg.ActionMoveUp).Pressed)
	s.SetMoveIntent(sim.Down, GetAction(input, cfg.ActionMoveDown).Pressed)

	if GetAction(input, cfg.ActionRestart).JustPressed && s.ResetMatch() {
		PlaySFX(e, cfg.SoundMenuSelect)
	}

	if s.AwaitingReplayChoice() {
		for action, bestOf := range cfg.BestOfActions {
			if GetAction(input, action).JustPressed {
				SelectReplayFormat(e, bestOf)
				break
			}
		}
	}
}

// SelectReplayFormat starts a new best-of-N match from the replay prompt and
// remembers the choice.
func SelectReplayFormat(e *ecs.ECS, bestOf int) bool {
	match := GetMatch(e)
	if match == nil || !match.Sim.SelectReplayFormat(bestOf) {
		return false
	}
	match.Snapshot = match.Sim.Snapshot()
	match.LongestRally = 0

	settings := GetOrCreateSettings(e)
	settings.BestOf = bestOf
	SaveCurrentSettings(settings)

	PlaySFX(e, cfg.SoundMenuSelect)
	return true
}

func handleMatchEvents(e *ecs.ECS, match *components.MatchData) {
	for _, ev := range match.Events {
		PlaySFX(e, cfg.SoundForEvent(ev))

		switch ev.Kind {
		case sim.PaddleHit:
			if r := match.Sim.Rally(); r > match.LongestRally {
				match.LongestRally = r
			}
		case sim.Score:
			match.StartScorePop(ev.Side, cfg.HUD.ScorePopScale, cfg.HUD.ScorePopSeconds)
		}
	}
}

// syncBodies copies simulation rectangles onto the drawable entities.
func syncBodies(e *ecs.ECS, snap sim.Snapshot) {
	tags.Paddle.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		if components.Side.Get(entry).Side == sim.SideOpponent {
			body.Rect = snap.Opponent
		} else {
			body.Rect = snap.Player
		}
	})
	tags.Ball.Each(e.World, func(entry *donburi.Entry) {
		components.Body.Get(entry).Rect = snap.Ball
	})
}
