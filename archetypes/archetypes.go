package archetypes

import (
	"github.com/automoto/rally/components"
	cfg "github.com/automoto/rally/config"
	"github.com/automoto/rally/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Paddle = newArchetype(
		tags.Paddle,
		components.Body,
		components.Side,
	)
	Ball = newArchetype(
		tags.Ball,
		components.Body,
	)
	Match = newArchetype(
		components.Match,
		components.GameOver,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
