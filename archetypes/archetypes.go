package archetypes

import (
	"github.com/automoto/throwrange/components"
	cfg "github.com/automoto/throwrange/config"
	"github.com/automoto/throwrange/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Throwable = newArchetype(
		tags.Throwable,
		components.Throwable,
		components.RigidBody,
		components.Object,
		components.Label,
	)
	Target = newArchetype(
		tags.Target,
		components.Target,
		components.Object,
	)
	Interactor = newArchetype(
		tags.Interactor,
		components.Interactor,
		components.Object,
	)
	Respawner = newArchetype(
		tags.Respawner,
		components.Respawner,
	)
	Scoreboard = newArchetype(
		tags.Scoreboard,
		components.Score,
	)
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Input = newArchetype(
		components.Input,
	)
	Bounds = newArchetype(
		components.Bounds,
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
