package systems

import (
	"math/rand"

	"github.com/automoto/throwrange/components"
	"github.com/automoto/throwrange/logging"
	"github.com/automoto/throwrange/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateRespawners spawns a throwable from every respawner whose action was
// pressed this frame.
func UpdateRespawners(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	var pressed []*donburi.Entry
	components.Respawner.Each(ecs.World, func(e *donburi.Entry) {
		if input.Action(components.Respawner.Get(e).Action).JustPressed {
			pressed = append(pressed, e)
		}
	})

	for _, e := range pressed {
		Respawn(ecs, e)
	}
}

// Respawn creates one throwable at the respawner's spawn point with a random
// mass. It returns nil when the respawner is not fully set up.
func Respawn(ecs *ecs.ECS, respawner *donburi.Entry) *donburi.Entry {
	r := components.Respawner.Get(respawner)

	missing := false
	if r.Prefab == nil {
		logging.L().Warn("respawner has no object to spawn", zap.String("respawner", r.Name))
		missing = true
	}
	if r.SpawnPoint == nil {
		logging.L().Warn("respawner has no spawn point", zap.String("respawner", r.Name))
		missing = true
	}
	if missing {
		return nil
	}

	if r.Rand == nil {
		r.Rand = rand.New(rand.NewSource(r.Mass.Seed))
	}
	n := r.Mass.MassMin
	if span := r.Mass.MassMax - r.Mass.MassMin; span > 0 {
		n += r.Rand.Intn(span + 1)
	}
	mass := float64(n * r.Mass.MassStep)

	t := factory.CreateThrowable(ecs, *r.Prefab, r.SpawnPoint.Position, r.SpawnPoint.Rotation, mass)
	r.Spawned++

	logging.L().Debug("spawned",
		zap.String("respawner", r.Name),
		zap.Stringer("throwable", components.Throwable.Get(t).ID),
		zap.Float64("mass", mass),
	)
	return t
}
