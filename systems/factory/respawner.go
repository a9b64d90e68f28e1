package factory

import (
	"math/rand"

	"github.com/automoto/throwrange/archetypes"
	"github.com/automoto/throwrange/components"
	cfg "github.com/automoto/throwrange/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRespawner creates a respawner bound to action. prefab and spawn may be
// nil, in which case pressing the action only logs what is missing.
func CreateRespawner(ecs *ecs.ECS, name string, prefab *cfg.ThrowableConfig, spawn *components.SpawnPoint, action cfg.ActionID) *donburi.Entry {
	r := archetypes.Respawner.Spawn(ecs)

	components.Respawner.SetValue(r, components.RespawnerData{
		Name:       name,
		Prefab:     prefab,
		SpawnPoint: spawn,
		Action:     action,
		Mass:       cfg.Respawn,
		Rand:       rand.New(rand.NewSource(cfg.Respawn.Seed)),
	})

	return r
}
