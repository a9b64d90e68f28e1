package components

import (
	"math/rand"

	cfg "github.com/automoto/throwrange/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// SpawnPoint is where a respawner places new objects.
type SpawnPoint struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

type RespawnerData struct {
	Name       string
	Prefab     *cfg.ThrowableConfig // nil = nothing assigned
	SpawnPoint *SpawnPoint          // nil = nothing assigned
	Action     cfg.ActionID
	Mass       cfg.RespawnConfig
	Rand       *rand.Rand
	Spawned    int
}

var Respawner = donburi.NewComponentType[RespawnerData]()
