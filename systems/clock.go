package systems

import (
	"github.com/automoto/throwrange/archetypes"
	"github.com/automoto/throwrange/components"
	cfg "github.com/automoto/throwrange/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances simulation time by one physics step.
// Must run first so every later system sees the same Now.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	clock.Tick++
	// Derived from the tick count so time never drifts from float accumulation.
	clock.Now = float64(clock.Tick) * cfg.Physics.Step()
}

func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = archetypes.Clock.Spawn(ecs)
	}
	return components.Clock.Get(entry)
}
