package systems

import (
	"github.com/automoto/throwrange/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves every body's collision box onto its rigid body.
// Must run after UpdatePhysics so triggers see this tick's positions.
func UpdateObjects(ecs *ecs.ECS) {
	components.RigidBody.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		body := components.RigidBody.Get(e)
		obj := components.Object.Get(e)
		obj.X = body.Position.X() - obj.W/2
		obj.Y = body.Position.Y() - obj.H/2
		obj.Update()
	})
}
