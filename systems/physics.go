package systems

import (
	"github.com/automoto/throwrange/components"
	cfg "github.com/automoto/throwrange/config"
	"github.com/automoto/throwrange/gamemath"
	"github.com/automoto/throwrange/logging"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdatePhysics integrates free bodies one step. Kinematic and held bodies
// are left to whoever moves them.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := cfg.Physics.Step()

	var bounds *components.BoundsData
	if entry, ok := components.Bounds.First(ecs.World); ok {
		bounds = components.Bounds.Get(entry)
	}

	var lost []*donburi.Entry
	components.RigidBody.Each(ecs.World, func(e *donburi.Entry) {
		body := components.RigidBody.Get(e)
		if body.Kinematic || isHeld(e) {
			return
		}

		body.LinearVelocity = body.LinearVelocity.Add(cfg.Physics.Gravity.Mul(dt))
		if speed := body.LinearVelocity.Len(); cfg.Physics.MaxSpeed > 0 && speed > cfg.Physics.MaxSpeed {
			body.LinearVelocity = body.LinearVelocity.Mul(cfg.Physics.MaxSpeed / speed)
		}
		body.Position = body.Position.Add(body.LinearVelocity.Mul(dt))
		body.Rotation = gamemath.IntegrateRotation(body.Rotation, body.AngularVelocity, dt)

		if bounds != nil && !bounds.Contains(body.Position.X(), body.Position.Y()) {
			lost = append(lost, e)
		}
	})

	for _, e := range lost {
		if e.HasComponent(components.Throwable) {
			logging.L().Debug("out of range", zap.Stringer("throwable", components.Throwable.Get(e).ID))
		}
		Destroy(ecs, e)
	}
}

func isHeld(e *donburi.Entry) bool {
	if !e.HasComponent(components.Throwable) {
		return false
	}
	return components.Throwable.Get(e).State == components.GrabHeld
}
