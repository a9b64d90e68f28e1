package systems

import (
	"github.com/automoto/throwrange/components"
	"github.com/automoto/throwrange/gamemath"
	"github.com/automoto/throwrange/logging"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// throw estimates the release velocity from the recorded grip history and
// hands it to the body. grip is the final grip position.
func throw(throwable *donburi.Entry, grip mgl64.Vec3) {
	t := components.Throwable.Get(throwable)
	body := components.RigidBody.Get(throwable)

	if body.Kinematic {
		logging.L().Warn("cannot throw a kinematic body, releasing without velocity",
			zap.Stringer("throwable", t.ID))
		return
	}

	result := gamemath.EstimateThrow(t.History.Samples(), t.Config, grip, body.WorldCenterOfMass()).Scaled(t.Config)
	body.LinearVelocity = result.Linear
	body.AngularVelocity = result.Angular

	logging.L().Debug("thrown",
		zap.Stringer("throwable", t.ID),
		zap.Int("samples", t.History.Len()),
		zap.Float64("speed", result.Linear.Len()),
		zap.Float64("spin", result.Angular.Len()),
	)
}
