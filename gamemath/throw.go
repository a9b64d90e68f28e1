package gamemath

import "github.com/go-gl/mathgl/mgl64"

// ThrowConfig tunes how a throwable turns its grip history into a release
// velocity.
type ThrowConfig struct {
	// WindowDuration is how many seconds of grip history feed the estimate.
	// Shorter windows capture more of the final wrist flick.
	WindowDuration float64 `yaml:"window_duration"`
	// VelocityMultiplier scales the released linear velocity.
	VelocityMultiplier float64 `yaml:"velocity_multiplier"`
	// AngularVelocityMultiplier scales the released spin.
	AngularVelocityMultiplier float64 `yaml:"angular_velocity_multiplier"`
	// AngularVelocityInfluence in [0,1] blends the tangential velocity of an
	// off-center grip into the linear velocity.
	AngularVelocityInfluence float64 `yaml:"angular_velocity_influence"`
	// CenterOfMassOffset shifts the point the lever arm is measured to.
	CenterOfMassOffset mgl64.Vec3 `yaml:"center_of_mass_offset,flow"`
}

// ThrowResult holds the unscaled release velocities of a throw.
type ThrowResult struct {
	Linear  mgl64.Vec3
	Angular mgl64.Vec3
}

// Scaled applies the configured multipliers.
func (r ThrowResult) Scaled(cfg ThrowConfig) ThrowResult {
	return ThrowResult{
		Linear:  r.Linear.Mul(cfg.VelocityMultiplier),
		Angular: r.Angular.Mul(cfg.AngularVelocityMultiplier),
	}
}

// EstimateThrow derives release velocities from a grip history.
//
// Linear and angular velocity are the per-interval finite differences
// averaged over len(samples)-1. Intervals with a non-positive time delta add
// nothing but still count toward the divisor. The averaged spin induces a
// tangential velocity at the effective center of mass, measured from the
// final grip position, which is blended into the linear velocity by
// AngularVelocityInfluence.
//
// Fewer than two samples yield a zero result.
func EstimateThrow(samples []PoseSample, cfg ThrowConfig, gripPosition, centerOfMass mgl64.Vec3) ThrowResult {
	if len(samples) < 2 {
		return ThrowResult{}
	}

	var linear, angular mgl64.Vec3
	for i := 0; i < len(samples)-1; i++ {
		cur, next := samples[i], samples[i+1]
		dt := next.Time - cur.Time
		if dt <= 0 {
			continue
		}

		linear = linear.Add(divVec3(next.Position.Sub(cur.Position), dt))

		angle, axis := ShortestArcAngleAxis(DeltaRotation(cur.Orientation, next.Orientation))
		angular = angular.Add(axis.Mul(angle / dt))
	}

	intervals := float64(len(samples) - 1)
	linear = divVec3(linear, intervals)
	angular = divVec3(angular, intervals)

	leverArm := centerOfMass.Add(cfg.CenterOfMassOffset).Sub(gripPosition)
	tangential := angular.Cross(leverArm)

	return ThrowResult{
		Linear:  LerpVec3(linear, linear.Add(tangential), cfg.AngularVelocityInfluence),
		Angular: angular,
	}
}

// LerpVec3 interpolates from a to b by t. It returns a exactly at t == 0 and
// b exactly at t == 1.
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

func divVec3(v mgl64.Vec3, d float64) mgl64.Vec3 {
	return mgl64.Vec3{v[0] / d, v[1] / d, v[2] / d}
}
