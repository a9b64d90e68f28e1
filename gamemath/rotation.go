package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// axisEpsilon is the smallest sin(angle/2) for which the rotation axis is
// considered well defined.
const axisEpsilon = 1e-12

// DeltaRotation returns the rotation taking from to to, expressed in the
// world frame: to * from^-1.
func DeltaRotation(from, to mgl64.Quat) mgl64.Quat {
	return to.Mul(from.Inverse())
}

// ShortestArcAngleAxis converts q to an angle in radians within [0, π] and a
// unit axis. q and -q encode the same rotation, so q is flipped onto the
// non-negative W hemisphere first. A rotation too small to carry an axis
// reports a zero angle about +X.
func ShortestArcAngleAxis(q mgl64.Quat) (float64, mgl64.Vec3) {
	q = q.Normalize()
	if q.W < 0 {
		q = q.Scale(-1)
	}

	s := q.V.Len()
	if s < axisEpsilon {
		return 0, mgl64.Vec3{1, 0, 0}
	}
	return 2 * math.Atan2(s, q.W), q.V.Mul(1 / s)
}

// IntegrateRotation advances orientation by angular velocity (rad/s, world
// frame) over dt seconds.
func IntegrateRotation(orientation mgl64.Quat, angular mgl64.Vec3, dt float64) mgl64.Quat {
	rate := angular.Len()
	if rate == 0 || dt == 0 {
		return orientation
	}
	step := mgl64.QuatRotate(rate*dt, angular.Mul(1/rate))
	return step.Mul(orientation).Normalize()
}
