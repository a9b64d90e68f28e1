package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type RigidBodyData struct {
	Position        mgl64.Vec3
	Rotation        mgl64.Quat
	LinearVelocity  mgl64.Vec3
	AngularVelocity mgl64.Vec3 // rad/s, world frame
	Mass            float64
	// Kinematic bodies are moved by code only and cannot receive a velocity.
	Kinematic bool
	// CenterOfMass is relative to Position in the body's local frame.
	CenterOfMass mgl64.Vec3
	Size         mgl64.Vec3
}

var RigidBody = donburi.NewComponentType[RigidBodyData]()

// WorldCenterOfMass returns the center of mass in world space.
func (b *RigidBodyData) WorldCenterOfMass() mgl64.Vec3 {
	return b.Position.Add(b.Rotation.Rotate(b.CenterOfMass))
}

// Stop clears both velocities.
func (b *RigidBodyData) Stop() {
	b.LinearVelocity = mgl64.Vec3{}
	b.AngularVelocity = mgl64.Vec3{}
}
