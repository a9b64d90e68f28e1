package factory

import (
	"strconv"

	"github.com/automoto/throwrange/archetypes"
	"github.com/automoto/throwrange/components"
	cfg "github.com/automoto/throwrange/config"
	"github.com/automoto/throwrange/gamemath"
	"github.com/automoto/throwrange/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateThrowable spawns a grabbable rigid body from a prefab at the given pose.
func CreateThrowable(ecs *ecs.ECS, prefab cfg.ThrowableConfig, position mgl64.Vec3, rotation mgl64.Quat, mass float64) *donburi.Entry {
	var extra []donburi.IComponentType
	if prefab.ScoresPoints {
		extra = append(extra, tags.ThrowablePoints)
	}
	t := archetypes.Throwable.Spawn(ecs, extra...)

	// Collision box centered on the body
	obj := resolv.NewObject(
		position.X()-prefab.Width/2, position.Y()-prefab.Height/2,
		prefab.Width, prefab.Height,
		tags.ResolvThrowable,
	)
	obj.Data = t
	components.Object.Set(t, &components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.RigidBody.SetValue(t, components.RigidBodyData{
		Position:  position,
		Rotation:  rotation,
		Mass:      mass,
		Kinematic: prefab.Kinematic,
		Size:      mgl64.Vec3{prefab.Width, prefab.Height, prefab.Depth},
	})

	components.Throwable.SetValue(t, components.ThrowableData{
		ID:            uuid.New(),
		Config:        prefab.Throw,
		ThrowOnDetach: prefab.ThrowOnDetach,
		State:         components.GrabIdle,
		History:       gamemath.NewPoseHistory(prefab.Throw.WindowDuration),
		GripRotation:  mgl64.QuatIdent(),
	})

	components.Label.SetValue(t, components.LabelData{
		Text: strconv.Itoa(int(mass)),
	})

	return t
}
