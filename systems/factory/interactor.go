package factory

import (
	"github.com/automoto/throwrange/archetypes"
	"github.com/automoto/throwrange/components"
	cfg "github.com/automoto/throwrange/config"
	"github.com/automoto/throwrange/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateInteractor creates a grabber whose pick box is centered on position.
func CreateInteractor(ecs *ecs.ECS, position mgl64.Vec3) *donburi.Entry {
	interactor := archetypes.Interactor.Spawn(ecs)

	size := cfg.Interactor.Size + 2*cfg.Interactor.GrabRadius
	obj := resolv.NewObject(position.X()-size/2, position.Y()-size/2, size, size, tags.ResolvInteractor)
	obj.Data = interactor
	components.Object.SetValue(interactor, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Interactor.SetValue(interactor, components.InteractorData{
		Position: position,
		Rotation: mgl64.QuatIdent(),
	})

	return interactor
}
