package factory

import (
	"github.com/automoto/throwrange/archetypes"
	"github.com/automoto/throwrange/components"
	"github.com/automoto/throwrange/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTarget creates a target box that awards points to scoreboard.
func CreateTarget(ecs *ecs.ECS, x, y, w, h float64, points int, scoreboard *donburi.Entry) *donburi.Entry {
	target := archetypes.Target.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvTarget)
	obj.Data = target
	components.Object.SetValue(target, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Target.SetValue(target, components.TargetData{
		PointsValue: points,
		Scoreboard:  scoreboard,
	})

	return target
}
