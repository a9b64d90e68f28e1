package systems

import (
	"github.com/automoto/throwrange/components"
	cfg "github.com/automoto/throwrange/config"
	"github.com/automoto/throwrange/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var zAxis = mgl64.Vec3{0, 0, 1}

// UpdateInteractors drives interactors from the pointer and the grab and
// rotate actions. Every interactor follows the same pointer.
func UpdateInteractors(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	dt := cfg.Physics.Step()

	turn := 0.0
	if input.Action(cfg.ActionRotateLeft).Pressed {
		turn--
	}
	if input.Action(cfg.ActionRotateRight).Pressed {
		turn++
	}
	grab := input.Action(cfg.ActionGrab)

	var grabbing, releasing []*donburi.Entry
	tags.Interactor.Each(ecs.World, func(e *donburi.Entry) {
		hand := components.Interactor.Get(e)
		hand.Position = input.Cursor
		if turn != 0 {
			step := mgl64.QuatRotate(turn*cfg.Interactor.TurnRate*dt, zAxis)
			hand.Rotation = step.Mul(hand.Rotation).Normalize()
		}

		obj := components.Object.Get(e)
		obj.X = hand.Position.X() - obj.W/2
		obj.Y = hand.Position.Y() - obj.H/2
		obj.Update()

		switch {
		case grab.JustPressed && hand.Selected == nil:
			grabbing = append(grabbing, e)
		case grab.JustReleased && hand.Selected != nil:
			releasing = append(releasing, e)
		}
	})

	for _, e := range grabbing {
		if t := PickThrowable(ecs, e); t != nil {
			BeginGrab(ecs, e, t)
		}
	}
	for _, e := range releasing {
		EndGrab(ecs, e)
	}
}

// PickThrowable returns the free throwable closest to the interactor among
// those touching its pick box, or nil.
func PickThrowable(ecs *ecs.ECS, interactor *donburi.Entry) *donburi.Entry {
	hand := components.Interactor.Get(interactor)
	obj := components.Object.Get(interactor)

	var best *donburi.Entry
	bestDist := 0.0
	for _, e := range touching(obj.Object, tags.ResolvThrowable) {
		if !e.HasComponent(components.Throwable) || isHeld(e) {
			continue
		}
		d := components.RigidBody.Get(e).Position.Sub(hand.Position).Len()
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}
