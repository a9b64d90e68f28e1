package systems

import (
	"github.com/automoto/throwrange/components"
	"github.com/automoto/throwrange/logging"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// BeginGrab attaches throwable to interactor. The pose history starts empty
// for every grab. It returns false when the throwable is already held or the
// interactor has its hand full.
func BeginGrab(ecs *ecs.ECS, interactor, throwable *donburi.Entry) bool {
	if interactor == nil || throwable == nil || !interactor.Valid() || !throwable.Valid() {
		return false
	}
	hand := components.Interactor.Get(interactor)
	t := components.Throwable.Get(throwable)
	if t.State == components.GrabHeld || hand.Selected != nil {
		return false
	}

	body := components.RigidBody.Get(throwable)
	inv := hand.Rotation.Inverse()
	t.GripOffset = inv.Rotate(body.Position.Sub(hand.Position))
	t.GripRotation = inv.Mul(body.Rotation).Normalize()

	t.State = components.GrabHeld
	t.Interactor = interactor
	t.History.Reset()
	body.Stop()
	hand.Selected = throwable

	logging.L().Debug("grab begin", zap.Stringer("throwable", t.ID))
	return true
}

// EndGrab releases whatever interactor is holding. With throw on detach set
// the body leaves with the estimated release velocity, otherwise it is simply
// let go. It returns false when interactor holds nothing.
func EndGrab(ecs *ecs.ECS, interactor *donburi.Entry) bool {
	if interactor == nil || !interactor.Valid() {
		return false
	}
	hand := components.Interactor.Get(interactor)
	throwable := hand.Selected
	hand.Selected = nil
	if throwable == nil || !throwable.Valid() {
		return false
	}

	t := components.Throwable.Get(throwable)
	if !t.IsHeldBy(interactor) {
		return false
	}

	// Put the body at the final grip so the lever arm is measured from the
	// same pose as the grip position.
	follow(components.RigidBody.Get(throwable), hand, t)
	if t.ThrowOnDetach {
		throw(throwable, hand.Position)
	}
	release(t)

	logging.L().Debug("grab end", zap.Stringer("throwable", t.ID), zap.Bool("throw", t.ThrowOnDetach))
	return true
}

// UpdateInteraction samples the holding interactor's pose for every held
// throwable and carries the body along with it.
// Must run after UpdateInteractors and before UpdatePhysics.
func UpdateInteraction(ecs *ecs.ECS) {
	now := GetOrCreateClock(ecs).Now

	var orphaned []*donburi.Entry
	components.Throwable.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Throwable.Get(e)
		if t.State != components.GrabHeld {
			return
		}
		if t.Interactor == nil || !t.Interactor.Valid() {
			orphaned = append(orphaned, e)
			return
		}

		hand := components.Interactor.Get(t.Interactor)
		t.History.Record(hand.Position, hand.Rotation, now)

		follow(components.RigidBody.Get(e), hand, t)
	})

	// The interactor went away mid grab
	for _, e := range orphaned {
		release(components.Throwable.Get(e))
	}
}

// follow places body at the grab offset from hand.
func follow(body *components.RigidBodyData, hand *components.InteractorData, t *components.ThrowableData) {
	body.Position = hand.Position.Add(hand.Rotation.Rotate(t.GripOffset))
	body.Rotation = hand.Rotation.Mul(t.GripRotation).Normalize()
	body.Stop()
}

func release(t *components.ThrowableData) {
	t.State = components.GrabIdle
	t.Interactor = nil
	t.History.Reset()
}
