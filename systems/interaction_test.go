package systems

import (
	"testing"

	"github.com/automoto/throwrange/components"
	cfg "github.com/automoto/throwrange/config"
	"github.com/automoto/throwrange/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// swing moves the interactor dx per tick for ticks steps, sampling each tick.
func swing(e *ecs.ECS, hand *donburi.Entry, dx mgl64.Vec3, ticks int) {
	for i := 0; i < ticks; i++ {
		h := components.Interactor.Get(hand)
		h.Position = h.Position.Add(dx)
		UpdateClock(e)
		UpdateInteraction(e)
	}
}

func TestBeginGrab_ResetsHistory(t *testing.T) {
	e := newTestECS(t)
	throwable := spawnThrowable(e, cfg.Throwable, 100, 100)
	hand := factory.CreateInteractor(e, mgl64.Vec3{100, 100, 0})

	tc := components.Throwable.Get(throwable)
	tc.History.Record(mgl64.Vec3{}, mgl64.QuatIdent(), 0)
	require.Equal(t, 1, tc.History.Len())

	require.True(t, BeginGrab(e, hand, throwable))
	assert.Equal(t, components.GrabHeld, tc.State)
	assert.True(t, tc.IsHeldBy(hand))
	assert.Equal(t, 0, tc.History.Len())
	assert.Equal(t, throwable, components.Interactor.Get(hand).Selected)
}

func TestBeginGrab_HeldThrowableIsNotStolen(t *testing.T) {
	e := newTestECS(t)
	throwable := spawnThrowable(e, cfg.Throwable, 100, 100)
	first := factory.CreateInteractor(e, mgl64.Vec3{100, 100, 0})
	second := factory.CreateInteractor(e, mgl64.Vec3{100, 100, 0})

	require.True(t, BeginGrab(e, first, throwable))
	assert.False(t, BeginGrab(e, second, throwable))
	assert.True(t, components.Throwable.Get(throwable).IsHeldBy(first))
	assert.Nil(t, components.Interactor.Get(second).Selected)

	// Only the holder can let go
	assert.False(t, EndGrab(e, second))
	assert.True(t, components.Throwable.Get(throwable).IsHeldBy(first))
}

func TestUpdateInteraction_BodyFollowsGrip(t *testing.T) {
	e := newTestECS(t)
	throwable := spawnThrowable(e, cfg.Throwable, 110, 100)
	hand := factory.CreateInteractor(e, mgl64.Vec3{100, 100, 0})
	require.True(t, BeginGrab(e, hand, throwable))

	// Quarter turn about Z swings the +X offset onto +Y.
	h := components.Interactor.Get(hand)
	h.Rotation = mgl64.QuatRotate(mgl64.DegToRad(90), zAxis)
	h.Position = mgl64.Vec3{200, 200, 0}
	UpdateClock(e)
	UpdateInteraction(e)

	body := components.RigidBody.Get(throwable)
	assert.InDelta(t, 200, body.Position.X(), 1e-9)
	assert.InDelta(t, 210, body.Position.Y(), 1e-9)
	assert.Equal(t, 1, components.Throwable.Get(throwable).History.Len())
}

func TestEndGrab_ThrowUsesRecordedMotion(t *testing.T) {
	e := newTestECS(t)
	throwable := spawnThrowable(e, cfg.Throwable, 100, 100)
	hand := factory.CreateInteractor(e, mgl64.Vec3{100, 100, 0})
	require.True(t, BeginGrab(e, hand, throwable))

	// 2 px per tick at 60 TPS is 120 px/s.
	swing(e, hand, mgl64.Vec3{2, 0, 0}, 5)
	require.True(t, EndGrab(e, hand))

	body := components.RigidBody.Get(throwable)
	want := 120 * cfg.Throwable.Throw.VelocityMultiplier
	assert.InDelta(t, want, body.LinearVelocity.X(), 1e-6)
	assert.InDelta(t, 0, body.LinearVelocity.Y(), 1e-6)
	assert.InDelta(t, 0, body.AngularVelocity.Len(), 1e-9)

	tc := components.Throwable.Get(throwable)
	assert.Equal(t, components.GrabIdle, tc.State)
	assert.Nil(t, tc.Interactor)
	assert.Equal(t, 0, tc.History.Len())
	assert.Nil(t, components.Interactor.Get(hand).Selected)
}

func TestEndGrab_ThrowCarriesSpin(t *testing.T) {
	e := newTestECS(t)
	throwable := spawnThrowable(e, cfg.Throwable, 100, 100)
	hand := factory.CreateInteractor(e, mgl64.Vec3{100, 100, 0})
	require.True(t, BeginGrab(e, hand, throwable))

	rate := 3.0 // rad/s
	step := mgl64.QuatRotate(rate*cfg.Physics.Step(), zAxis)
	for i := 0; i < 4; i++ {
		h := components.Interactor.Get(hand)
		h.Rotation = step.Mul(h.Rotation).Normalize()
		UpdateClock(e)
		UpdateInteraction(e)
	}
	require.True(t, EndGrab(e, hand))

	body := components.RigidBody.Get(throwable)
	assert.InDelta(t, rate*cfg.Throwable.Throw.AngularVelocityMultiplier, body.AngularVelocity.Z(), 1e-6)
}

func TestEndGrab_LeverArmMeasuredAtFinalGrip(t *testing.T) {
	e := newTestECS(t)
	throwable := spawnThrowable(e, cfg.Throwable, 110, 100)
	hand := factory.CreateInteractor(e, mgl64.Vec3{100, 100, 0})
	require.True(t, BeginGrab(e, hand, throwable))

	rate := 3.0 // rad/s
	step := mgl64.QuatRotate(rate*cfg.Physics.Step(), zAxis)
	for i := 0; i < 4; i++ {
		h := components.Interactor.Get(hand)
		h.Rotation = step.Mul(h.Rotation).Normalize()
		UpdateClock(e)
		UpdateInteraction(e)
	}

	// The pointer jumps on the release tick, before any sample is taken.
	h := components.Interactor.Get(hand)
	h.Position = h.Position.Add(mgl64.Vec3{40, 0, 0})
	require.True(t, EndGrab(e, hand))

	throwCfg := cfg.Throwable.Throw
	lever := h.Rotation.Rotate(mgl64.Vec3{10, 0, 0})
	tangential := mgl64.Vec3{0, 0, rate}.Cross(lever)
	want := tangential.Mul(throwCfg.AngularVelocityInfluence * throwCfg.VelocityMultiplier)

	body := components.RigidBody.Get(throwable)
	for i := range want {
		assert.InDelta(t, want[i], body.LinearVelocity[i], 1e-6, "component %d of %v", i, body.LinearVelocity)
	}
	wantPos := mgl64.Vec3{140, 100, 0}.Add(lever)
	assert.True(t, wantPos.ApproxEqualThreshold(body.Position, 1e-9), "released at %v, want %v", body.Position, wantPos)
}

func TestEndGrab_KinematicBodyIsReleasedWithWarning(t *testing.T) {
	logs := observeLogs(t)
	e := newTestECS(t)

	prefab := cfg.Throwable
	prefab.Kinematic = true
	throwable := spawnThrowable(e, prefab, 100, 100)
	hand := factory.CreateInteractor(e, mgl64.Vec3{100, 100, 0})
	require.True(t, BeginGrab(e, hand, throwable))

	swing(e, hand, mgl64.Vec3{2, 0, 0}, 5)
	require.True(t, EndGrab(e, hand))

	body := components.RigidBody.Get(throwable)
	assert.Equal(t, mgl64.Vec3{}, body.LinearVelocity)
	assert.Equal(t, mgl64.Vec3{}, body.AngularVelocity)
	assert.Equal(t, components.GrabIdle, components.Throwable.Get(throwable).State)
	assert.Equal(t, 1, logs.FilterMessageSnippet("kinematic").Len())
}

func TestEndGrab_WithoutThrowIntent(t *testing.T) {
	logs := observeLogs(t)
	e := newTestECS(t)

	prefab := cfg.Throwable
	prefab.ThrowOnDetach = false
	throwable := spawnThrowable(e, prefab, 100, 100)
	hand := factory.CreateInteractor(e, mgl64.Vec3{100, 100, 0})
	require.True(t, BeginGrab(e, hand, throwable))

	swing(e, hand, mgl64.Vec3{2, 0, 0}, 5)
	require.True(t, EndGrab(e, hand))

	tc := components.Throwable.Get(throwable)
	assert.Equal(t, mgl64.Vec3{}, components.RigidBody.Get(throwable).LinearVelocity)
	assert.Equal(t, 0, tc.History.Len())
	assert.Equal(t, 0, logs.FilterMessageSnippet("kinematic").Len())
}

func TestEndGrab_EmptyHand(t *testing.T) {
	e := newTestECS(t)
	hand := factory.CreateInteractor(e, mgl64.Vec3{100, 100, 0})
	assert.False(t, EndGrab(e, hand))
	assert.False(t, EndGrab(e, nil))
}

func TestUpdateInteraction_InteractorRemoved(t *testing.T) {
	e := newTestECS(t)
	throwable := spawnThrowable(e, cfg.Throwable, 100, 100)
	hand := factory.CreateInteractor(e, mgl64.Vec3{100, 100, 0})
	require.True(t, BeginGrab(e, hand, throwable))

	e.World.Remove(hand.Entity())
	UpdateClock(e)
	UpdateInteraction(e)

	tc := components.Throwable.Get(throwable)
	assert.Equal(t, components.GrabIdle, tc.State)
	assert.Nil(t, tc.Interactor)
}
