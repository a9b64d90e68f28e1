package components

import (
	"github.com/automoto/throwrange/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

type GrabState int

const (
	GrabIdle GrabState = iota
	GrabHeld
)

func (s GrabState) String() string {
	switch s {
	case GrabIdle:
		return "idle"
	case GrabHeld:
		return "held"
	}
	return "unknown"
}

type ThrowableData struct {
	ID            uuid.UUID
	Config        gamemath.ThrowConfig
	ThrowOnDetach bool

	State      GrabState
	Interactor *donburi.Entry // Selecting interactor while held
	History    *gamemath.PoseHistory

	// Body pose relative to the interactor, captured at grab time.
	GripOffset   mgl64.Vec3
	GripRotation mgl64.Quat
}

var Throwable = donburi.NewComponentType[ThrowableData]()

// IsHeldBy reports whether interactor is the one holding the throwable.
func (t *ThrowableData) IsHeldBy(interactor *donburi.Entry) bool {
	return t.State == GrabHeld && t.Interactor != nil && t.Interactor == interactor
}
