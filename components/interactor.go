package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// InteractorData is a controller-like grabber.
type InteractorData struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Selected *donburi.Entry // Throwable being held, nil when empty handed
}

var Interactor = donburi.NewComponentType[InteractorData]()
