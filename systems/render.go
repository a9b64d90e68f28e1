package systems

import (
	"image/color"

	"github.com/automoto/throwrange/components"
	"github.com/automoto/throwrange/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	targetColor     = color.RGBA{200, 60, 60, 255}
	pointsColor     = color.RGBA{230, 180, 40, 255}
	plainColor      = color.RGBA{150, 150, 150, 255}
	heldColor       = color.RGBA{90, 200, 255, 255}
	interactorColor = color.RGBA{255, 255, 255, 255}
)

// DrawBodies fills every target and throwable box and marks the interactor.
// Must be added before DrawHUD so labels sit on top.
func DrawBodies(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Target.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), targetColor, false)
	})

	tags.Throwable.Each(ecs.World, func(e *donburi.Entry) {
		body := components.RigidBody.Get(e)
		w, h := body.Size.X(), body.Size.Y()
		x, y := body.Position.X()-w/2, body.Position.Y()-h/2
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), throwableColor(e), false)

		// Heading line shows the spin
		tip := body.Position.Add(body.Rotation.Rotate(mgl64.Vec3{w / 2, 0, 0}))
		vector.StrokeLine(screen,
			float32(body.Position.X()), float32(body.Position.Y()),
			float32(tip.X()), float32(tip.Y()),
			2, color.Black, false)
	})

	tags.Interactor.Each(ecs.World, func(e *donburi.Entry) {
		hand := components.Interactor.Get(e)
		p := hand.Position
		arm := hand.Rotation.Rotate(mgl64.Vec3{6, 0, 0})
		vector.StrokeLine(screen, float32(p.X()-arm.X()), float32(p.Y()-arm.Y()), float32(p.X()+arm.X()), float32(p.Y()+arm.Y()), 1, interactorColor, false)
		vector.StrokeLine(screen, float32(p.X()+arm.Y()), float32(p.Y()-arm.X()), float32(p.X()-arm.Y()), float32(p.Y()+arm.X()), 1, interactorColor, false)
	})
}

func throwableColor(e *donburi.Entry) color.RGBA {
	switch {
	case isHeld(e):
		return heldColor
	case e.HasComponent(tags.ThrowablePoints):
		return pointsColor
	}
	return plainColor
}
