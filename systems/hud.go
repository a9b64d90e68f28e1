package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/throwrange/components"
	cfg "github.com/automoto/throwrange/config"
	"github.com/automoto/throwrange/fonts"
	"github.com/automoto/throwrange/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var hudColor = color.RGBA{240, 240, 240, 255}

// DrawHUD prints each scoreboard and the throwables' mass labels.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	hudFont := fonts.HUD.Get()
	labelFont := fonts.HUDSmall.Get()

	y := 18
	tags.Scoreboard.Each(ecs.World, func(e *donburi.Entry) {
		score := components.Score.Get(e)
		text.Draw(screen, fmt.Sprintf("%s\nBest: %d", score.Text, score.HighScore), hudFont, 8, y, hudColor)
		y += 56
	})

	tags.Throwable.Each(ecs.World, func(e *donburi.Entry) {
		body := components.RigidBody.Get(e)
		label := components.Label.Get(e)
		x := int(body.Position.X()) - text.BoundString(labelFont, label.Text).Dx()/2
		text.Draw(screen, label.Text, labelFont, x, int(body.Position.Y()-body.Size.Y()/2)-4, hudColor)
	})
}

// DrawDebug outlines every collision box when box drawing is enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawBoxes {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}

	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvTarget) {
			c = color.RGBA{255, 0, 0, 255}
		} else if obj.HasTags(tags.ResolvThrowable) {
			c = color.RGBA{0, 255, 0, 255}
		}
		outline(screen, obj, c)
	}
}

func outline(screen *ebiten.Image, obj *resolv.Object, c color.Color) {
	x, y, w, h := float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
