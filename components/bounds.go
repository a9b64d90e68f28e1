package components

import "github.com/yohamta/donburi"

// BoundsData is the playable area of the loaded range in world units.
// Bodies that fall out of it are despawned.
type BoundsData struct {
	Name   string
	Width  float64
	Height float64
}

var Bounds = donburi.NewComponentType[BoundsData]()

// Contains reports whether (x, y) is inside the range. Anything above the top
// edge still counts, since it can fall back in.
func (b *BoundsData) Contains(x, y float64) bool {
	return x >= 0 && x <= b.Width && y <= b.Height
}
