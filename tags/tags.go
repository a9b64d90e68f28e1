package tags

import "github.com/yohamta/donburi"

var (
	Throwable  = donburi.NewTag().SetName("Throwable")
	Target     = donburi.NewTag().SetName("Target")
	Interactor = donburi.NewTag().SetName("Interactor")
	Respawner  = donburi.NewTag().SetName("Respawner")
	Scoreboard = donburi.NewTag().SetName("Scoreboard")

	// ThrowablePoints marks throwables that targets score.
	ThrowablePoints = donburi.NewTag().SetName("ThrowablePoints")
)

// Resolv tags for trigger collision
const (
	ResolvThrowable  = "throwable"
	ResolvTarget     = "target"
	ResolvInteractor = "interactor"
)
