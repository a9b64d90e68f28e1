package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/throwrange/archetypes"
	"github.com/automoto/throwrange/assets"
	"github.com/automoto/throwrange/components"
	cfg "github.com/automoto/throwrange/config"
	"github.com/automoto/throwrange/logging"
	"github.com/automoto/throwrange/systems"
	"github.com/automoto/throwrange/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// RangeScene runs one throwing range.
type RangeScene struct {
	ecs   *ecs.ECS
	level assets.Range
	store components.ScoreStore
	once  sync.Once
}

// NewRangeScene creates a scene for level. store may be nil to play without
// a saved high score.
func NewRangeScene(level assets.Range, store components.ScoreStore) *RangeScene {
	return &RangeScene{level: level, store: store}
}

func (rs *RangeScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()
}

func (rs *RangeScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *RangeScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Order matters: the clock and input feed everything after them, grabs are
	// sampled before bodies move, and triggers see this tick's positions.
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateInteractors)
	ecs.AddSystem(systems.UpdateInteraction)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateTargets)
	ecs.AddSystem(systems.UpdateRespawners)

	ecs.AddRenderer(cfg.Default, systems.DrawBodies)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	Populate(ecs, rs.level, rs.store)
	rs.ecs = ecs
}

// Populate creates the range's entities: collision space, bounds, one
// scoreboard fed by every target, the respawners and the interactor.
func Populate(ecs *ecs.ECS, level assets.Range, store components.ScoreStore) {
	factory.CreateSpace(ecs, level.Width, level.Height, cfg.Range.CellSize, cfg.Range.CellSize)

	bounds := archetypes.Bounds.Spawn(ecs)
	components.Bounds.SetValue(bounds, components.BoundsData{
		Name:   level.Name,
		Width:  float64(level.Width),
		Height: float64(level.Height),
	})

	board := factory.CreateScoreboard(ecs, store)

	for _, t := range level.Targets {
		factory.CreateTarget(ecs, t.X, t.Y, t.Width, t.Height, t.Points, board)
	}

	for _, r := range level.Respawners {
		action, ok := cfg.ParseAction(r.Action)
		if !ok {
			logging.L().Warn("respawner has an unknown action, using spawn",
				zap.String("respawner", r.Name), zap.String("action", r.Action))
			action = cfg.ActionSpawn
		}
		prefab := cfg.Throwable
		spawn := &components.SpawnPoint{
			Position: mgl64.Vec3{r.X, r.Y, 0},
			Rotation: mgl64.QuatIdent(),
		}
		factory.CreateRespawner(ecs, r.Name, &prefab, spawn, action)
	}

	hand := mgl64.Vec3{float64(level.Width) / 2, float64(level.Height) / 2, 0}
	if level.Interactor != nil {
		hand = mgl64.Vec3{level.Interactor.X, level.Interactor.Y, 0}
	}
	factory.CreateInteractor(ecs, hand)

	logging.L().Info("range ready",
		zap.String("range", level.Name),
		zap.Int("targets", len(level.Targets)),
		zap.Int("respawners", len(level.Respawners)),
	)
}
