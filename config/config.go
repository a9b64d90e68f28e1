package config

import (
	"github.com/automoto/throwrange/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the range uses.
const Default ecs.LayerID = 0

// Config holds general window configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig contains the minimal rigid body integration settings.
// World units are pixels, +Y points down.
type PhysicsConfig struct {
	TPS      int        `yaml:"tps"`     // Simulation ticks per second
	Gravity  mgl64.Vec3 `yaml:"gravity"` // px/s^2
	MaxSpeed float64    `yaml:"max_speed"`
}

// Step returns the simulation time step in seconds.
func (p PhysicsConfig) Step() float64 {
	return 1.0 / float64(p.TPS)
}

// ThrowableConfig describes the throwable prefab the respawner creates.
type ThrowableConfig struct {
	Width         float64              `yaml:"width"`
	Height        float64              `yaml:"height"`
	Depth         float64              `yaml:"depth"`
	ThrowOnDetach bool                 `yaml:"throw_on_detach"`
	Kinematic     bool                 `yaml:"kinematic"`
	ScoresPoints  bool                 `yaml:"scores_points"` // Tagged ThrowablePoints, counted by targets
	Throw         gamemath.ThrowConfig `yaml:"throw"`
}

// RespawnConfig contains the random mass rule for spawned throwables:
// mass = rand[MassMin, MassMax] * MassStep.
type RespawnConfig struct {
	MassMin  int   `yaml:"mass_min"`
	MassMax  int   `yaml:"mass_max"`
	MassStep int   `yaml:"mass_step"`
	Seed     int64 `yaml:"seed"`
}

// InteractorConfig contains the desktop controller stand-in settings.
type InteractorConfig struct {
	Size       float64 `yaml:"size"`        // Pick box edge length
	TurnRate   float64 `yaml:"turn_rate"`   // rad/s while a rotate action is held
	GrabRadius float64 `yaml:"grab_radius"` // Extra pick margin around the cursor
}

// RangeConfig selects the embedded range layout.
type RangeConfig struct {
	MapPath   string `yaml:"map_path"`
	CellSize  int    `yaml:"cell_size"`
	Persist   bool   `yaml:"persist"`
	AppName   string `yaml:"app_name"`
	ScoreText string `yaml:"score_text"`
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	DrawBoxes bool `yaml:"draw_boxes"`
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Throwable ThrowableConfig
var Respawn RespawnConfig
var Interactor InteractorConfig
var Range RangeConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Physics = PhysicsConfig{
		TPS:      60,
		Gravity:  mgl64.Vec3{0, 980, 0},
		MaxSpeed: 4000,
	}

	Throwable = ThrowableConfig{
		Width:         16,
		Height:        16,
		Depth:         16,
		ThrowOnDetach: true,
		Kinematic:     false,
		ScoresPoints:  true,
		Throw: gamemath.ThrowConfig{
			WindowDuration:            0.2,
			VelocityMultiplier:        1.5,
			AngularVelocityMultiplier: 1.0,
			AngularVelocityInfluence:  0.75,
		},
	}

	Respawn = RespawnConfig{
		MassMin:  1,
		MassMax:  6,
		MassStep: 5,
		Seed:     42,
	}

	Interactor = InteractorConfig{
		Size:       8,
		TurnRate:   6.0,
		GrabRadius: 4,
	}

	Range = RangeConfig{
		MapPath:   "levels/range.tmx",
		CellSize:  16,
		Persist:   true,
		AppName:   "throwrange",
		ScoreText: "Score:\n%d",
	}

	Debug = DebugConfig{
		DrawBoxes: false,
	}
}
