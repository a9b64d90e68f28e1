package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// File is the on-disk shape of the configuration. Sections left out of a
// file keep their current values.
type File struct {
	Window     Config           `yaml:"window"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Throwable  ThrowableConfig  `yaml:"throwable"`
	Respawn    RespawnConfig    `yaml:"respawn"`
	Interactor InteractorConfig `yaml:"interactor"`
	Range      RangeConfig      `yaml:"range"`
	Debug      DebugConfig      `yaml:"debug"`
}

// Current snapshots the active configuration.
func Current() File {
	return File{
		Window:     *C,
		Physics:    Physics,
		Throwable:  Throwable,
		Respawn:    Respawn,
		Interactor: Interactor,
		Range:      Range,
		Debug:      Debug,
	}
}

// Parse overlays YAML data on base and validates the result.
func Parse(data []byte, base File) (File, error) {
	f := base
	if err := yaml.Unmarshal(data, &f); err != nil {
		return base, fmt.Errorf("parse config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return base, err
	}
	return f, nil
}

// Validate checks the ranges the systems rely on.
func (f File) Validate() error {
	t := f.Throwable.Throw
	switch {
	case f.Window.Width <= 0 || f.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, f.Window.Width, f.Window.Height)
	case f.Physics.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalid, f.Physics.TPS)
	case t.WindowDuration <= 0:
		return fmt.Errorf("%w: throw window_duration must be positive, got %v", ErrInvalid, t.WindowDuration)
	case t.AngularVelocityInfluence < 0 || t.AngularVelocityInfluence > 1:
		return fmt.Errorf("%w: angular_velocity_influence must be within [0,1], got %v", ErrInvalid, t.AngularVelocityInfluence)
	case f.Throwable.Width <= 0 || f.Throwable.Height <= 0:
		return fmt.Errorf("%w: throwable size %vx%v", ErrInvalid, f.Throwable.Width, f.Throwable.Height)
	case f.Respawn.MassMin <= 0:
		return fmt.Errorf("%w: mass_min must be positive, got %d", ErrInvalid, f.Respawn.MassMin)
	case f.Respawn.MassStep <= 0:
		return fmt.Errorf("%w: mass_step must be positive, got %d", ErrInvalid, f.Respawn.MassStep)
	case f.Respawn.MassMin > f.Respawn.MassMax:
		return fmt.Errorf("%w: mass_min %d above mass_max %d", ErrInvalid, f.Respawn.MassMin, f.Respawn.MassMax)
	case f.Range.CellSize <= 0:
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalid, f.Range.CellSize)
	}
	return nil
}

// Apply installs f as the active configuration.
func (f File) Apply() {
	window := f.Window
	C = &window
	Physics = f.Physics
	Throwable = f.Throwable
	Respawn = f.Respawn
	Interactor = f.Interactor
	Range = f.Range
	Debug = f.Debug
}

// Load reads a YAML file and applies it on top of the active configuration.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	f, err := Parse(data, Current())
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	f.Apply()
	return nil
}
