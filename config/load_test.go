package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	require.NoError(t, Current().Validate())

	assert.Equal(t, 0.2, Throwable.Throw.WindowDuration)
	assert.Equal(t, 1.5, Throwable.Throw.VelocityMultiplier)
	assert.Equal(t, 1.0, Throwable.Throw.AngularVelocityMultiplier)
	assert.Equal(t, 0.75, Throwable.Throw.AngularVelocityInfluence)
	assert.Equal(t, mgl64.Vec3{}, Throwable.Throw.CenterOfMassOffset)
}

func TestParse_OverlaysOnBase(t *testing.T) {
	data := []byte(`
throwable:
  throw:
    window_duration: 0.35
    angular_velocity_influence: 0.5
    center_of_mass_offset: [0, -2, 0]
physics:
  tps: 90
`)

	f, err := Parse(data, Current())
	require.NoError(t, err)

	assert.Equal(t, 0.35, f.Throwable.Throw.WindowDuration)
	assert.Equal(t, 0.5, f.Throwable.Throw.AngularVelocityInfluence)
	assert.Equal(t, mgl64.Vec3{0, -2, 0}, f.Throwable.Throw.CenterOfMassOffset)
	assert.Equal(t, 90, f.Physics.TPS)

	// Untouched fields keep their defaults.
	assert.Equal(t, 1.5, f.Throwable.Throw.VelocityMultiplier)
	assert.Equal(t, Physics.Gravity, f.Physics.Gravity)
	assert.Equal(t, Respawn, f.Respawn)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero window", "throwable: {throw: {window_duration: 0}}"},
		{"influence above one", "throwable: {throw: {angular_velocity_influence: 1.5}}"},
		{"negative influence", "throwable: {throw: {angular_velocity_influence: -0.1}}"},
		{"zero tps", "physics: {tps: 0}"},
		{"inverted mass range", "respawn: {mass_min: 7, mass_max: 2}"},
		{"zero mass min", "respawn: {mass_min: 0}"},
		{"negative mass min", "respawn: {mass_min: -1}"},
		{"zero mass step", "respawn: {mass_step: 0}"},
		{"negative mass step", "respawn: {mass_step: -5}"},
		{"zero cell size", "range: {cell_size: 0}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := Current()
			f, err := Parse([]byte(tt.data), base)
			require.ErrorIs(t, err, ErrInvalid)
			assert.Equal(t, base, f)
		})
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("throwable: [unterminated"), Current())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoad(t *testing.T) {
	saved := Current()
	t.Cleanup(saved.Apply)

	path := filepath.Join(t.TempDir(), "range.yaml")
	require.NoError(t, os.WriteFile(path, []byte("respawn: {seed: 7}\ndebug: {draw_boxes: true}\n"), 0o600))

	require.NoError(t, Load(path))
	assert.Equal(t, int64(7), Respawn.Seed)
	assert.True(t, Debug.DrawBoxes)
	assert.Equal(t, saved.Throwable, Throwable)
}

func TestLoad_MissingFile(t *testing.T) {
	saved := Current()

	err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, saved, Current())
}
