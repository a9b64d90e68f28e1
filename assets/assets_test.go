package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRanges(t *testing.T) {
	paths, err := ListRanges()
	require.NoError(t, err)
	assert.Contains(t, paths, "levels/range.tmx")
}

func TestLoadRange(t *testing.T) {
	r, err := LoadRange("levels/range.tmx")
	require.NoError(t, err)

	assert.Equal(t, 640, r.Width)
	assert.Equal(t, 352, r.Height)

	require.Len(t, r.Targets, 3)
	assert.Equal(t, TargetSpawn{Name: "near", X: 352, Y: 256, Width: 32, Height: 32, Points: 10}, r.Targets[0])
	assert.Equal(t, 25, r.Targets[1].Points)
	assert.Equal(t, 50, r.Targets[2].Points)

	require.Len(t, r.Respawners, 1)
	assert.Equal(t, RespawnerSpawn{Name: "rack", X: 96, Y: 240, Action: "spawn"}, r.Respawners[0])

	require.NotNil(t, r.Interactor)
	assert.Equal(t, InteractorSpawn{X: 96, Y: 200}, *r.Interactor)
}

func TestLoadRange_Missing(t *testing.T) {
	_, err := LoadRange("levels/nope.tmx")
	assert.Error(t, err)
	assert.Panics(t, func() { MustLoadRange("levels/nope.tmx") })
}
