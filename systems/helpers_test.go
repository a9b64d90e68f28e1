package systems

import (
	"testing"

	"github.com/automoto/throwrange/components"
	cfg "github.com/automoto/throwrange/config"
	"github.com/automoto/throwrange/logging"
	"github.com/automoto/throwrange/systems/factory"
	"github.com/automoto/throwrange/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, cfg.Range.CellSize, cfg.Range.CellSize)
	return e
}

// observeLogs routes the process logger into an observer for the test.
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	prev := logging.Set(zap.New(core))
	t.Cleanup(func() { logging.Set(prev) })
	return logs
}

func spawnThrowable(e *ecs.ECS, prefab cfg.ThrowableConfig, x, y float64) *donburi.Entry {
	return factory.CreateThrowable(e, prefab, mgl64.Vec3{x, y, 0}, mgl64.QuatIdent(), 10)
}

func countThrowables(e *ecs.ECS) int {
	n := 0
	tags.Throwable.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

// pressAction sets the given action as pressed this frame and released last frame.
func pressAction(e *ecs.ECS, id cfg.ActionID) {
	in := getOrCreateInput(e)
	in.Previous[id] = false
	in.Current[id] = true
}

func releaseAction(e *ecs.ECS, id cfg.ActionID) {
	in := getOrCreateInput(e)
	in.Previous[id] = true
	in.Current[id] = false
}

type fakeStore struct {
	high    int
	saved   []int
	loadErr error
	saveErr error
}

func (s *fakeStore) LoadHighScore() (int, error) {
	return s.high, s.loadErr
}

func (s *fakeStore) SaveHighScore(score int) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, score)
	s.high = score
	return nil
}

var _ components.ScoreStore = (*fakeStore)(nil)
