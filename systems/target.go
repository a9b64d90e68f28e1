package systems

import (
	"github.com/automoto/throwrange/components"
	"github.com/automoto/throwrange/logging"
	"github.com/automoto/throwrange/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

type targetHit struct {
	target    *donburi.Entry
	throwable *donburi.Entry
}

// UpdateTargets scores points-bearing throwables that touch a target and
// removes them. Anything else passes through untouched.
// Must run after UpdateObjects.
func UpdateTargets(ecs *ecs.ECS) {
	var hits []targetHit
	tags.Target.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		for _, t := range touching(obj.Object, tags.ResolvThrowable) {
			if !t.HasComponent(tags.ThrowablePoints) {
				continue
			}
			hits = append(hits, targetHit{target: e, throwable: t})
		}
	})

	for _, hit := range hits {
		// Already consumed by another target this tick
		if !hit.throwable.Valid() {
			continue
		}
		target := components.Target.Get(hit.target)
		target.Hits++
		AddPoints(target.Scoreboard, target.PointsValue)

		logging.L().Debug("target hit",
			zap.Stringer("throwable", components.Throwable.Get(hit.throwable).ID),
			zap.Int("points", target.PointsValue),
		)
		Destroy(ecs, hit.throwable)
	}
}
