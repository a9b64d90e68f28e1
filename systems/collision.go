package systems

import (
	"github.com/automoto/throwrange/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// touching returns the entities behind objects that share a cell with obj
// and carry one of tags, narrowed to the ones whose boxes actually overlap.
func touching(obj *resolv.Object, tags ...string) []*donburi.Entry {
	check := obj.Check(0, 0, tags...)
	if check == nil {
		return nil
	}

	var hits []*donburi.Entry
	for _, other := range check.ObjectsByTags(tags...) {
		if !overlaps(obj, other) {
			continue
		}
		entry, ok := other.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.Valid() {
			continue
		}
		hits = append(hits, entry)
	}
	return hits
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// Destroy removes an entity and its collision object. A held throwable is
// dropped from its interactor first.
func Destroy(ecs *ecs.ECS, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}

	if e.HasComponent(components.Throwable) {
		t := components.Throwable.Get(e)
		if t.Interactor != nil && t.Interactor.Valid() {
			hand := components.Interactor.Get(t.Interactor)
			if hand.Selected == e {
				hand.Selected = nil
			}
		}
	}

	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e).Object
		if obj != nil && obj.Space != nil {
			obj.Space.Remove(obj)
		}
	}

	ecs.World.Remove(e.Entity())
}
