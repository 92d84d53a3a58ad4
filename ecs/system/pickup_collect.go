package system

import (
	"github.com/milk9111/santaclimb/ecs"
	"github.com/milk9111/santaclimb/ecs/component"
)

// PickupCollectSystem removes gathered collectibles. A collectible is removed
// and reported once; repeated or stale gather events are ignored.
type PickupCollectSystem struct {
	notifier Notifier
}

func NewPickupCollectSystem(n Notifier) *PickupCollectSystem {
	if n == nil {
		n = NopNotifier{}
	}
	return &PickupCollectSystem{notifier: n}
}

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Of(ecs.EventCollectibleGathered) {
		gathered, ok := evt.Data.(ecs.CollectibleGathered)
		if !ok {
			continue
		}
		if !ecs.Has(w, gathered.Collectible, component.CollectibleComponent.Kind()) {
			continue
		}
		// the physics system drops the shape on its next sync
		w.DestroyEntity(gathered.Collectible)
		s.notifier.OnCollectibleGathered()
	}
}
