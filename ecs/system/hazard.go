package system

import (
	"github.com/milk9111/santaclimb/ecs"
	"github.com/milk9111/santaclimb/ecs/component"
)

// HazardContactSystem forwards hazard contacts to the collaborator that owns
// damage and respawn.
type HazardContactSystem struct {
	notifier Notifier
}

func NewHazardContactSystem(n Notifier) *HazardContactSystem {
	if n == nil {
		n = NopNotifier{}
	}
	return &HazardContactSystem{notifier: n}
}

func (s *HazardContactSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for range w.Events().Of(ecs.EventHazardContact) {
		s.notifier.OnHazardContact()
	}
}

const hazardFacingEpsilon = 0.01

// HazardFacingSystem keeps a hazard's two-clip facing in step with the
// direction its patrol moves it. Patrol itself is driven elsewhere.
type HazardFacingSystem struct{}

func NewHazardFacingSystem() *HazardFacingSystem { return &HazardFacingSystem{} }

func (s *HazardFacingSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	entities := w.Query(
		component.HazardTagComponent.Kind(),
		component.AnimationComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
	)
	for _, e := range entities {
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if bodyComp.Body == nil {
			continue
		}
		anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
		vx := bodyComp.Body.Velocity().X
		switch {
		case vx < -hazardFacingEpsilon:
			anim.Play(component.ClipLeft, false)
		case vx > hazardFacingEpsilon:
			anim.Play(component.ClipRight, false)
		}
	}
}
