package entity

import (
	"fmt"

	"github.com/milk9111/santaclimb/ecs"
	"github.com/milk9111/santaclimb/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	hazardWidth  = 40
	hazardHeight = 48
)

// NewHazard spawns a dynamic hazard body (the snowman) centered on (x, y).
// Whatever patrols it sets its velocity; it starts facing right.
func NewHazard(w *ecs.World, x, y float64) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.HazardTagComponent.Kind(), &component.HazardTag{}); err != nil {
		return 0, fmt.Errorf("hazard: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.ContactTaggedComponent.Kind(), &component.ContactTagged{Tag: component.TagHazard}); err != nil {
		return 0, fmt.Errorf("hazard: add contact tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("hazard: add transform: %w", err)
	}
	body := &component.PhysicsBody{
		Width:         hazardWidth,
		Height:        hazardHeight,
		Mass:          4,
		Friction:      0.8,
		FixedRotation: true,
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("hazard: add physics body: %w", err)
	}
	anim := &component.Animation{}
	anim.Play(component.ClipRight, true)
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), anim); err != nil {
		return 0, fmt.Errorf("hazard: add animation: %w", err)
	}
	lk := look{sprite: component.Sprite{Fill: colornames.Lightsteelblue, OriginX: 0.5, OriginY: 0.5}, layer: component.LayerActors}
	if err := addLook(w, e, lk); err != nil {
		return 0, fmt.Errorf("hazard: %w", err)
	}
	return e, nil
}
