package entity

import (
	"fmt"

	"github.com/milk9111/santaclimb/ecs"
	"github.com/milk9111/santaclimb/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	playerWidth  = 32
	playerHeight = 50
)

// NewPlayerAt spawns the player centered on (x, y) with a fresh controller
// state. cfg must already be validated.
func NewPlayerAt(w *ecs.World, cfg component.MovementConfig, x, y float64) (ecs.Entity, error) {
	e := w.CreateEntity()

	state := component.NewControllerState()
	steps := []struct {
		name string
		add  func() error
	}{
		{"tag", func() error { return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}) }},
		{"transform", func() error {
			return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
		}},
		{"physics body", func() error {
			return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
				Width:         playerWidth,
				Height:        playerHeight,
				Mass:          1,
				FixedRotation: true,
			})
		}},
		{"gravity scale", func() error {
			return ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: 1})
		}},
		{"controller state", func() error { return ecs.Add(w, e, component.ControllerStateComponent.Kind(), &state) }},
		{"input", func() error { return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}) }},
		{"movement", func() error {
			return ecs.Add(w, e, component.MovementComponent.Kind(), &component.Movement{Config: cfg})
		}},
		{"animation", func() error {
			anim := &component.Animation{}
			anim.Play(component.ClipIdle, true)
			return ecs.Add(w, e, component.AnimationComponent.Kind(), anim)
		}},
		{"look", func() error {
			return addLook(w, e, look{sprite: component.Sprite{Fill: colornames.Crimson, OriginY: 0.5}, layer: component.LayerPlayer})
		}},
	}
	for _, step := range steps {
		if err := step.add(); err != nil {
			w.DestroyEntity(e)
			return 0, fmt.Errorf("player: add %s: %w", step.name, err)
		}
	}
	return e, nil
}
