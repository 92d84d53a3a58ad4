package entity

import (
	"fmt"

	"github.com/milk9111/santaclimb/ecs"
	"github.com/milk9111/santaclimb/ecs/component"
	"golang.org/x/image/colornames"
)

// Rect is an axis-aligned area in world pixels with a top-left origin, as
// level editors place objects.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// NewGround spawns a solid run of ground.
func NewGround(w *ecs.World, r Rect) (ecs.Entity, error) {
	e, err := newStaticBody(w, r, component.TagGround, false, terrainLook)
	if err != nil {
		return 0, fmt.Errorf("ground: %w", err)
	}
	return e, nil
}

// NewLadder spawns a climbable sensor.
func NewLadder(w *ecs.World, r Rect) (ecs.Entity, error) {
	e, err := newStaticBody(w, r, component.TagClimbable, true, ladderLook)
	if err != nil {
		return 0, fmt.Errorf("ladder: %w", err)
	}
	return e, nil
}

// look is how a spawned body is drawn.
type look struct {
	sprite component.Sprite
	layer  int
}

var (
	terrainLook = look{sprite: component.Sprite{Fill: colornames.Snow, OriginX: 0.5, OriginY: 0.5}, layer: component.LayerTerrain}
	ladderLook  = look{sprite: component.Sprite{Fill: colornames.Saddlebrown, OriginX: 0.5, OriginY: 0.5}, layer: component.LayerProps}
	propLook    = look{sprite: component.Sprite{Fill: colornames.Slategray, OriginX: 0.5, OriginY: 0.5}, layer: component.LayerProps}
)

func newStaticBody(w *ecs.World, r Rect, tag component.ContactTag, sensor bool, lk look) (ecs.Entity, error) {
	e := w.CreateEntity()
	cx, cy := r.center()
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: cx, Y: cy}); err != nil {
		return 0, fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.ContactTaggedComponent.Kind(), &component.ContactTagged{Tag: tag}); err != nil {
		return 0, fmt.Errorf("add contact tag: %w", err)
	}
	body := &component.PhysicsBody{
		Width:    r.W,
		Height:   r.H,
		Friction: 0.8,
		Static:   true,
		Sensor:   sensor,
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("add physics body: %w", err)
	}
	if err := addLook(w, e, lk); err != nil {
		return 0, err
	}
	return e, nil
}

func addLook(w *ecs.World, e ecs.Entity, lk look) error {
	sprite := lk.sprite
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite); err != nil {
		return fmt.Errorf("add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: lk.layer}); err != nil {
		return fmt.Errorf("add render layer: %w", err)
	}
	return nil
}

// NewProp spawns an untagged sensor, such as decoration placed in the level.
func NewProp(w *ecs.World, r Rect) (ecs.Entity, error) {
	e, err := newStaticBody(w, r, component.TagUnclassified, true, propLook)
	if err != nil {
		return 0, fmt.Errorf("prop: %w", err)
	}
	return e, nil
}
