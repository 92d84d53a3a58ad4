package entity

import (
	"fmt"

	"github.com/milk9111/santaclimb/ecs"
	"github.com/milk9111/santaclimb/ecs/component"
	"golang.org/x/image/colornames"
)

const starSize = 24

var starLook = look{sprite: component.Sprite{Fill: colornames.Gold, OriginX: 0.5, OriginY: 0.5}, layer: component.LayerPickups}

// NewStar spawns a collectible star centered on (x, y).
func NewStar(w *ecs.World, x, y float64) (ecs.Entity, error) {
	e, err := newStaticBody(w, Rect{X: x - starSize/2, Y: y - starSize/2, W: starSize, H: starSize}, component.TagCollectible, true, starLook)
	if err != nil {
		return 0, fmt.Errorf("star: %w", err)
	}
	if err := ecs.Add(w, e, component.CollectibleComponent.Kind(), &component.Collectible{Kind: "star", Value: 1}); err != nil {
		return 0, fmt.Errorf("star: add collectible: %w", err)
	}
	if err := ecs.Add(w, e, component.HoverComponent.Kind(), &component.Hover{}); err != nil {
		return 0, fmt.Errorf("star: add hover: %w", err)
	}
	return e, nil
}
