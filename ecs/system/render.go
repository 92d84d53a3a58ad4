package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/santaclimb/ecs"
	"github.com/milk9111/santaclimb/ecs/component"
)

// Render origin for a player sprite: facing left the art sits further right
// of the body center to keep the hitbox aligned.
const (
	playerOriginRight = 0.4
	playerOriginLeft  = 0.6
)

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	entities := w.Query(
		component.TransformComponent.Kind(),
		component.SpriteComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
	)
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())

		originX := s.OriginX
		if ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
			originX = playerRenderOrigin(w, e)
		}
		y := t.Y - s.OriginY*body.Height
		if h, ok := ecs.Get(w, e, component.HoverComponent.Kind()); ok {
			y += h.Offset
		}
		x := t.X - originX*body.Width
		vector.FillRect(screen, float32(x), float32(y), float32(body.Width), float32(body.Height), s.Fill, false)
	}
}

func playerRenderOrigin(w *ecs.World, e ecs.Entity) float64 {
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok && anim.FlipX {
		return playerOriginLeft
	}
	return playerOriginRight
}
