package system

import (
	"github.com/milk9111/santaclimb/ecs"
	"github.com/milk9111/santaclimb/ecs/component"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	defaultHoverAmplitude = 4
	defaultHoverPeriod    = 1.5
	hoverTickSeconds      = 1.0 / 60
)

// PickupHoverSystem advances every Hover tween by one tick. Only the drawn
// offset moves; sensors stay where they were spawned.
type PickupHoverSystem struct{}

func NewPickupHoverSystem() *PickupHoverSystem { return &PickupHoverSystem{} }

func (s *PickupHoverSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.HoverComponent.Kind(), func(e ecs.Entity, h *component.Hover) {
		if h.Tween == nil {
			h.Tween = newHoverTween(h)
		}
		offset, _, done := h.Tween.Update(hoverTickSeconds)
		h.Offset = float64(offset)
		if done {
			h.Tween.Reset()
		}
	})
}

func newHoverTween(h *component.Hover) *gween.Sequence {
	if h.Amplitude == 0 {
		h.Amplitude = defaultHoverAmplitude
	}
	if h.Period <= 0 {
		h.Period = defaultHoverPeriod
	}
	amp := float32(h.Amplitude)
	half := float32(h.Period / 2)
	return gween.NewSequence(
		gween.New(0, -amp, half/2, ease.OutSine),
		gween.New(-amp, amp, half, ease.InOutSine),
		gween.New(amp, 0, half/2, ease.InSine),
	)
}
