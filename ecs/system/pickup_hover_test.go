package system

import (
	"math"
	"testing"

	"github.com/milk9111/santaclimb/ecs"
	"github.com/milk9111/santaclimb/ecs/component"
)

func TestPickupHoverStaysWithinAmplitude(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.HoverComponent.Kind(), &component.Hover{Amplitude: 3, Period: 1})

	sys := NewPickupHoverSystem()
	h, _ := ecs.Get(w, e, component.HoverComponent.Kind())
	peak := 0.0
	for i := 0; i < 180; i++ {
		sys.Update(w)
		if math.Abs(h.Offset) > 3.0001 {
			t.Fatalf("tick %d: offset %v beyond amplitude", i, h.Offset)
		}
		peak = math.Max(peak, math.Abs(h.Offset))
	}
	if peak < 2.5 {
		t.Fatalf("expected the bob to reach near its amplitude, peaked at %v", peak)
	}
}

func TestPickupHoverDefaults(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.HoverComponent.Kind(), &component.Hover{})

	NewPickupHoverSystem().Update(w)
	h, _ := ecs.Get(w, e, component.HoverComponent.Kind())
	if h.Amplitude != defaultHoverAmplitude || h.Period != defaultHoverPeriod || h.Tween == nil {
		t.Fatalf("expected defaults filled in, got %+v", h)
	}
}
