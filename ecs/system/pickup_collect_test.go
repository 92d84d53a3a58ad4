package system

import (
	"testing"

	"github.com/milk9111/santaclimb/ecs"
	"github.com/milk9111/santaclimb/ecs/component"
)

type countingNotifier struct {
	gathered int
	hazards  int
}

func (n *countingNotifier) OnCollectibleGathered() { n.gathered++ }
func (n *countingNotifier) OnHazardContact()       { n.hazards++ }

func TestPickupCollectIsIdempotent(t *testing.T) {
	tests := []struct {
		name         string
		pushes       int
		ticks        int
		wantGathered int
	}{
		{"single", 1, 1, 1},
		{"duplicate_in_one_tick", 2, 1, 1},
		{"repeated_across_ticks", 1, 3, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			player := w.CreateEntity()
			star := w.CreateEntity()
			mustAdd(t, w, star, component.CollectibleComponent.Kind(), &component.Collectible{Kind: "star", Value: 1})

			notifier := &countingNotifier{}
			sys := NewPickupCollectSystem(notifier)
			for tick := 0; tick < tc.ticks; tick++ {
				for i := 0; i < tc.pushes; i++ {
					w.Events().Push(ecs.Event{
						Type: ecs.EventCollectibleGathered,
						Data: ecs.CollectibleGathered{Player: player, Collectible: star},
					})
				}
				sys.Update(w)
				w.Events().Drain()
			}

			if notifier.gathered != tc.wantGathered {
				t.Fatalf("expected %d gathers, got %d", tc.wantGathered, notifier.gathered)
			}
			if w.IsAlive(star) {
				t.Fatalf("expected star removed")
			}
		})
	}
}

func TestPickupCollectIgnoresNonCollectibles(t *testing.T) {
	w := ecs.NewWorld()
	rock := w.CreateEntity()
	notifier := &countingNotifier{}

	w.Events().Push(ecs.Event{Type: ecs.EventCollectibleGathered, Data: ecs.CollectibleGathered{Collectible: rock}})
	NewPickupCollectSystem(notifier).Update(w)

	if notifier.gathered != 0 || !w.IsAlive(rock) {
		t.Fatalf("non-collectible should be left alone")
	}
}
