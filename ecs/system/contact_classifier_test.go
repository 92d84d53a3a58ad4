package system

import (
	"testing"

	"github.com/milk9111/santaclimb/ecs"
	"github.com/milk9111/santaclimb/ecs/component"
)

func TestClassifyContacts(t *testing.T) {
	w := ecs.NewWorld()
	player := w.CreateEntity()
	ground := w.CreateEntity()
	ground2 := w.CreateEntity()
	ladder := w.CreateEntity()
	star := w.CreateEntity()
	other := w.CreateEntity()

	contact := func(a, b ecs.Entity, tagA, tagB component.ContactTag, phase ecs.ContactPhase) ecs.ContactEvent {
		return ecs.ContactEvent{A: a, B: b, TagA: tagA, TagB: tagB, Phase: phase}
	}

	tests := []struct {
		name         string
		events       []ecs.ContactEvent
		began        []component.ContactTag
		active       []component.ContactTag
		ended        []component.ContactTag
		collectibles int
	}{
		{
			name: "empty",
		},
		{
			name: "ground_and_ladder_together",
			events: []ecs.ContactEvent{
				contact(player, ground, component.TagUnclassified, component.TagGround, ecs.ContactBegin),
				contact(ladder, player, component.TagClimbable, component.TagUnclassified, ecs.ContactActive),
			},
			began:  []component.ContactTag{component.TagGround},
			active: []component.ContactTag{component.TagClimbable},
		},
		{
			name: "ignores_pairs_without_player",
			events: []ecs.ContactEvent{
				contact(other, ground, component.TagHazard, component.TagGround, ecs.ContactBegin),
			},
		},
		{
			name: "foreign_tag_is_unclassified",
			events: []ecs.ContactEvent{
				contact(player, other, component.TagUnclassified, component.ContactTag(42), ecs.ContactBegin),
			},
			began: []component.ContactTag{component.TagUnclassified},
		},
		{
			name: "end_masked_by_next_run_begin",
			events: []ecs.ContactEvent{
				contact(player, ground, component.TagUnclassified, component.TagGround, ecs.ContactEnd),
				contact(player, ground2, component.TagUnclassified, component.TagGround, ecs.ContactBegin),
			},
			began: []component.ContactTag{component.TagGround},
		},
		{
			name: "ladder_left",
			events: []ecs.ContactEvent{
				contact(player, ladder, component.TagUnclassified, component.TagClimbable, ecs.ContactEnd),
			},
			ended: []component.ContactTag{component.TagClimbable},
		},
		{
			name: "duplicate_collectible_begin",
			events: []ecs.ContactEvent{
				contact(player, star, component.TagUnclassified, component.TagCollectible, ecs.ContactBegin),
				contact(star, player, component.TagCollectible, component.TagUnclassified, ecs.ContactBegin),
			},
			began:        []component.ContactTag{component.TagCollectible},
			collectibles: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyContacts(player, tc.events)
			assertTags(t, "began", got.Began, tc.began)
			assertTags(t, "active", got.Active, tc.active)
			assertTags(t, "ended", got.Ended, tc.ended)
			if len(got.Collectibles) != tc.collectibles {
				t.Fatalf("expected %d collectibles, got %v", tc.collectibles, got.Collectibles)
			}
			if got.Began&got.Ended != 0 {
				t.Fatalf("tag both began and ended: began=%v ended=%v", got.Began.Tags(), got.Ended.Tags())
			}
		})
	}
}

func TestClassifyContactsDoesNotMutateInput(t *testing.T) {
	w := ecs.NewWorld()
	player := w.CreateEntity()
	ground := w.CreateEntity()
	events := []ecs.ContactEvent{
		{A: player, B: ground, TagB: component.TagGround, Phase: ecs.ContactEnd},
		{A: player, B: ground, TagB: component.TagGround, Phase: ecs.ContactActive},
	}
	snapshot := append([]ecs.ContactEvent(nil), events...)

	ClassifyContacts(player, events)
	for i := range events {
		if events[i] != snapshot[i] {
			t.Fatalf("event %d mutated: %+v", i, events[i])
		}
	}
}

func assertTags(t *testing.T, name string, got ecs.TagSet, want []component.ContactTag) {
	t.Helper()
	var expected ecs.TagSet
	for _, tag := range want {
		expected = expected.With(tag)
	}
	if got != expected {
		t.Fatalf("%s: expected %v, got %v", name, expected.Tags(), got.Tags())
	}
}
