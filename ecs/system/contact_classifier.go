package system

import (
	"github.com/milk9111/santaclimb/ecs"
	"github.com/milk9111/santaclimb/ecs/component"
)

// ClassifyContacts reduces one step's raw contact events to the tags touching
// player. It only reads its inputs.
//
// A tag counts as ended only when nothing carrying it is still touching: an
// end on one ground run and a begin on the next in the same step leaves
// ground in Began and out of Ended.
func ClassifyContacts(player ecs.Entity, events []ecs.ContactEvent) ecs.ContactSummary {
	var summary ecs.ContactSummary
	if !player.Valid() {
		return summary
	}

	for _, evt := range events {
		other, tag, ok := otherSide(player, evt)
		if !ok {
			continue
		}
		switch evt.Phase {
		case ecs.ContactBegin:
			summary.Began = summary.Began.With(tag)
			if tag == component.TagCollectible && other.Valid() && !containsEntity(summary.Collectibles, other) {
				summary.Collectibles = append(summary.Collectibles, other)
			}
		case ecs.ContactActive:
			summary.Active = summary.Active.With(tag)
		case ecs.ContactEnd:
			summary.Ended = summary.Ended.With(tag)
		}
	}

	summary.Ended &^= summary.Began | summary.Active
	return summary
}

func otherSide(player ecs.Entity, evt ecs.ContactEvent) (ecs.Entity, component.ContactTag, bool) {
	var other ecs.Entity
	var tag component.ContactTag
	switch player {
	case evt.A:
		other, tag = evt.B, evt.TagB
	case evt.B:
		other, tag = evt.A, evt.TagA
	default:
		return 0, component.TagUnclassified, false
	}
	if !tag.Known() {
		tag = component.TagUnclassified
	}
	return other, tag, true
}

func containsEntity(list []ecs.Entity, e ecs.Entity) bool {
	for _, v := range list {
		if v == e {
			return true
		}
	}
	return false
}
