package ecs

import "github.com/milk9111/santaclimb/ecs/component"

// Query returns the live entities that hold every listed kind. The result is
// a fresh slice, so callers may destroy entities while ranging over it.
func (w *World) Query(kinds ...component.KindID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate smallest set
	smallest := 0
	for i, s := range sets {
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}

	out := make([]Entity, 0, sets[smallest].Len())
	for _, id := range sets[smallest].denseIDs {
		match := true
		for i, s := range sets {
			if i != smallest && !s.has(id) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		if e, ok := w.entities.entityAt(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first live entity holding every listed kind.
func (w *World) First(kinds ...component.KindID) (Entity, bool) {
	ents := w.Query(kinds...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}
