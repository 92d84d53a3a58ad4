package ecs

import (
	"fmt"

	"github.com/milk9111/santaclimb/ecs/component"
)

// Add attaches value to e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return fmt.Errorf("add %s to %s: %w", kind, e, component.ErrEntityNotAlive)
	}
	w.store(kind.ID(), true).set(e.id(), value)
	return nil
}

// Remove detaches the component of the given kind from e.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).remove(e.id())
}

// Has reports whether e carries a component of the given kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).has(e.id())
}

// Get returns a pointer to e's component; mutations through it are visible
// to every later reader.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	value, ok := w.store(kind.ID(), false).get(e.id())
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	return cast, ok
}

// ForEach calls fn for every live entity holding a component of kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	for _, e := range w.Query(kind) {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}
