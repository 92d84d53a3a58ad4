package component

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID indexes a world's component stores. Zero is never issued.
type ComponentID uint32

var lastComponentID atomic.Uint32

// KindID is what a query needs from a kind; it hides the value type so kinds
// of different types can be listed together.
type KindID interface {
	ID() ComponentID
}

// ComponentKind is the typed key for one component store.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

// NewComponentKind issues a fresh kind. Two kinds of the same Go type are
// distinct stores.
func NewComponentKind[T any]() ComponentKind[T] {
	var zero T
	return ComponentKind[T]{
		id:   ComponentID(lastComponentID.Add(1)),
		name: fmt.Sprintf("%T", zero),
	}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

// Valid is false for the zero kind.
func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

func (k ComponentKind[T]) String() string {
	if !k.Valid() {
		return "invalid"
	}
	return fmt.Sprintf("%s#%d", k.name, k.id)
}

// ComponentHandle is how packages publish their kinds, e.g.
// `var TransformComponent = NewComponent[Transform]()`.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
