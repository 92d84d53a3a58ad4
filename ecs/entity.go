package ecs

import "fmt"

// Entity is a generational handle. The low half is the slot, the high half
// the generation the slot had when the handle was issued, so a handle kept
// past DestroyEntity never resolves to the slot's next occupant.
type Entity uint64

type entityID uint32
type generation uint32

const slotBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<slotBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(e & (1<<slotBits - 1))
}

func (e Entity) generation() generation {
	return generation(e >> slotBits)
}

// String formats the handle as slot.generation, e.g. "3.1".
func (e Entity) String() string {
	return fmt.Sprintf("%d.%d", e.id(), e.generation())
}

// Valid reports whether the handle was ever issued by a world. Slot 0 is
// never used, so the zero Entity means "none".
func (e Entity) Valid() bool {
	return e.id() != 0
}
