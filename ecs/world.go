package ecs

import "github.com/milk9111/santaclimb/ecs/component"

// World owns entities, component storage, system order, the per-tick event
// queue and the raw contact events of the last physics step.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	systems  []System
	events   EventQueue
	contacts []ContactEvent
	tick     uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity drops an entity and all of its components. It returns false
// when the handle is stale, which makes repeated destruction a no-op.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.entities.count
}

// AddSystem appends a system to the update order. Systems run in the order
// they were added.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once and then clears the tick's events.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.tick++
	for _, s := range w.systems {
		s.Update(w)
	}
	w.events.flush()
}

// Tick returns the number of completed or running updates.
func (w *World) Tick() uint64 {
	return w.tick
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetContacts publishes the raw contact events of the latest physics step.
func (w *World) SetContacts(events []ContactEvent) {
	w.contacts = events
}

// Contacts returns the raw contact events of the latest physics step.
func (w *World) Contacts() []ContactEvent {
	if w == nil {
		return nil
	}
	return w.contacts
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s := w.stores[id]
	if s == nil && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*SparseSet)
		}
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
