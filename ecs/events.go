package ecs

// EventType identifies the payload carried by an Event.
type EventType string

const (
	// EventHazardContact carries a HazardContact.
	EventHazardContact EventType = "hazard_contact"
	// EventCollectibleGathered carries a CollectibleGathered.
	EventCollectibleGathered EventType = "collectible_gathered"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// HazardContact is emitted when a player's contact with a hazard begins.
type HazardContact struct {
	Player Entity
}

// CollectibleGathered is emitted when a player's contact with a collectible
// begins. Consumers must tolerate the same collectible arriving twice.
type CollectibleGathered struct {
	Player      Entity
	Collectible Entity
}

// EventQueue is a simple FIFO queue cleared at the end of every tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Of returns the queued events of one type without consuming them, so every
// system later in the tick sees the same events.
func (q *EventQueue) Of(t EventType) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Type == t {
			out = append(out, evt)
		}
	}
	return out
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
