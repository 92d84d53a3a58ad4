package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/santaclimb/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if w.Len() != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, w.Len())
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should be a no-op")
				}
			}
		})
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := w.CreateEntity()
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	w.DestroyEntity(old)

	reused := w.CreateEntity()
	if reused.id() != old.id() {
		t.Fatalf("expected slot reuse, got %s after %s", reused, old)
	}
	if reused == old {
		t.Fatalf("reused handle must differ by generation")
	}
	if Has(w, reused, h.Kind()) {
		t.Fatalf("component leaked into reused slot")
	}
	if _, ok := Get(w, old, h.Kind()); ok {
		t.Fatalf("stale handle should not resolve")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	if err := Add(w, e, component.ComponentKind[int]{}, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	if err := Add[int](w, e, component.NewComponentKind[int](), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "mutation_through_pointer",
			setup: func() error {
				return Add(w, e2, h1.Kind(), intPtr(1))
			},
			check: func(t *testing.T) {
				v, _ := Get(w, e2, h1.Kind())
				*v = 5
				again, _ := Get(w, e2, h1.Kind())
				if *again != 5 {
					t.Fatalf("expected mutation to stick, got %d", *again)
				}
			},
			teardown: func() bool { return Remove(w, e2, h1.Kind()) },
		},
		{
			name: "query_intersection",
			setup: func() error {
				for _, e := range []Entity{e1, e2, e3} {
					if err := Add(w, e, h1.Kind(), intPtr(1)); err != nil {
						return err
					}
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				got := w.Query(h1.Kind(), h2.Kind())
				if len(got) != 1 || got[0] != e2 {
					t.Fatalf("expected only e2, got %v", got)
				}
				first, ok := w.First(h2.Kind(), h1.Kind())
				if !ok || first != e2 {
					t.Fatalf("expected First to find e2, got %v ok=%v", first, ok)
				}
			},
			teardown: func() bool { return Remove(w, e2, h2.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestForEach(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		e1 := w.CreateEntity()
		e2 := w.CreateEntity()
		e3 := w.CreateEntity()

		if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		var ents []Entity
		ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
		set := toSet(ents)

		if _, ok := set[e1]; !ok {
			t.Fatalf("expected e1 in ForEach result")
		}
		if _, ok := set[e3]; !ok {
			t.Fatalf("expected e3 in ForEach result")
		}
		if _, ok := set[e2]; ok {
			t.Fatalf("did not expect e2 in ForEach result")
		}
	})

	t.Run("destroy_while_iterating", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()
		for i := 0; i < 4; i++ {
			if err := Add(w, w.CreateEntity(), h.Kind(), intPtr(i)); err != nil {
				t.Fatal(err)
			}
		}

		visited := 0
		ForEach(w, h.Kind(), func(e Entity, _ *int) {
			visited++
			w.DestroyEntity(e)
		})
		if visited != 4 || w.Len() != 0 {
			t.Fatalf("expected 4 visits and empty world, got %d visits, %d alive", visited, w.Len())
		}
	})
}

type countingSystem struct {
	seen []EventType
}

func (s *countingSystem) Update(w *World) {
	for _, evt := range w.Events().Of(EventHazardContact) {
		s.seen = append(s.seen, evt.Type)
	}
}

type pushingSystem struct{}

func (pushingSystem) Update(w *World) {
	w.Events().Push(Event{Type: EventHazardContact, Data: HazardContact{}})
}

func TestEntityString(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.DestroyEntity(e)
	e = w.CreateEntity()
	if got := e.String(); got != "1.1" {
		t.Fatalf("expected 1.1, got %s", got)
	}
	var none Entity
	if none.Valid() {
		t.Fatalf("zero entity should not be valid")
	}
}

func TestSystemsRunInOrder(t *testing.T) {
	w := NewWorld()
	var order []int
	for i := 0; i < 3; i++ {
		w.AddSystem(SystemFunc(func(*World) { order = append(order, i) }))
	}
	w.AddSystem(nil)
	w.Update()
	if len(order) != 3 || order[0] != 0 || order[2] != 2 {
		t.Fatalf("expected systems in insertion order, got %v", order)
	}
}

func TestEventsFlushAfterUpdate(t *testing.T) {
	w := NewWorld()
	reader := &countingSystem{}
	w.AddSystem(pushingSystem{})
	w.AddSystem(reader)
	w.AddSystem(reader)

	w.Update()
	if len(reader.seen) != 2 {
		t.Fatalf("expected both readers to see the event, got %d", len(reader.seen))
	}
	if got := w.Events().Drain(); got != nil {
		t.Fatalf("expected queue flushed after update, got %v", got)
	}
	if w.Tick() != 1 {
		t.Fatalf("expected tick 1, got %d", w.Tick())
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}
