package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/santaclimb/ecs"
	"github.com/milk9111/santaclimb/ecs/component"
)

// Body is the part of a simulated body the controller commands.
type Body interface {
	Velocity() (x, y float64)
	SetVelocity(x, y float64)
	SetGravityEnabled(enabled bool)
}

// ControllerIntent is what one controller step asks the presentation and
// scoring collaborators to do.
type ControllerIntent struct {
	// Clip is empty when the current clip should keep playing.
	Clip        string
	RestartClip bool
	Facing      component.Facing
	// HazardContact is set when a hazard contact began this step.
	HazardContact bool
	// Gathered lists collectibles whose contact began this step.
	Gathered []ecs.Entity
}

// StepController advances one player by one tick: contact transitions, then
// horizontal movement or climbing, then the jump, then contact side effects.
func StepController(st *component.ControllerState, cfg component.MovementConfig, in component.Input, contacts ecs.ContactSummary, body Body) ControllerIntent {
	var intent ControllerIntent
	ctx := &playerStateContext{
		State:    st,
		Config:   cfg,
		Input:    in,
		Contacts: contacts,
		Body:     body,
		Intent:   &intent,
	}

	applyContactTransitions(ctx)
	playerStateFor(st.Mode).Update(ctx)
	tryJump(ctx)

	intent.Facing = st.Facing
	intent.HazardContact = contacts.Began.Has(component.TagHazard)
	if contacts.Began.Has(component.TagCollectible) {
		intent.Gathered = append(intent.Gathered, contacts.Collectibles...)
	}
	return intent
}

// PlayerControllerSystem runs StepController for every player entity against
// the contacts of the latest physics step.
type PlayerControllerSystem struct {
	Debug bool
}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := w.Query(
		component.PlayerTagComponent.Kind(),
		component.ControllerStateComponent.Kind(),
		component.InputComponent.Kind(),
		component.MovementComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
	)
	for _, e := range entities {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok || bodyComp.Body == nil {
			// not synced into the space yet
			continue
		}
		state, _ := ecs.Get(w, e, component.ControllerStateComponent.Kind())
		input, _ := ecs.Get(w, e, component.InputComponent.Kind())
		movement, _ := ecs.Get(w, e, component.MovementComponent.Kind())

		before := state.Mode
		summary := ClassifyContacts(e, w.Contacts())
		intent := StepController(state, movement.Config, *input, summary, &playerBody{w: w, e: e, body: bodyComp.Body})
		if p.Debug && state.Mode != before {
			log.Printf("player %s: %s -> %s (jumps=%d)", e, before, state.Mode, state.JumpCount)
		}

		bodyComp.Body.SetAngle(0)
		bodyComp.Body.SetAngularVelocity(0)

		if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			anim.Play(intent.Clip, intent.RestartClip)
			anim.FlipX = intent.Facing == component.FacingLeft
		}

		events := w.Events()
		if intent.HazardContact {
			events.Push(ecs.Event{Type: ecs.EventHazardContact, Data: ecs.HazardContact{Player: e}})
		}
		for _, c := range intent.Gathered {
			events.Push(ecs.Event{Type: ecs.EventCollectibleGathered, Data: ecs.CollectibleGathered{Player: e, Collectible: c}})
		}
	}
}

// playerBody commands a cp body; gravity goes through the GravityScale
// component so the physics system applies it on the next step.
type playerBody struct {
	w    *ecs.World
	e    ecs.Entity
	body *cp.Body
}

func (b *playerBody) Velocity() (float64, float64) {
	v := b.body.Velocity()
	return v.X, v.Y
}

func (b *playerBody) SetVelocity(x, y float64) {
	b.body.SetVelocity(x, y)
}

func (b *playerBody) SetGravityEnabled(enabled bool) {
	scale := 0.0
	if enabled {
		scale = 1
	}
	if gs, ok := ecs.Get(b.w, b.e, component.GravityScaleComponent.Kind()); ok {
		gs.Scale = scale
		return
	}
	if err := ecs.Add(b.w, b.e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: scale}); err != nil {
		panic("player controller: set gravity scale: " + err.Error())
	}
}
