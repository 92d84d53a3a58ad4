package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/santaclimb/ecs"
	"github.com/milk9111/santaclimb/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypePlayerFoot
	collisionTypeSolid
	collisionTypeSensor
	collisionTypeHazard
	collisionTypeOther
)

// physicsStep is the fixed step; tunables are expressed per step.
const physicsStep = 1.0

const footSensorDepth = 2.0

// PhysicsSystem owns the Chipmunk space. Each update it mirrors ECS bodies
// into the space, steps it once and publishes the step's contact events on
// the world.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]shapeRef

	pending []ecs.ContactEvent
	begun   map[shapePair]struct{}
}

type bodyInfo struct {
	body         *cp.Body
	shapes       []*cp.Shape
	static       bool
	gravityScale float64
}

type shapeRef struct {
	entity ecs.Entity
	tag    component.ContactTag
}

type shapePair struct {
	a, b *cp.Shape
}

func NewPhysicsSystem(gravity float64) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return &PhysicsSystem{
		space:    space,
		entities: make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]shapeRef),
		begun:    make(map[shapePair]struct{}),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.syncGravity(w)

	clear(ps.begun)
	ps.space.Step(physicsStep)

	ps.syncTransforms(w)
	w.SetContacts(ps.pending)
	ps.pending = nil
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}
	ps.addContactHandler(collisionTypePlayerFoot, collisionTypeSolid)
	ps.addContactHandler(collisionTypePlayer, collisionTypeSensor)
	ps.addContactHandler(collisionTypePlayer, collisionTypeHazard)
	ps.addContactHandler(collisionTypePlayer, collisionTypeOther)
	ps.handlersReady = true
}

// addContactHandler records begin, active and end events for a pair of
// collision types without changing how the pair collides.
func (ps *PhysicsSystem) addContactHandler(a, b cp.CollisionType) {
	handler := ps.space.NewCollisionHandler(a, b)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if sys, ok := userData.(*PhysicsSystem); ok && sys != nil {
			sys.record(arb, ecs.ContactBegin)
		}
		return true
	}
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if sys, ok := userData.(*PhysicsSystem); ok && sys != nil {
			sys.record(arb, ecs.ContactActive)
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		if sys, ok := userData.(*PhysicsSystem); ok && sys != nil {
			sys.record(arb, ecs.ContactEnd)
		}
	}
}

func (ps *PhysicsSystem) record(arb *cp.Arbiter, phase ecs.ContactPhase) {
	shapeA, shapeB := arb.Shapes()
	pair := shapePair{a: shapeA, b: shapeB}
	switch phase {
	case ecs.ContactBegin:
		ps.begun[pair] = struct{}{}
	case ecs.ContactActive:
		// pre-solve also runs on the step the contact began
		if _, ok := ps.begun[pair]; ok {
			return
		}
	}

	refA := ps.shapes[shapeA]
	refB := ps.shapes[shapeB]
	ps.pending = append(ps.pending, ecs.ContactEvent{
		A:     refA.entity,
		B:     refB.entity,
		TagA:  refA.tag,
		TagB:  refB.tag,
		Phase: phase,
	})
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		if _, exists := ps.entities[e]; exists {
			continue
		}
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())

		tag := component.TagUnclassified
		if tagged, ok := ecs.Get(w, e, component.ContactTaggedComponent.Kind()); ok {
			tag = tagged.Tag
		}
		isPlayer := ecs.Has(w, e, component.PlayerTagComponent.Kind())

		info := ps.createBodyInfo(e, *transform, bodyComp, tag, isPlayer)
		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.shapes[0]
	}
}

func (ps *PhysicsSystem) createBodyInfo(e ecs.Entity, transform component.Transform, bodyComp *component.PhysicsBody, tag component.ContactTag, isPlayer bool) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	if width <= 0 || height <= 0 {
		width = 32
		height = 32
	}

	collisionType := collisionTypeOther
	switch {
	case isPlayer:
		collisionType = collisionTypePlayer
	case bodyComp.Sensor:
		collisionType = collisionTypeSensor
	case tag == component.TagGround:
		collisionType = collisionTypeSolid
	case tag == component.TagHazard:
		collisionType = collisionTypeHazard
	}

	info := &bodyInfo{static: bodyComp.Static, gravityScale: 1}

	if bodyComp.Static {
		bb := cp.BB{
			L: transform.X - width/2,
			B: transform.Y - height/2,
			R: transform.X + width/2,
			T: transform.Y + height/2,
		}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetSensor(bodyComp.Sensor)
		shape.SetCollisionType(collisionType)
		ps.space.AddShape(shape)
		ps.shapes[shape] = shapeRef{entity: e, tag: tag}

		info.body = ps.space.StaticBody
		info.shapes = []*cp.Shape{shape}
		return info
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	moment := cp.MomentForBox(mass, width, height)
	if bodyComp.FixedRotation {
		moment = math.Inf(1)
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, gravity.Mult(info.gravityScale), damping, dt)
	})

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetSensor(bodyComp.Sensor)
	shape.SetCollisionType(collisionType)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	ps.shapes[shape] = shapeRef{entity: e, tag: tag}

	info.body = body
	info.shapes = []*cp.Shape{shape}

	if isPlayer {
		foot := createFootSensor(body, width, height)
		ps.space.AddShape(foot)
		ps.shapes[foot] = shapeRef{entity: e, tag: tag}
		info.shapes = append(info.shapes, foot)
	}

	return info
}

// createFootSensor adds a thin sensor under the body; only it reports ground
// so side and head bumps against tiles do not count as landing.
func createFootSensor(body *cp.Body, width, height float64) *cp.Shape {
	footBB := cp.BB{
		L: -width * 0.45,
		B: height / 2.0,
		R: width * 0.45,
		T: height/2.0 + footSensorDepth,
	}
	foot := cp.NewBox2(body, footBB, 0)
	foot.SetSensor(true)
	foot.SetCollisionType(collisionTypePlayerFoot)
	return foot
}

func (ps *PhysicsSystem) syncGravity(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		info.gravityScale = 1
		if gs, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
			info.gravityScale = gs.Scale
		}
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
	}
}

// cleanupEntities removes the shapes of destroyed entities and of entities
// that dropped their PhysicsBody. Separate callbacks fired here are reported
// with this update's step.
func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		for _, shape := range info.shapes {
			ps.space.RemoveShape(shape)
		}
		if !info.static {
			ps.space.RemoveBody(info.body)
		}
		for _, shape := range info.shapes {
			delete(ps.shapes, shape)
		}
		delete(ps.entities, e)
	}
}
