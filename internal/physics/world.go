package physics

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"fighter3d/internal/config"
)

// groundThickness is the height of the auto-created floor box. Thin enough
// that the minimum-overlap axis against it is always Y for bodies resting
// on top.
const groundThickness = 1.0

// groundSnapVelocity is the post-bounce vertical speed below which a
// grounded body's velocity snaps to zero. Applying the bounce first lets
// small restitutions still produce a visible hop.
const groundSnapVelocity = 0.1

// World owns every body in the simulation. One fixed-timestep Step per host
// frame; no internal goroutines, no locking, exactly one writer per tick.
type World struct {
	gravity        float32
	maxVelocity    float32
	groundLevel    float32
	recoveryHeight float32
	tolerance      float32
	defRestitution float32
	defFriction    float32

	bodies  map[string]*RigidBody
	statics map[string]*StaticBody
	bounds  Bounds

	events []Event // reused across ticks, valid until the next Step
}

// NewWorld builds an empty world from tuning config and installs the
// distinguished ground body: a thin box spanning the arena floor with its
// top face at the configured ground level.
func NewWorld(cfg config.Config) *World {
	w := &World{
		gravity:        cfg.Physics.Gravity,
		maxVelocity:    cfg.Physics.MaxVelocity,
		groundLevel:    cfg.Physics.GroundLevel,
		recoveryHeight: cfg.Physics.RecoveryHeight,
		tolerance:      cfg.Physics.Tolerance,
		defRestitution: cfg.Physics.Restitution,
		defFriction:    cfg.Physics.Friction,
		bodies:         make(map[string]*RigidBody),
		statics:        make(map[string]*StaticBody),
		bounds: Bounds{
			Min: rl.Vector3{X: cfg.Bounds.Min[0], Y: cfg.Bounds.Min[1], Z: cfg.Bounds.Min[2]},
			Max: rl.Vector3{X: cfg.Bounds.Max[0], Y: cfg.Bounds.Max[1], Z: cfg.Bounds.Max[2]},
		},
	}

	spanX := w.bounds.Max.X - w.bounds.Min.X
	spanZ := w.bounds.Max.Z - w.bounds.Min.Z
	w.AddStaticBody(GroundID, StaticBody{
		Position: rl.Vector3{
			X: (w.bounds.Min.X + w.bounds.Max.X) / 2,
			Y: w.groundLevel - groundThickness/2,
			Z: (w.bounds.Min.Z + w.bounds.Max.Z) / 2,
		},
		Size:        rl.Vector3{X: spanX * 2, Y: groundThickness, Z: spanZ * 2},
		Restitution: w.defRestitution,
		Friction:    w.defFriction,
		Layer:       LayerGround,
		Mask:        MaskAll,
	})
	return w
}

// DefaultBodyInit returns a BodyInit pre-filled with the configured
// defaults: zero velocity, mass 1, configured restitution and friction,
// default layer, collide-with-all mask.
func (w *World) DefaultBodyInit() BodyInit {
	return BodyInit{
		Mass:        1,
		Restitution: w.defRestitution,
		Friction:    w.defFriction,
		Layer:       LayerDefault,
		Mask:        MaskAll,
	}
}

// AddRigidBody creates and stores a body under id and returns it.
// Registering an id that already exists silently replaces the stored body;
// callers own their id space and re-registration is how respawn works.
func (w *World) AddRigidBody(id string, init BodyInit) *RigidBody {
	mass := init.Mass
	if mass <= 0 {
		mass = 1
	}
	b := &RigidBody{
		ID:          id,
		Position:    init.Position,
		Velocity:    init.Velocity,
		Size:        init.Size,
		Mass:        mass,
		Restitution: init.Restitution,
		Friction:    init.Friction,
		Kinematic:   init.Kinematic,
		Layer:       init.Layer,
		Mask:        init.Mask,
		Owner:       init.Owner,
	}
	w.bodies[id] = b
	return b
}

// RemoveRigidBody deletes a body by id, reporting whether it existed.
func (w *World) RemoveRigidBody(id string) bool {
	if _, ok := w.bodies[id]; !ok {
		return false
	}
	delete(w.bodies, id)
	return true
}

// GetRigidBody returns the body or nil. Never panics on unknown ids.
func (w *World) GetRigidBody(id string) *RigidBody {
	return w.bodies[id]
}

// AddStaticBody stores immovable geometry under id and returns it.
// Duplicate ids replace, the same as rigid bodies.
func (w *World) AddStaticBody(id string, body StaticBody) *StaticBody {
	body.ID = id
	s := &body
	w.statics[id] = s
	return s
}

// RemoveStaticBody deletes static geometry by id, reporting whether it
// existed. Removing GroundID is allowed; no body can become grounded after.
func (w *World) RemoveStaticBody(id string) bool {
	if _, ok := w.statics[id]; !ok {
		return false
	}
	delete(w.statics, id)
	return true
}

// RigidBodies returns id-sorted value copies of every rigid body for
// diagnostics and tests. Owner references are stripped; mutating the
// returned slice does not touch the simulation.
func (w *World) RigidBodies() []RigidBody {
	out := make([]RigidBody, 0, len(w.bodies))
	for _, id := range w.rigidIDs() {
		b := *w.bodies[id]
		b.Owner = nil
		out = append(out, b)
	}
	return out
}

// StaticBodies returns id-sorted value copies of every static body.
func (w *World) StaticBodies() []StaticBody {
	out := make([]StaticBody, 0, len(w.statics))
	for _, id := range w.staticIDs() {
		out = append(out, *w.statics[id])
	}
	return out
}

// rigidIDs returns the registry keys in sorted order. Map iteration order
// must not leak into contact ordering or the same-input runs stop being
// deterministic.
func (w *World) rigidIDs() []string {
	ids := make([]string, 0, len(w.bodies))
	for id := range w.bodies {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (w *World) staticIDs() []string {
	ids := make([]string, 0, len(w.statics))
	for id := range w.statics {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Step advances the simulation by dt seconds and returns the tick's events
// for the caller to drain. The slice is reused and valid until the next
// Step. dt has already been scaled for slow-motion or pause by the caller;
// dt <= 0 is a no-op, never an error.
//
// Phase order per tick: integrate, detect, resolve, enforce bounds, push
// state to owners. Detection runs to completion before any resolution so
// resolving one contact cannot re-trigger another within the tick.
func (w *World) Step(dt float32) []Event {
	if dt <= 0 {
		return nil
	}
	w.events = w.events[:0]

	ids := w.rigidIDs()
	w.integrate(dt, ids)

	// Grounded is re-derived from this tick's contacts.
	for _, id := range ids {
		w.bodies[id].Grounded = false
	}

	contacts := w.detect(ids)
	for i := range contacts {
		w.resolve(&contacts[i])
	}

	// Impulse exchange can exceed the speed cap (heavy body into a light
	// one); re-clamp so the post-tick invariant holds for what owners see.
	for _, id := range ids {
		b := w.bodies[id]
		if b.Kinematic {
			continue
		}
		b.Velocity = clampLength(b.Velocity, w.maxVelocity)
	}

	w.enforceBounds(ids)
	w.pushState(ids)
	return w.events
}

// pushState delivers position, velocity and grounded state to each body's
// owning entity through whichever sink interfaces it implements.
func (w *World) pushState(ids []string) {
	for _, id := range ids {
		b := w.bodies[id]
		if b == nil || b.Owner == nil {
			// A fall-out handler or earlier sink may have unregistered
			// this body during the tick.
			continue
		}
		if s, ok := b.Owner.(PositionSink); ok {
			s.SetPosition(b.Position)
		}
		if s, ok := b.Owner.(VelocitySink); ok {
			s.SetVelocity(b.Velocity)
		}
		if s, ok := b.Owner.(GroundedSink); ok {
			s.SetGrounded(b.Grounded)
		}
	}
}
