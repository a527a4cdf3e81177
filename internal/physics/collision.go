package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// pairContact is one detected overlap queued for resolution. Exactly one of
// s (static contact) or b (rigid-rigid contact) is set.
type pairContact struct {
	a *RigidBody
	b *RigidBody
	s *StaticBody
	c Contact
}

// masksAllow applies the layer filter: each side's mask must select the
// other's layer. Zero masks fail open into no collision; nothing validates
// them.
func masksAllow(layerA, maskA, layerB, maskB uint32) bool {
	return maskA&layerB != 0 && maskB&layerA != 0
}

// detect scans every rigid body against every static body, then every
// unordered rigid pair, in id order. Brute force over both registries; at
// arena body counts the O(n²) scan is cheaper than maintaining any
// acceleration structure.
func (w *World) detect(ids []string) []pairContact {
	var contacts []pairContact

	staticIDs := w.staticIDs()
	for _, id := range ids {
		a := w.bodies[id]
		for _, sid := range staticIDs {
			s := w.statics[sid]
			if !masksAllow(a.Layer, a.Mask, s.Layer, s.Mask) {
				continue
			}
			if c := BoxContact(a.Position, a.Size, s.Position, s.Size, w.tolerance); c != nil {
				contacts = append(contacts, pairContact{a: a, s: s, c: *c})
			}
		}
	}

	for i := 0; i < len(ids); i++ {
		a := w.bodies[ids[i]]
		for j := i + 1; j < len(ids); j++ {
			b := w.bodies[ids[j]]
			if !masksAllow(a.Layer, a.Mask, b.Layer, b.Mask) {
				continue
			}
			if c := BoxContact(a.Position, a.Size, b.Position, b.Size, w.tolerance); c != nil {
				contacts = append(contacts, pairContact{a: a, b: b, c: *c})
			}
		}
	}
	return contacts
}

// DetectContacts reports every currently overlapping, filter-passing pair
// without resolving anything. Diagnostics surface; repeated calls with no
// intervening state change return identical sets.
func (w *World) DetectContacts() []PairContact {
	raw := w.detect(w.rigidIDs())
	out := make([]PairContact, 0, len(raw))
	for _, pc := range raw {
		other := ""
		if pc.s != nil {
			other = pc.s.ID
		} else {
			other = pc.b.ID
		}
		out = append(out, PairContact{BodyID: pc.a.ID, OtherID: other, Contact: pc.c})
	}
	return out
}

func (w *World) resolve(pc *pairContact) {
	if pc.s != nil {
		w.resolveStatic(pc.a, pc.s, pc.c)
		w.events = append(w.events, Event{Kind: EventCollision, BodyID: pc.a.ID, OtherID: pc.s.ID, Contact: pc.c})
		return
	}
	w.resolveRigid(pc.a, pc.b, pc.c)
	w.events = append(w.events, Event{Kind: EventCollision, BodyID: pc.a.ID, OtherID: pc.b.ID, Contact: pc.c})
}

// resolveStatic pushes the rigid body fully out along the normal (statics
// never move) and bounces the approaching velocity component. Contact with
// the ground body on an upward-enough normal classifies the body grounded.
func (w *World) resolveStatic(a *RigidBody, s *StaticBody, c Contact) {
	a.Position = rl.Vector3Add(a.Position, rl.Vector3Scale(c.Normal, c.Depth))
	if a.Kinematic {
		// Kinematic bodies are pushed out of geometry but keep whatever
		// velocity their driver gave them.
		return
	}

	vn := rl.Vector3DotProduct(a.Velocity, c.Normal)
	if vn < 0 {
		e := math32.Min(a.Restitution, s.Restitution)
		a.Velocity = rl.Vector3Add(a.Velocity, rl.Vector3Scale(c.Normal, -(1+e)*vn))
	}

	if s.ID == GroundID && c.Normal.Y > 0.5 {
		a.Grounded = true
		// Bounce first, then snap: a small restitution still hops, a dead
		// landing sticks.
		if math32.Abs(a.Velocity.Y) <= groundSnapVelocity {
			a.Velocity.Y = 0
		}
	}
}

// resolveRigid splits the positional correction between both bodies
// weighted by the other's mass, then trades a momentum-conserving impulse
// along the normal. A kinematic side acts as infinite mass: it never moves,
// the dynamic side absorbs the whole correction.
func (w *World) resolveRigid(a, b *RigidBody, c Contact) {
	switch {
	case a.Kinematic && b.Kinematic:
		// Detected (the event still fires) but nothing to resolve.
		return
	case b.Kinematic:
		w.resolveAgainstKinematic(a, b, c.Normal, c.Depth)
		return
	case a.Kinematic:
		// Same contact seen from b: flip the normal.
		w.resolveAgainstKinematic(b, a, rl.Vector3Scale(c.Normal, -1), c.Depth)
		return
	}

	total := a.Mass + b.Mass
	a.Position = rl.Vector3Add(a.Position, rl.Vector3Scale(c.Normal, c.Depth*(b.Mass/total)))
	b.Position = rl.Vector3Subtract(b.Position, rl.Vector3Scale(c.Normal, c.Depth*(a.Mass/total)))

	relVel := rl.Vector3Subtract(a.Velocity, b.Velocity)
	vn := rl.Vector3DotProduct(relVel, c.Normal)
	if vn >= 0 {
		// Already separating.
		return
	}

	e := math32.Min(a.Restitution, b.Restitution)
	j := -(1 + e) * vn / (1/a.Mass + 1/b.Mass)
	impulse := rl.Vector3Scale(c.Normal, j)
	a.Velocity = rl.Vector3Add(a.Velocity, rl.Vector3Scale(impulse, 1/a.Mass))
	b.Velocity = rl.Vector3Subtract(b.Velocity, rl.Vector3Scale(impulse, 1/b.Mass))
}

// resolveAgainstKinematic resolves dynamic body a against kinematic body k.
// The normal points from k toward a.
func (w *World) resolveAgainstKinematic(a, k *RigidBody, normal rl.Vector3, depth float32) {
	a.Position = rl.Vector3Add(a.Position, rl.Vector3Scale(normal, depth))

	relVel := rl.Vector3Subtract(a.Velocity, k.Velocity)
	vn := rl.Vector3DotProduct(relVel, normal)
	if vn >= 0 {
		return
	}
	e := math32.Min(a.Restitution, k.Restitution)
	a.Velocity = rl.Vector3Add(a.Velocity, rl.Vector3Scale(normal, -(1+e)*vn))
}
