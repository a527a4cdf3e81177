package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Contact describes one box-box overlap. Contacts are recomputed every tick
// and never cached across ticks.
type Contact struct {
	Normal rl.Vector3 // unit axis normal, exactly one ±1 component
	Depth  float32    // positive penetration along Normal
	Point  rl.Vector3 // approximate contact point
}

type EventKind int

const (
	// EventCollision reports one resolved pair. BodyID is the rigid body,
	// OtherID the static body or second rigid body.
	EventCollision EventKind = iota
	// EventFallOut reports a body crossing the lower world bound. Contact
	// is zero; OtherID is empty.
	EventFallOut
)

// Event is a tick result drained by the caller after Step. Delivering
// results as a list instead of firing callbacks mid-resolution keeps
// gameplay code from mutating the registries while the world iterates them.
type Event struct {
	Kind    EventKind
	BodyID  string
	OtherID string
	Contact Contact
}

// PairContact identifies one overlapping, filter-passing pair at this
// instant. Detection is pure: calling it repeatedly without state changes
// returns identical sets.
type PairContact struct {
	BodyID  string
	OtherID string
	Contact Contact
}
