package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collision layers. A pair collides only when each body's mask selects the
// other's layer; a zero mask therefore collides with nothing. Masks are
// taken as-is and never validated.
const (
	LayerDefault uint32 = 1 << iota
	LayerPlayer
	LayerGround
	LayerArena
)

// MaskAll collides with every layer.
const MaskAll = ^uint32(0)

// GroundID is the id of the static floor the world creates on startup.
// Only contact with this body can classify a rigid body as grounded.
const GroundID = "ground"

// RigidBody is a dynamic box that integrates every tick. All fields are
// owned and mutated by the World; external entities get pushed copies
// through the sink interfaces and must not be read back for collision.
type RigidBody struct {
	ID           string
	Position     rl.Vector3
	Velocity     rl.Vector3
	Acceleration rl.Vector3 // per-tick, reset to zero after integration
	Size         rl.Vector3 // full box extents
	Mass         float32
	Restitution  float32 // 0 = no bounce, 1 = perfect bounce
	Friction     float32 // 0 = ice, 1 = stops in about a second
	Grounded     bool    // re-derived every tick by the resolver
	Kinematic    bool    // moves only when driven externally, still blocks others
	Layer        uint32
	Mask         uint32

	// Owner is the entity this body reports to. The world only asserts the
	// sink interfaces on it and never treats it as authoritative state.
	Owner any
}

// StaticBody is immovable collidable geometry: the floor, arena walls,
// platforms. Immutable after creation except for removal.
type StaticBody struct {
	ID          string
	Position    rl.Vector3
	Size        rl.Vector3
	Restitution float32
	Friction    float32
	Layer       uint32
	Mask        uint32
}

// BodyInit carries the registration parameters for a rigid body.
// World.DefaultBodyInit pre-fills it with the configured defaults.
type BodyInit struct {
	Position    rl.Vector3
	Velocity    rl.Vector3
	Size        rl.Vector3
	Mass        float32
	Restitution float32
	Friction    float32
	Kinematic   bool
	Layer       uint32
	Mask        uint32
	Owner       any
}

// Sink interfaces owning entities may implement to receive pushed state at
// the end of every tick. Each is optional and asserted independently.
type PositionSink interface {
	SetPosition(rl.Vector3)
}

type VelocitySink interface {
	SetVelocity(rl.Vector3)
}

type GroundedSink interface {
	SetGrounded(bool)
}

// FallOutHandler is notified when its body crosses the lower world bound.
// The game registers knockouts and schedules respawns from here.
type FallOutHandler interface {
	OnFallOut()
}
