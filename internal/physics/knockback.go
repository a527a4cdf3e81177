package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// knockbackAirborne is the force magnitude above which a hit always clears
// the grounded flag, even for a purely horizontal shove.
const knockbackAirborne = 1.0

// ApplyKnockback adds force*direction to the body's velocity. The caller
// computes force from accumulated damage; this layer is damage-agnostic.
//
// Direction is normalized here. If the impulse has upward component greater
// than the body's current vertical velocity, the vertical velocity is raised
// to the impulse's, guaranteeing a minimum launch and overriding any
// downward motion. Unknown ids report false with no side effects.
func (w *World) ApplyKnockback(id string, force float32, direction rl.Vector3) bool {
	b, ok := w.bodies[id]
	if !ok {
		return false
	}

	impulse := rl.Vector3Scale(normalizeOrZero(direction), force)
	b.Velocity = rl.Vector3Add(b.Velocity, impulse)

	if impulse.Y > 0 && b.Velocity.Y < impulse.Y {
		b.Velocity.Y = impulse.Y
	}

	if math32.Abs(force) > knockbackAirborne {
		b.Grounded = false
	}
	return true
}
