package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Bounds is the axis-aligned playable region.
type Bounds struct {
	Min rl.Vector3
	Max rl.Vector3
}

// SetWorldBounds replaces the playable region. Bodies already outside are
// brought back on the next Step.
func (w *World) SetWorldBounds(b Bounds) {
	w.bounds = b
}

// WorldBounds returns the current playable region.
func (w *World) WorldBounds() Bounds {
	return w.bounds
}

// IsWithinBounds reports whether a point lies inside the playable region.
func (w *World) IsWithinBounds(p rl.Vector3) bool {
	return p.X >= w.bounds.Min.X && p.X <= w.bounds.Max.X &&
		p.Y >= w.bounds.Min.Y && p.Y <= w.bounds.Max.Y &&
		p.Z >= w.bounds.Min.Z && p.Z <= w.bounds.Max.Z
}

// enforceBounds runs after resolution. Horizontal walls and the ceiling
// clamp and bounce; the floor of the region is different — crossing it is a
// ring-out. The fallen body is parked back at recovery height with vertical
// motion cleared, the owner is told, and the event is queued for the caller.
func (w *World) enforceBounds(ids []string) {
	for _, id := range ids {
		b := w.bodies[id]
		if b == nil {
			// An earlier fall-out handler may have unregistered this body
			// mid-tick; the id list was captured before callbacks ran.
			continue
		}
		if b.Kinematic {
			continue
		}

		reflectAxis(&b.Position.X, &b.Velocity.X, w.bounds.Min.X, w.bounds.Max.X, b.Restitution)
		reflectAxis(&b.Position.Z, &b.Velocity.Z, w.bounds.Min.Z, w.bounds.Max.Z, b.Restitution)

		if b.Position.Y > w.bounds.Max.Y {
			b.Position.Y = w.bounds.Max.Y
			if b.Velocity.Y > 0 {
				b.Velocity.Y = -b.Velocity.Y * b.Restitution
			}
		}

		if b.Position.Y < w.bounds.Min.Y {
			b.Position.Y = w.groundLevel + w.recoveryHeight
			b.Velocity.Y = 0
			b.Grounded = false
			if h, ok := b.Owner.(FallOutHandler); ok {
				h.OnFallOut()
			}
			w.events = append(w.events, Event{Kind: EventFallOut, BodyID: b.ID})
		}
	}
}

// reflectAxis clamps one position component into [lo, hi] and reflects the
// approaching velocity, scaled by restitution.
func reflectAxis(pos, vel *float32, lo, hi, restitution float32) {
	if *pos < lo {
		*pos = lo
		if *vel < 0 {
			*vel = -*vel * restitution
		}
	} else if *pos > hi {
		*pos = hi
		if *vel > 0 {
			*vel = -*vel * restitution
		}
	}
}
