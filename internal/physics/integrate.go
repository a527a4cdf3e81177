package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// integrate advances every non-kinematic body by dt. Gravity is a uniform
// acceleration, so mass never appears here; it only matters when two bodies
// trade impulses. The grounded flag consumed here is the previous tick's
// classification, which is why friction takes hold the tick after landing.
func (w *World) integrate(dt float32, ids []string) {
	for _, id := range ids {
		b := w.bodies[id]
		if b.Kinematic {
			continue
		}

		if !b.Grounded {
			b.Acceleration.Y = w.gravity
		} else {
			// On the ground, horizontal motion bleeds off instead.
			damp := 1 - b.Friction*dt
			if damp < 0 {
				damp = 0
			}
			b.Velocity.X *= damp
			b.Velocity.Z *= damp
		}

		b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(b.Acceleration, dt))

		// Stability valve, not a gameplay limit: direction is preserved,
		// magnitude truncated. Keeps dt spikes from launching bodies.
		b.Velocity = clampLength(b.Velocity, w.maxVelocity)

		b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(b.Velocity, dt))
		b.Acceleration = rl.Vector3{}
	}
}
