package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"fighter3d/internal/config"
)

func newTestWorld() *World {
	return NewWorld(config.Default())
}

func TestGravityAppliesExactlyPerTick(t *testing.T) {
	w := newTestWorld()
	cfg := config.Default()
	dt := cfg.Physics.FixedTimestep

	init := w.DefaultBodyInit()
	init.Position = rl.Vector3{Y: 20}
	init.Size = rl.Vector3{X: 1, Y: 1, Z: 1}
	b := w.AddRigidBody("faller", init)

	w.Step(dt)

	want := cfg.Physics.Gravity * dt
	if b.Velocity.Y != want {
		t.Errorf("velocity.Y after one tick = %f, want gravity*dt = %f", b.Velocity.Y, want)
	}
	if b.Position.Y >= 20 {
		t.Errorf("body should have fallen, position.Y = %f", b.Position.Y)
	}
}

func TestGroundFrictionScalesHorizontalVelocity(t *testing.T) {
	w := newTestWorld()
	dt := config.Default().Physics.FixedTimestep
	friction := float32(0.8)

	init := w.DefaultBodyInit()
	init.Position = rl.Vector3{Y: 20} // away from any geometry
	init.Size = rl.Vector3{X: 1, Y: 1, Z: 1}
	init.Friction = friction
	b := w.AddRigidBody("slider", init)
	b.Velocity = rl.Vector3{X: 3, Z: 4}
	b.Grounded = true

	w.Step(dt)

	damp := 1 - friction*dt
	if b.Velocity.X != 3*damp {
		t.Errorf("velocity.X = %f, want %f", b.Velocity.X, 3*damp)
	}
	if b.Velocity.Z != 4*damp {
		t.Errorf("velocity.Z = %f, want %f", b.Velocity.Z, 4*damp)
	}
	if b.Velocity.Y != 0 {
		t.Errorf("grounded body should not accumulate gravity, velocity.Y = %f", b.Velocity.Y)
	}
}

func TestVelocityClampedToMax(t *testing.T) {
	w := newTestWorld()
	cfg := config.Default()

	init := w.DefaultBodyInit()
	init.Position = rl.Vector3{Y: 30}
	init.Size = rl.Vector3{X: 1, Y: 1, Z: 1}
	init.Velocity = rl.Vector3{X: 1000, Y: -500, Z: 250}
	b := w.AddRigidBody("bullet", init)

	w.Step(cfg.Physics.FixedTimestep)

	speed := rl.Vector3Length(b.Velocity)
	if speed > cfg.Physics.MaxVelocity+0.001 {
		t.Errorf("speed after tick = %f, want <= %f", speed, cfg.Physics.MaxVelocity)
	}
	if b.Velocity.X <= 0 {
		t.Errorf("clamp should preserve direction, velocity.X = %f", b.Velocity.X)
	}
}

func TestZeroTimestepIsNoOp(t *testing.T) {
	w := newTestWorld()
	init := w.DefaultBodyInit()
	init.Position = rl.Vector3{Y: 20}
	init.Size = rl.Vector3{X: 1, Y: 1, Z: 1}
	init.Velocity = rl.Vector3{X: 5}
	b := w.AddRigidBody("frozen", init)

	events := w.Step(0)

	if len(events) != 0 {
		t.Errorf("dt=0 should produce no events, got %d", len(events))
	}
	if b.Position.X != 0 || b.Position.Y != 20 {
		t.Errorf("dt=0 should not move bodies, position = %+v", b.Position)
	}
	if b.Velocity.X != 5 || b.Velocity.Y != 0 {
		t.Errorf("dt=0 should not change velocity, velocity = %+v", b.Velocity)
	}

	if w.Step(-1) != nil {
		t.Error("negative dt should behave like dt=0")
	}
}

func TestKinematicBodySkipsIntegration(t *testing.T) {
	w := newTestWorld()
	init := w.DefaultBodyInit()
	init.Position = rl.Vector3{Y: 15}
	init.Size = rl.Vector3{X: 2, Y: 1, Z: 2}
	init.Kinematic = true
	b := w.AddRigidBody("platform", init)

	for i := 0; i < 10; i++ {
		w.Step(config.Default().Physics.FixedTimestep)
	}

	if b.Position.Y != 15 {
		t.Errorf("kinematic body must not fall, position.Y = %f", b.Position.Y)
	}
	if b.Velocity.Y != 0 {
		t.Errorf("kinematic body must not gain velocity, velocity.Y = %f", b.Velocity.Y)
	}
}
