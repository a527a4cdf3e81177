// Stress test for the arena physics core: full-tick cost of the brute-force
// pair scan at growing body counts.
package main

import (
	"fmt"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"fighter3d/internal/config"
	"fighter3d/internal/physics"
)

const (
	warmupTicks = 30
	timedTicks  = 300
)

func main() {
	cfg := config.Load(config.DefaultPath)
	fmt.Printf("dt=%.4fs gravity=%.1f maxVelocity=%.1f\n\n",
		cfg.Physics.FixedTimestep, cfg.Physics.Gravity, cfg.Physics.MaxVelocity)

	testCounts := []int{8, 16, 32, 64, 128, 256}
	for _, count := range testCounts {
		stepWorld(cfg, count)
	}
}

func stepWorld(cfg config.Config, count int) {
	w := physics.NewWorld(cfg)
	rng := rand.New(rand.NewSource(42)) // consistent results

	bounds := w.WorldBounds()
	for i := 0; i < count; i++ {
		init := w.DefaultBodyInit()
		init.Position = rl.Vector3{
			X: bounds.Min.X + rng.Float32()*(bounds.Max.X-bounds.Min.X),
			Y: 2 + rng.Float32()*20,
			Z: bounds.Min.Z + rng.Float32()*(bounds.Max.Z-bounds.Min.Z),
		}
		init.Size = rl.Vector3{X: 1, Y: 2, Z: 1}
		init.Restitution = rng.Float32() * 0.5
		init.Layer = physics.LayerPlayer
		w.AddRigidBody(fmt.Sprintf("body-%03d", i), init)
	}

	dt := cfg.Physics.FixedTimestep
	for i := 0; i < warmupTicks; i++ {
		w.Step(dt)
	}

	var collisions, fallOuts int
	start := time.Now()
	for i := 0; i < timedTicks; i++ {
		// Random shoves keep bodies moving so the scan never settles into
		// an empty contact set.
		if i%20 == 0 {
			id := fmt.Sprintf("body-%03d", rng.Intn(count))
			dir := rl.Vector3{X: rng.Float32()*2 - 1, Y: rng.Float32(), Z: rng.Float32()*2 - 1}
			w.ApplyKnockback(id, 5+rng.Float32()*15, dir)
		}
		for _, ev := range w.Step(dt) {
			switch ev.Kind {
			case physics.EventCollision:
				collisions++
			case physics.EventFallOut:
				fallOuts++
			}
		}
	}
	elapsed := time.Since(start)
	perTick := elapsed / timedTicks

	fmt.Printf("%4d bodies: %8v/tick (%.0f ticks/s) | %6d contacts | %3d fall-outs\n",
		count, perTick.Round(time.Microsecond),
		float64(time.Second)/float64(perTick), collisions, fallOuts)
}
