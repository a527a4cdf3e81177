package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the tuning file path, relative to the process working directory.
const DefaultPath = "config/physics.yaml"

// Physics holds the simulation tuning values. All of them have working
// defaults; the file only needs to name what it changes.
type Physics struct {
	Gravity        float32 `yaml:"gravity"`         // units/s², negative is down
	MaxVelocity    float32 `yaml:"max_velocity"`    // speed cap, stability valve
	FixedTimestep  float32 `yaml:"fixed_timestep"`  // seconds per tick
	GroundLevel    float32 `yaml:"ground_level"`    // top surface of the arena floor
	RecoveryHeight float32 `yaml:"recovery_height"` // respawn height above ground after a fall-out
	Restitution    float32 `yaml:"restitution"`     // default bounciness for new bodies
	Friction       float32 `yaml:"friction"`        // default ground friction for new bodies
	Tolerance      float32 `yaml:"tolerance"`       // overlap below this is not a collision
}

// Bounds is the axis-aligned playable region.
type Bounds struct {
	Min [3]float32 `yaml:"min"`
	Max [3]float32 `yaml:"max"`
}

type Config struct {
	Physics Physics `yaml:"physics"`
	Bounds  Bounds  `yaml:"bounds"`
}

// Default returns the arena tuning the game ships with.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:        -20,
			MaxVelocity:    50,
			FixedTimestep:  1.0 / 60.0,
			GroundLevel:    0,
			RecoveryHeight: 10,
			Restitution:    0.1,
			Friction:       0.8,
			Tolerance:      0.01,
		},
		Bounds: Bounds{
			Min: [3]float32{-30, -20, -30},
			Max: [3]float32{30, 40, 30},
		},
	}
}

// Load reads tuning from a YAML file. Values decode over Default(), so a
// partial file overrides only the keys it names. A missing or invalid file
// yields Default(); the simulation must come up regardless.
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default()
	}
	return sanitize(cfg)
}

// sanitize falls back to defaults for values the simulation cannot run with.
func sanitize(cfg Config) Config {
	def := Default()
	if cfg.Physics.FixedTimestep <= 0 {
		cfg.Physics.FixedTimestep = def.Physics.FixedTimestep
	}
	if cfg.Physics.MaxVelocity <= 0 {
		cfg.Physics.MaxVelocity = def.Physics.MaxVelocity
	}
	if cfg.Physics.Tolerance < 0 {
		cfg.Physics.Tolerance = def.Physics.Tolerance
	}
	return cfg
}
