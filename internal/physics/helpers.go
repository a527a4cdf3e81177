package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// clampLength truncates v to the given magnitude, preserving direction.
func clampLength(v rl.Vector3, maxLen float32) rl.Vector3 {
	lenSq := v.X*v.X + v.Y*v.Y + v.Z*v.Z
	if lenSq <= maxLen*maxLen {
		return v
	}
	return rl.Vector3Scale(v, maxLen/math32.Sqrt(lenSq))
}

// normalizeOrZero returns the unit vector of v, or zero for a zero vector.
func normalizeOrZero(v rl.Vector3) rl.Vector3 {
	lenSq := v.X*v.X + v.Y*v.Y + v.Z*v.Z
	if lenSq == 0 {
		return rl.Vector3{}
	}
	return rl.Vector3Scale(v, 1/math32.Sqrt(lenSq))
}
