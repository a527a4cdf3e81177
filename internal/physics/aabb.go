package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// BoxContact tests two boxes given by center position and full size, and
// returns the contact or nil when they are separated. An axis overlap at or
// below tolerance counts as separated; the tolerance absorbs float jitter so
// a freshly resolved contact is not re-detected the same tick.
//
// The separating axis is the one with the smallest positive overlap; ties
// resolve X, then Y, then Z. The normal is ±1 on that axis and points from
// B toward A. The contact point is the midpoint of the two centers, an
// approximation that is good enough for box-on-box impulses.
func BoxContact(posA, sizeA, posB, sizeB rl.Vector3, tolerance float32) *Contact {
	a := NewAABBFromCenter(posA, sizeA)
	b := NewAABBFromCenter(posB, sizeB)

	overlapX := math32.Min(a.Max.X, b.Max.X) - math32.Max(a.Min.X, b.Min.X)
	overlapY := math32.Min(a.Max.Y, b.Max.Y) - math32.Max(a.Min.Y, b.Min.Y)
	overlapZ := math32.Min(a.Max.Z, b.Max.Z) - math32.Max(a.Min.Z, b.Min.Z)

	if overlapX <= tolerance || overlapY <= tolerance || overlapZ <= tolerance {
		return nil
	}

	// Smallest overlap picks the push-out axis. Strict comparisons keep the
	// X, Y, Z tie-break order.
	depth := overlapX
	axis := 0
	if overlapY < depth {
		depth = overlapY
		axis = 1
	}
	if overlapZ < depth {
		depth = overlapZ
		axis = 2
	}

	var normal rl.Vector3
	switch axis {
	case 0:
		normal.X = axisSign(posA.X, posB.X)
	case 1:
		normal.Y = axisSign(posA.Y, posB.Y)
	case 2:
		normal.Z = axisSign(posA.Z, posB.Z)
	}

	return &Contact{
		Normal: normal,
		Depth:  depth,
		Point:  rl.Vector3Scale(rl.Vector3Add(posA, posB), 0.5),
	}
}

// axisSign orients the normal from B toward A on the chosen axis.
func axisSign(a, b float32) float32 {
	if a >= b {
		return 1
	}
	return -1
}
