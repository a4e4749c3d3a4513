package debugkit

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Small vector helpers that mgl32 doesn't ship.

func Midpoint(a, b mgl32.Vec3) mgl32.Vec3 {
	return a.Add(b).Mul(0.5)
}

func Lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func DistanceSquared(a, b mgl32.Vec3) float32 {
	d := b.Sub(a)
	return d.Dot(d)
}

func Distance(a, b mgl32.Vec3) float32 {
	return float32(math.Sqrt(float64(DistanceSquared(a, b))))
}

// ProjectOnto returns the projection of v onto the direction of onto.
// Panics when onto is the zero vector.
func ProjectOnto(v, onto mgl32.Vec3) mgl32.Vec3 {
	lenSq := onto.Dot(onto)
	if lenSq == 0 {
		panic("cannot project onto the zero vector")
	}
	return onto.Mul(v.Dot(onto) / lenSq)
}

const unitTolerance = 1e-4

// IsUnitVector reports whether v has length 1 within a small tolerance.
func IsUnitVector(v mgl32.Vec3) bool {
	lenSq := v.Dot(v)
	return float32(math.Abs(float64(lenSq-1))) < unitTolerance
}

// AxisVector returns the unit basis vector for axis index 0, 1 or 2.
func AxisVector(axis int) mgl32.Vec3 {
	switch axis {
	case 0:
		return mgl32.Vec3{1, 0, 0}
	case 1:
		return mgl32.Vec3{0, 1, 0}
	case 2:
		return mgl32.Vec3{0, 0, 1}
	}
	panic("axis index must be 0, 1 or 2")
}
