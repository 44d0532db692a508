package vmath

import (
	"math"
)

// worldUp is the global up axis used to derive the view basis.
var worldUp = Vec3{0, 1, 0}

// Basis is an orthonormal right-handed camera frame.
type Basis struct {
	Forward, Right, Up Vec3
}

// ViewBasis builds the aim frame from gun angles.
// Traverse is yaw from +Z, elevation is pitch up from horizontal,
// both in radians. Right = forward × worldUp keeps screen-X increasing
// rightward. Degenerate at elevation ±90°, which the gun never reaches
// because elevation is clamped to a narrow range.
func ViewBasis(elevation, traverse float64) Basis {
	ce := math.Cos(elevation)
	se := math.Sin(elevation)
	ct := math.Cos(traverse)
	st := math.Sin(traverse)

	forward := Vec3{st * ce, se, ct * ce}
	right := Normalize(Cross(forward, worldUp))
	up := Cross(right, forward) // already unit length

	return Basis{Forward: forward, Right: right, Up: up}
}
