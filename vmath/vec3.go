package vmath

import (
	"math"
)

// normEpsilon guards Normalize against division blow-up on near-zero
// vectors. Inputs below this magnitude are returned unchanged.
const normEpsilon = 1e-12

// Vec3 is a float64 3D vector.
// World convention: X = right, Y = up, Z = forward.
type Vec3 struct {
	X, Y, Z float64
}

func Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func Scale(v Vec3, s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func Dot(a, b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns a × b (right-handed).
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func MagSq(v Vec3) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func Mag(v Vec3) float64 {
	return math.Sqrt(MagSq(v))
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec3) float64 {
	return Mag(Sub(a, b))
}

// Normalize returns v scaled to unit length. Near-zero vectors are
// returned unchanged rather than dividing by zero.
func Normalize(v Vec3) Vec3 {
	mag := Mag(v)
	if mag < normEpsilon {
		return v
	}
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Lerp returns a + (b-a)*t.
func Lerp(a, b Vec3, t float64) Vec3 {
	return Add(a, Scale(Sub(b, a), t))
}

// Flatten returns v with its Y component zeroed, projecting the point
// onto the ground plane.
func Flatten(v Vec3) Vec3 {
	return Vec3{v.X, 0, v.Z}
}
