package vmath

// nearClip rejects points behind or degenerately close to the eye.
// Not an error: off-sight geometry is a normal outcome.
const nearClip = 0.5

// ProjectToSight maps a world point into sight-relative offsets using a
// pinhole projection. focal is the scale in screen units per unit of
// tangent (sight radius / tan(half FOV)). The returned Y is positive
// downward per screen convention. ok is false when the point is behind
// the near clip plane.
func ProjectToSight(point, eye Vec3, b Basis, focal float64) (sx, sy float64, ok bool) {
	delta := Sub(point, eye)

	z := Dot(delta, b.Forward)
	if z < nearClip {
		return 0, 0, false
	}

	x := Dot(delta, b.Right)
	y := Dot(delta, b.Up)

	return x / z * focal, -y / z * focal, true
}
