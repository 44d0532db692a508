package vmath

import (
	"math"
)

// parallelEpsilon treats a segment direction component below this as
// parallel to the slab on that axis.
const parallelEpsilon = 1e-12

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max Vec3
}

// Contains reports whether p lies inside the box (inclusive).
func (b AABB) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// SegmentAABB tests the segment p0→p1 against box using the slab
// method over the parameter range [0,1]. Returns the first
// intersection point along the segment, or ok=false.
func SegmentAABB(p0, p1 Vec3, box AABB) (Vec3, bool) {
	d := Sub(p1, p0)
	tmin, tmax := 0.0, 1.0

	dc := [3]float64{d.X, d.Y, d.Z}
	pc := [3]float64{p0.X, p0.Y, p0.Z}
	mn := [3]float64{box.Min.X, box.Min.Y, box.Min.Z}
	mx := [3]float64{box.Max.X, box.Max.Y, box.Max.Z}

	for i := 0; i < 3; i++ {
		if math.Abs(dc[i]) < parallelEpsilon {
			// Parallel to slab: reject unless start is inside it
			if pc[i] < mn[i] || pc[i] > mx[i] {
				return Vec3{}, false
			}
			continue
		}
		invD := 1.0 / dc[i]
		t1 := (mn[i] - pc[i]) * invD
		t2 := (mx[i] - pc[i]) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return Vec3{}, false
		}
	}

	return Add(p0, Scale(d, tmin)), true
}

// GroundCrossing detects a downward crossing of the Y=0 plane between
// two positions and returns the interpolated crossing point with Y
// forced to exactly zero. ok=false when no crossing occurred.
func GroundCrossing(prev, curr Vec3) (Vec3, bool) {
	if !(curr.Y <= 0 && prev.Y > 0) {
		return Vec3{}, false
	}
	t := prev.Y / (prev.Y - curr.Y)
	hit := Lerp(prev, curr, t)
	hit.Y = 0
	return hit, true
}
