package vmath

import (
	"testing"
)

func TestSegmentAABBVertical(t *testing.T) {
	box := AABB{Min: Vec3{-1, -1, -1}, Max: Vec3{1, 1, 1}}

	hit, ok := SegmentAABB(Vec3{0, 5, 0}, Vec3{0, -5, 0}, box)
	if !ok {
		t.Fatal("vertical segment through box: no intersection")
	}
	want := Vec3{0, 1, 0}
	if !almostEqual(hit.X, want.X, 1e-12) ||
		!almostEqual(hit.Y, want.Y, 1e-12) ||
		!almostEqual(hit.Z, want.Z, 1e-12) {
		t.Errorf("entry point = %v, want %v", hit, want)
	}
}

func TestSegmentAABBMiss(t *testing.T) {
	box := AABB{Min: Vec3{-1, -1, -1}, Max: Vec3{1, 1, 1}}

	// Entirely outside the +X slab
	if _, ok := SegmentAABB(Vec3{2, 5, 0}, Vec3{2, -5, 0}, box); ok {
		t.Error("segment outside X slab intersected, want miss")
	}
	// Stops short of the box
	if _, ok := SegmentAABB(Vec3{0, 5, 0}, Vec3{0, 2, 0}, box); ok {
		t.Error("segment ending before box intersected, want miss")
	}
}

func TestSegmentAABBParallelInsideSlab(t *testing.T) {
	box := AABB{Min: Vec3{-1, -1, -1}, Max: Vec3{1, 1, 1}}

	// Parallel to the X slab but inside it on X and Y
	hit, ok := SegmentAABB(Vec3{0, 0, -5}, Vec3{0, 0, 5}, box)
	if !ok {
		t.Fatal("axial segment through box: no intersection")
	}
	if !almostEqual(hit.Z, -1, 1e-12) {
		t.Errorf("entry Z = %v, want -1", hit.Z)
	}
}

func TestSegmentAABBStartInside(t *testing.T) {
	box := AABB{Min: Vec3{-1, -1, -1}, Max: Vec3{1, 1, 1}}

	// Segment starting inside reports the start point (tmin = 0)
	hit, ok := SegmentAABB(Vec3{0.5, 0, 0}, Vec3{5, 0, 0}, box)
	if !ok {
		t.Fatal("segment starting inside box: no intersection")
	}
	if !almostEqual(hit.X, 0.5, 1e-12) {
		t.Errorf("entry X = %v, want 0.5", hit.X)
	}
}

func TestGroundCrossing(t *testing.T) {
	prev := Vec3{0, 2, 10}
	curr := Vec3{3, -1, 13}

	hit, ok := GroundCrossing(prev, curr)
	if !ok {
		t.Fatal("descending segment: no ground crossing")
	}
	if hit.Y != 0 {
		t.Errorf("crossing Y = %v, want exactly 0", hit.Y)
	}
	// t = 2/(2+1) = 2/3 of the way from prev to curr
	if !almostEqual(hit.X, 2, 1e-12) || !almostEqual(hit.Z, 12, 1e-12) {
		t.Errorf("crossing point = %v, want (2,0,12)", hit)
	}
}

func TestGroundCrossingNone(t *testing.T) {
	// Still airborne
	if _, ok := GroundCrossing(Vec3{0, 5, 0}, Vec3{0, 1, 10}); ok {
		t.Error("airborne step crossed ground, want no crossing")
	}
	// Ascending from below never counts as a downward crossing
	if _, ok := GroundCrossing(Vec3{0, -1, 0}, Vec3{0, 1, 0}); ok {
		t.Error("ascending step crossed ground, want no crossing")
	}
}
