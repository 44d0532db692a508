package vmath

import (
	"testing"
)

func TestProjectCenterline(t *testing.T) {
	eye := Vec3{0, 2.2, 0}
	b := ViewBasis(0.05, -0.3)

	// Points along the aim axis land on the sight center for any depth
	for _, d := range []float64{0.6, 1, 10, 300, 1500} {
		p := Add(eye, Scale(b.Forward, d))
		sx, sy, ok := ProjectToSight(p, eye, b, 2378.0)
		if !ok {
			t.Fatalf("depth %v: not visible, want visible", d)
		}
		if !almostEqual(sx, 0, 1e-6) || !almostEqual(sy, 0, 1e-6) {
			t.Fatalf("depth %v: offset (%v,%v), want (0,0)", d, sx, sy)
		}
	}
}

func TestProjectBehindCamera(t *testing.T) {
	eye := Vec3{0, 2.2, 0}
	b := ViewBasis(0, 0)

	p := Sub(eye, b.Forward) // z = -1, behind the near clip
	if _, _, ok := ProjectToSight(p, eye, b, 100); ok {
		t.Error("point behind eye projected, want not visible")
	}
}

func TestProjectNearClip(t *testing.T) {
	eye := Vec3{0, 2.2, 0}
	b := ViewBasis(0, 0)

	p := Add(eye, Scale(b.Forward, 0.4)) // inside near clip
	if _, _, ok := ProjectToSight(p, eye, b, 100); ok {
		t.Error("point inside near clip projected, want not visible")
	}
}

func TestProjectScreenYFlip(t *testing.T) {
	eye := Vec3{}
	b := ViewBasis(0, 0)

	// A point above the aim axis must project to negative (upward) screen Y
	p := Vec3{0, 1, 10}
	_, sy, ok := ProjectToSight(p, eye, b, 100)
	if !ok {
		t.Fatal("point not visible")
	}
	if sy >= 0 {
		t.Errorf("screen Y = %v for elevated point, want negative", sy)
	}
}
