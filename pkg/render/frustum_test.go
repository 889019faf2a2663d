package render

import (
	"math"
	"testing"

	"github.com/taigrr/scanline/pkg/math3d"
)

func TestPlaneDistanceToPoint(t *testing.T) {
	// Plane at Z=0, normal pointing +Z
	plane := Plane{Normal: math3d.Dir(0, 0, 1), D: 0}

	tests := []struct {
		name     string
		point    math3d.Vec4
		expected float64
	}{
		{"origin", math3d.Point(0, 0, 0), 0},
		{"in front", math3d.Point(0, 0, 5), 5},
		{"behind", math3d.Point(0, 0, -3), -3},
		{"offset XY", math3d.Point(10, -5, 2), 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dist := plane.DistanceToPoint(tc.point)
			if math.Abs(dist-tc.expected) > 1e-9 {
				t.Errorf("got %v, want %v", dist, tc.expected)
			}
		})
	}
}

func TestPlaneNormalize(t *testing.T) {
	plane := Plane{Normal: math3d.Dir(0, 3, 4), D: 10}
	plane.Normalize()

	if length := plane.Normal.Len(); math.Abs(length-1.0) > 1e-9 {
		t.Errorf("normalized normal length = %v, want 1.0", length)
	}
	if math.Abs(plane.Normal.Y-0.6) > 1e-9 {
		t.Errorf("normal.Y = %v, want 0.6", plane.Normal.Y)
	}
	if math.Abs(plane.Normal.Z-0.8) > 1e-9 {
		t.Errorf("normal.Z = %v, want 0.8", plane.Normal.Z)
	}
	// D should be scaled too (10/5 = 2)
	if math.Abs(plane.D-2.0) > 1e-9 {
		t.Errorf("D = %v, want 2.0", plane.D)
	}

	// A degenerate plane is left alone
	zero := Plane{D: 3}
	zero.Normalize()
	if zero.D != 3 {
		t.Errorf("degenerate plane D = %v, want 3", zero.D)
	}
}

func TestFrustumPlanesNormalized(t *testing.T) {
	f := NewFrustum(math3d.Perspective(60, 16.0/9.0, 0.1, 100))
	for i, plane := range f.Planes {
		if length := plane.Normal.Len(); math.Abs(length-1.0) > 1e-6 {
			t.Errorf("plane %d normal length = %v, want 1.0", i, length)
		}
		if plane.Normal.W != 0 {
			t.Errorf("plane %d normal w = %v, want 0", i, plane.Normal.W)
		}
	}
}

func TestFrustumContainsPoint(t *testing.T) {
	ortho := NewFrustum(math3d.Orthographic(-1, 1, -1, 1, 1, 10))
	persp := NewFrustum(math3d.Perspective(90, 1, 1, 100))

	tests := []struct {
		name     string
		frustum  Frustum
		point    math3d.Vec4
		expected bool
	}{
		{"ortho center", ortho, math3d.Point(0, 0, -5), true},
		{"ortho in front of near", ortho, math3d.Point(0, 0, 0), false},
		{"ortho past far", ortho, math3d.Point(0, 0, -11), false},
		{"ortho right of box", ortho, math3d.Point(2, 0, -5), false},
		{"ortho below box", ortho, math3d.Point(0, -1.5, -5), false},
		{"persp center", persp, math3d.Point(0, 0, -10), true},
		{"persp near edge", persp, math3d.Point(9, 0, -10), true},
		{"persp outside edge", persp, math3d.Point(11, 0, -10), false},
		{"persp behind eye", persp, math3d.Point(0, 0, 10), false},
		{"persp too far", persp, math3d.Point(0, 0, -200), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.frustum.ContainsPoint(tc.point); got != tc.expected {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tc.point, got, tc.expected)
			}
		})
	}
}

func TestFrustumIntersectsBox(t *testing.T) {
	f := NewFrustum(math3d.Perspective(90, 1, 1, 100))

	tests := []struct {
		name     string
		lo, hi   math3d.Vec4
		expected bool
	}{
		{"fully inside", math3d.Point(-1, -1, -15), math3d.Point(1, 1, -5), true},
		{"behind eye", math3d.Point(-1, -1, 5), math3d.Point(1, 1, 15), false},
		{"straddles left plane", math3d.Point(-20, -1, -10), math3d.Point(-5, 1, -5), true},
		{"far left", math3d.Point(-50, -1, -10), math3d.Point(-40, 1, -5), false},
		{"past far plane", math3d.Point(-1, -1, -300), math3d.Point(1, 1, -200), false},
		{"contains frustum", math3d.Point(-500, -500, -500), math3d.Point(500, 500, 500), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.IntersectsBox(tc.lo, tc.hi); got != tc.expected {
				t.Errorf("IntersectsBox(%v, %v) = %v, want %v", tc.lo, tc.hi, got, tc.expected)
			}
		})
	}
}

func TestFrustumIntersectsSphere(t *testing.T) {
	f := NewFrustum(math3d.Orthographic(-1, 1, -1, 1, 1, 10))

	tests := []struct {
		name     string
		center   math3d.Vec4
		radius   float64
		expected bool
	}{
		{"inside", math3d.Point(0, 0, -5), 0.5, true},
		{"touching right", math3d.Point(1.5, 0, -5), 0.6, true},
		{"right of box", math3d.Point(3, 0, -5), 0.5, false},
		{"behind near plane", math3d.Point(0, 0, 2), 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.IntersectsSphere(tc.center, tc.radius); got != tc.expected {
				t.Errorf("IntersectsSphere(%v, %v) = %v, want %v", tc.center, tc.radius, got, tc.expected)
			}
		})
	}
}

func TestContextFrustum(t *testing.T) {
	c := NewContext(8, 8)
	c.EnableClipping()
	if !c.Clipping() {
		t.Fatal("Clipping() = false after EnableClipping")
	}
	c.ProjectPerspective(90, 1, 1, 100)
	if err := c.Translate(0, 0, -10); err != nil {
		t.Fatal(err)
	}

	// Planes live in model space, so the origin sits ten units ahead
	f := c.Frustum()
	if !f.ContainsPoint(math3d.Point(0, 0, 0)) {
		t.Error("origin should be inside the model-space frustum")
	}
	if f.ContainsPoint(math3d.Point(0, 0, 20)) {
		t.Error("point behind the eye should be outside")
	}

	c.DisableClipping()
	if c.Clipping() {
		t.Error("Clipping() = true after DisableClipping")
	}
}

func BenchmarkFrustumExtract(b *testing.B) {
	m := math3d.Perspective(60, 16.0/9.0, 0.1, 100).Mul(math3d.Translate(0, 0, -10))
	for b.Loop() {
		_ = NewFrustum(m)
	}
}

func BenchmarkFrustumIntersectsBox(b *testing.B) {
	f := NewFrustum(math3d.Perspective(60, 16.0/9.0, 0.1, 100))

	b.Run("visible", func(b *testing.B) {
		lo, hi := math3d.Point(-1, -1, -15), math3d.Point(1, 1, -5)
		for b.Loop() {
			_ = f.IntersectsBox(lo, hi)
		}
	})

	b.Run("culled", func(b *testing.B) {
		lo, hi := math3d.Point(-1, -1, 5), math3d.Point(1, 1, 15)
		for b.Loop() {
			_ = f.IntersectsBox(lo, hi)
		}
	})
}
