package render

import (
	"github.com/taigrr/scanline/pkg/math3d"
)

// Plane represents a plane in 3D space using the equation: Ax + By + Cz + D = 0
// where (A, B, C) is the normal and D is the distance from origin.
type Plane struct {
	Normal math3d.Vec4 // w=0
	D      float64
}

// Normalize normalizes the plane equation so the normal has unit length.
func (p *Plane) Normalize() {
	l := p.Normal.Len()
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Div(l)
	p.D /= l
}

// DistanceToPoint returns the signed distance from the plane to a point.
// Positive = inside (same side as normal), negative = outside.
func (p Plane) DistanceToPoint(point math3d.Vec4) float64 {
	return p.Normal.Dot(point.DiscardW()) + p.D
}

// Frustum is the view volume expressed as 6 inward-facing planes in the
// space of the matrix it was extracted from, in clipping-plane order:
// left, right, bottom, top, front, back.
type Frustum struct {
	Planes [6]Plane
}

// NewFrustum extracts the planes bounding the points that m maps into the
// canonical view volume (Gribb/Hartmann). For m = projection·model-view the
// planes live in model space.
func NewFrustum(m math3d.Mat4) Frustum {
	var f Frustum
	row := func(i int) math3d.Vec4 {
		return math3d.V4(m[i][0], m[i][1], m[i][2], m[i][3])
	}
	w := row(3)
	for i, side := range [6]struct {
		axis int
		sign float64
	}{{0, 1}, {0, -1}, {1, 1}, {1, -1}, {2, 1}, {2, -1}} {
		eq := w.Add(row(side.axis).Scale(side.sign))
		f.Planes[i] = Plane{Normal: eq.DiscardW(), D: eq.W}
		f.Planes[i].Normalize()
	}
	return f
}

// ContainsPoint tests if a point is inside the frustum. Points on a
// boundary are inside.
func (f Frustum) ContainsPoint(p math3d.Vec4) bool {
	for i := range f.Planes {
		if f.Planes[i].DistanceToPoint(p) < 0 {
			return false
		}
	}
	return true
}

// IntersectsBox tests if an axis-aligned box intersects or is inside the
// frustum. It may report true for boxes just outside a frustum corner but
// never false for a visible box.
func (f Frustum) IntersectsBox(lo, hi math3d.Vec4) bool {
	for i := range f.Planes {
		plane := f.Planes[i]

		// The corner furthest along the normal is the last to leave.
		p := math3d.Point(
			selectComponent(plane.Normal.X >= 0, hi.X, lo.X),
			selectComponent(plane.Normal.Y >= 0, hi.Y, lo.Y),
			selectComponent(plane.Normal.Z >= 0, hi.Z, lo.Z),
		)
		if plane.DistanceToPoint(p) < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere tests if a sphere intersects the frustum.
func (f Frustum) IntersectsSphere(center math3d.Vec4, radius float64) bool {
	for i := range f.Planes {
		if f.Planes[i].DistanceToPoint(center) < -radius {
			return false
		}
	}
	return true
}

func selectComponent(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}

// Frustum returns the view volume in the current model space.
func (c *Context) Frustum() Frustum {
	return NewFrustum(c.projection.Mul(c.modelView))
}

// Clipping reports whether polygons are clipped to the view volume.
func (c *Context) Clipping() bool {
	return c.clipping
}
