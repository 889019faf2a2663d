// Package math3d provides the homogeneous vector and matrix algebra used by
// the scanline pipeline.
package math3d

import "math"

// Vec4 represents a homogeneous 3D vector (x, y, z, w).
// Points carry w=1, directions carry w=0.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 creates a new Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// Point creates a position vector (w=1).
func Point(x, y, z float64) Vec4 {
	return Vec4{x, y, z, 1}
}

// Dir creates a direction vector (w=0).
func Dir(x, y, z float64) Vec4 {
	return Vec4{x, y, z, 0}
}

// Add returns the vector sum.
//
//nolint:st1016 // a+b naming convention is clearer for vector operations
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the vector difference.
//
//nolint:st1016 // a-b naming convention is clearer for vector operations
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Negate returns the negated vector.
func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

// Scale returns the scalar product.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div returns the scalar division.
func (v Vec4) Div(s float64) Vec4 {
	return Vec4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Dot returns the dot product over all four components.
//
//nolint:st1016 // a·b naming convention is clearer for vector operations
func (a Vec4) Dot(b Vec4) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Cross returns the 3D cross product a × b. The result is a direction (w=0).
//
//nolint:st1016 // a×b naming convention is clearer for vector operations
func (a Vec4) Cross(b Vec4) Vec4 {
	return Vec4{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
		0,
	}
}

// Len returns the length.
func (v Vec4) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector. The zero vector normalizes to itself.
func (v Vec4) Normalize() Vec4 {
	l := v.Len()
	if l == 0 {
		return Vec4{}
	}
	return v.Div(l)
}

// DivideW performs the perspective divide and sets w to 1.
// It must follow any matrix multiply that can leave w != 1.
func (v Vec4) DivideW() Vec4 {
	return Vec4{v.X / v.W, v.Y / v.W, v.Z / v.W, 1}
}

// DiscardW drops the translation component by setting w to 0.
// Directions must go through DiscardW before being multiplied by a
// matrix that contains translation.
func (v Vec4) DiscardW() Vec4 {
	return Vec4{v.X, v.Y, v.Z, 0}
}

// IsZero reports whether x, y and z are all within epsilon of zero.
func (v Vec4) IsZero() bool {
	return isZero(v.X) && isZero(v.Y) && isZero(v.Z)
}

// Lerp returns linear interpolation.
//
//nolint:st1016 // a,b naming convention is clearer for interpolation
func (a Vec4) Lerp(b Vec4, t float64) Vec4 {
	return Vec4{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
		a.W + (b.W-a.W)*t,
	}
}

const epsilon = 1e-8

func isZero(x float64) bool {
	return math.Abs(x) < epsilon
}
