package math3d

import (
	"errors"
	"math"
)

// ErrSingularMatrix is returned when inverting a matrix whose determinant is zero.
var ErrSingularMatrix = errors.New("math3d: cannot invert singular matrix")

// Mat4 is a 4x4 matrix stored row-major: m[row][col].
// Vectors are columns, so a transform applies as m.MulVec4(v) and
// a.Mul(b) applies b first.
//
// For a transform matrix:
// | Xx Yx Zx Tx |   X,Y,Z = basis vectors (rotation/scale)
// | Xy Yy Zy Ty |   T = translation
// | Xz Yz Zz Tz |
// | 0  0  0  1  |
type Mat4 [4][4]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate creates a translation matrix.
func Translate(tx, ty, tz float64) Mat4 {
	return Mat4{
		{1, 0, 0, tx},
		{0, 1, 0, ty},
		{0, 0, 1, tz},
		{0, 0, 0, 1},
	}
}

// Scale creates a scaling matrix.
func Scale(sx, sy, sz float64) Mat4 {
	return Mat4{
		{sx, 0, 0, 0},
		{0, sy, 0, 0},
		{0, 0, sz, 0},
		{0, 0, 0, 1},
	}
}

// Rotate creates a rotation matrix of angle degrees around the axis (x, y, z).
// A zero axis gives the identity.
func Rotate(degrees, x, y, z float64) Mat4 {
	axis := Dir(x, y, z).Normalize()
	if axis.IsZero() {
		return Identity()
	}
	ux, uy, uz := axis.X, axis.Y, axis.Z
	theta := degrees * math.Pi / 180
	c, s := math.Cos(theta), math.Sin(theta)
	t := 1 - c

	return Mat4{
		{ux*ux*t + c, ux*uy*t - uz*s, ux*uz*t + uy*s, 0},
		{uy*ux*t + uz*s, uy*uy*t + c, uy*uz*t - ux*s, 0},
		{uz*ux*t - uy*s, uz*uy*t + ux*s, uz*uz*t + c, 0},
		{0, 0, 0, 1},
	}
}

// LookAt creates a view matrix looking from eye towards target.
func LookAt(eye, target, up Vec4) Mat4 {
	f := target.Sub(eye).DiscardW().Normalize() // Forward
	s := f.Cross(up).Normalize()                // Right
	u := s.Cross(f)                             // Up (recomputed)

	rot := Mat4{
		{s.X, s.Y, s.Z, 0},
		{u.X, u.Y, u.Z, 0},
		{-f.X, -f.Y, -f.Z, 0},
		{0, 0, 0, 1},
	}
	return rot.Mul(Translate(-eye.X, -eye.Y, -eye.Z))
}

// Perspective creates a perspective projection matrix.
// fovy is the vertical field of view in degrees, aspect is width/height,
// near and far are positive distances to the clipping planes.
func Perspective(fovy, aspect, near, far float64) Mat4 {
	zn, zf := -near, -far
	cot := 1.0 / math.Tan(fovy/2*math.Pi/180)

	return Mat4{
		{cot / aspect, 0, 0, 0},
		{0, cot, 0, 0},
		{0, 0, (zn + zf) / (zn - zf), -2 * zn * zf / (zn - zf)},
		{0, 0, -1, 0},
	}
}

// Orthographic creates an orthographic projection matrix.
func Orthographic(left, right, bottom, top, near, far float64) Mat4 {
	zn, zf := -near, -far

	return Mat4{
		{2 / (right - left), 0, 0, -(right + left) / (right - left)},
		{0, 2 / (top - bottom), 0, -(top + bottom) / (top - bottom)},
		{0, 0, -2 / (zn - zf), (zn + zf) / (zn - zf)},
		{0, 0, 0, 1},
	}
}

// Viewport maps normalized device coordinates onto a pixel rectangle with
// its origin at the bottom-left. Depth is mapped from [-1,1] to [0,1].
func Viewport(x, y, width, height int) Mat4 {
	xmin, xmax := float64(x), float64(x+width)
	ymin, ymax := float64(y), float64(y+height)

	return Mat4{
		{(xmax - xmin) / 2, 0, 0, (xmax + xmin) / 2},
		{0, (ymax - ymin) / 2, 0, (ymax + ymin) / 2},
		{0, 0, 0.5, 0.5},
		{0, 0, 0, 1},
	}
}

// Add returns the element-wise sum.
//
//nolint:st1016 // a+b naming convention is clearer for matrix operations
func (a Mat4) Add(b Mat4) Mat4 {
	var m Mat4
	for i := range 4 {
		for j := range 4 {
			m[i][j] = a[i][j] + b[i][j]
		}
	}
	return m
}

// Sub returns the element-wise difference.
//
//nolint:st1016 // a-b naming convention is clearer for matrix operations
func (a Mat4) Sub(b Mat4) Mat4 {
	var m Mat4
	for i := range 4 {
		for j := range 4 {
			m[i][j] = a[i][j] - b[i][j]
		}
	}
	return m
}

// Negate returns the element-wise negation.
func (m Mat4) Negate() Mat4 {
	var r Mat4
	for i := range 4 {
		for j := range 4 {
			r[i][j] = -m[i][j]
		}
	}
	return r
}

// Mul multiplies two matrices: a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for i := range 4 {
		for j := range 4 {
			var sum float64
			for k := range 4 {
				sum += a[i][k] * b[k][j]
			}
			m[i][j] = sum
		}
	}
	return m
}

// MulVec4 transforms a Vec4. No divide is applied; call DivideW on the
// result when w may differ from 1.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}

// Div divides every element by s.
func (m Mat4) Div(s float64) Mat4 {
	var r Mat4
	for i := range 4 {
		for j := range 4 {
			r[i][j] = m[i][j] / s
		}
	}
	return r
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var r Mat4
	for i := range 4 {
		for j := range 4 {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// minor returns the determinant of the 3x3 matrix left after deleting
// the given row and column.
func (m Mat4) minor(row, col int) float64 {
	var r [9]float64
	n := 0
	for i := range 4 {
		if i == row {
			continue
		}
		for j := range 4 {
			if j == col {
				continue
			}
			r[n] = m[i][j]
			n++
		}
	}
	return r[0]*r[4]*r[8] + r[1]*r[5]*r[6] + r[2]*r[3]*r[7] -
		r[2]*r[4]*r[6] - r[1]*r[3]*r[8] - r[0]*r[5]*r[7]
}

// Adjugate returns the transposed cofactor matrix.
func (m Mat4) Adjugate() Mat4 {
	var adj Mat4
	for i := range 4 {
		for j := range 4 {
			d := m.minor(i, j)
			if (i+j)%2 != 0 {
				d = -d
			}
			adj[j][i] = d
		}
	}
	return adj
}

// Determinant returns the determinant by Laplace expansion along the first row.
func (m Mat4) Determinant() float64 {
	return m.determinant(m.Adjugate())
}

func (m Mat4) determinant(adj Mat4) float64 {
	var d float64
	for j := range 4 {
		d += m[0][j] * adj[j][0]
	}
	return d
}

// Inverse returns the inverse of the matrix computed as adjugate / determinant.
// It returns ErrSingularMatrix when the determinant is exactly zero.
func (m Mat4) Inverse() (Mat4, error) {
	adj := m.Adjugate()
	d := m.determinant(adj)
	if d == 0 {
		return Mat4{}, ErrSingularMatrix
	}
	return adj.Div(d), nil
}

// InverseTranspose returns the transposed inverse, the matrix that carries
// normals into the space m carries points into.
func (m Mat4) InverseTranspose() (Mat4, error) {
	inv, err := m.Inverse()
	if err != nil {
		return Mat4{}, err
	}
	return inv.Transpose(), nil
}

// ApproxEqual reports whether every element of a and b differs by at most tol.
//
//nolint:st1016 // a,b naming convention is clearer for comparisons
func (a Mat4) ApproxEqual(b Mat4, tol float64) bool {
	for i := range 4 {
		for j := range 4 {
			if math.Abs(a[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}
	return true
}
