package models

import (
	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/render"
)

// cubeCorners lists the four corners of each face as signs of the half
// extent, ordered counter-clockwise seen from outside: +z, -z, +x, -x, +y, -y.
var cubeCorners = [24][3]float64{
	{1, 1, 1}, {-1, 1, 1}, {-1, -1, 1}, {1, -1, 1},
	{1, 1, -1}, {1, -1, -1}, {-1, -1, -1}, {-1, 1, -1},
	{1, 1, 1}, {1, -1, 1}, {1, -1, -1}, {1, 1, -1},
	{-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1}, {-1, -1, 1},
	{1, 1, 1}, {1, 1, -1}, {-1, 1, -1}, {-1, 1, 1},
	{1, -1, 1}, {-1, -1, 1}, {-1, -1, -1}, {1, -1, -1},
}

// cubeUVs cycles over the corners of every face.
var cubeUVs = [4]math3d.Vec2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}

// NewCube creates an axis-aligned cube centered on the origin, two
// triangles per face with 24 vertices. Each vertex normal points from the
// center through the corner, which gives the cube rounded shading.
func NewCube(half float64, mat render.Material) *Mesh {
	m := NewMesh("cube")
	m.Materials = []render.Material{mat}
	m.Vertices = make([]render.Vertex, len(cubeCorners))
	for i, c := range cubeCorners {
		x, y, z := c[0]*half, c[1]*half, c[2]*half
		m.Vertices[i] = render.Vertex{
			Position: math3d.Point(x, y, z),
			Normal:   math3d.Dir(x, y, z),
			TexCoord: cubeUVs[i%4],
		}
	}
	for k := range 6 {
		b := 4 * k
		m.Faces = append(m.Faces,
			Face{V: []int{b, b + 1, b + 3}},
			Face{V: []int{b + 1, b + 2, b + 3}},
		)
	}
	m.CalculateBounds()
	return m
}

// NewQuadCube is NewCube with one four-sided polygon per face.
func NewQuadCube(half float64, mat render.Material) *Mesh {
	m := NewCube(half, mat)
	m.Faces = m.Faces[:0]
	for k := range 6 {
		b := 4 * k
		m.Faces = append(m.Faces, Face{V: []int{b, b + 1, b + 2, b + 3}})
	}
	return m
}
