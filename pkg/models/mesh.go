// Package models provides meshes that feed polygons to the render pipeline.
package models

import (
	"fmt"

	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/render"
)

// Mesh is indexed polygon geometry with its materials.
type Mesh struct {
	Name      string
	Vertices  []render.Vertex
	Faces     []Face
	Materials []render.Material
	Texture   *render.Texture // Optional base color texture

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec4
	BoundsMax math3d.Vec4
}

// Face is a convex counter-clockwise polygon given as vertex indices.
type Face struct {
	V        []int // Indices into Mesh.Vertices
	Material int   // Index into Mesh.Materials (-1 for the default material)
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:      name,
		BoundsMin: math3d.Point(0, 0, 0),
		BoundsMax: math3d.Point(0, 0, 0),
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		p := v.Position
		m.BoundsMin = math3d.Point(min(m.BoundsMin.X, p.X), min(m.BoundsMin.Y, p.Y), min(m.BoundsMin.Z, p.Z))
		m.BoundsMax = math3d.Point(max(m.BoundsMax.X, p.X), max(m.BoundsMax.Y, p.Y), max(m.BoundsMax.Z, p.Z))
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec4 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box as a direction.
func (m *Mesh) Size() math3d.Vec4 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// Radius returns half the diagonal of the bounding box.
func (m *Mesh) Radius() float64 {
	return m.Size().Len() / 2
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// CalculateSmoothNormals replaces every vertex normal with the average of
// the normals of the faces sharing it.
func (m *Mesh) CalculateSmoothNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math3d.Dir(0, 0, 0)
	}

	for _, f := range m.Faces {
		if len(f.V) < 3 {
			continue
		}
		v0 := m.Vertices[f.V[0]].Position
		v1 := m.Vertices[f.V[1]].Position
		v2 := m.Vertices[f.V[2]].Position

		// Unnormalized, so larger faces weigh more
		normal := v1.Sub(v0).Cross(v2.Sub(v0))
		for _, idx := range f.V {
			m.Vertices[idx].Normal = m.Vertices[idx].Normal.Add(normal)
		}
	}

	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
	}
}

// Transform applies a transformation matrix to all vertices. Normals go
// through the inverse transpose so non-uniform scales keep them
// perpendicular to their surfaces.
func (m *Mesh) Transform(mat math3d.Mat4) error {
	nmat, err := mat.InverseTranspose()
	if err != nil {
		return fmt.Errorf("transform mesh %q: %w", m.Name, err)
	}
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position = mat.MulVec4(v.Position).DivideW()
		v.Normal = nmat.MulVec4(v.Normal).DiscardW().Normalize()
	}
	m.CalculateBounds()
	return nil
}

// Clone creates a deep copy of the mesh. The texture is shared.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]render.Vertex, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		Materials: make([]render.Material, len(m.Materials)),
		Texture:   m.Texture,
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	for i, f := range m.Faces {
		clone.Faces[i] = Face{V: append([]int(nil), f.V...), Material: f.Material}
	}
	copy(clone.Materials, m.Materials)
	return clone
}

// GetMaterial returns the material at index i.
// Returns nil if index is out of bounds or -1.
func (m *Mesh) GetMaterial(i int) *render.Material {
	if i < 0 || i >= len(m.Materials) {
		return nil
	}
	return &m.Materials[i]
}

// Polygons returns one render.Polygon per face. Polygons point into the
// mesh's vertex and material storage. Faces without a material use def.
func (m *Mesh) Polygons(def *render.Material) []render.Polygon {
	polys := make([]render.Polygon, len(m.Faces))
	for i, f := range m.Faces {
		verts := make([]*render.Vertex, len(f.V))
		for j, idx := range f.V {
			verts[j] = &m.Vertices[idx]
		}
		mat := m.GetMaterial(f.Material)
		if mat == nil {
			mat = def
		}
		polys[i] = render.Polygon{Vertices: verts, Material: mat}
	}
	return polys
}

// Render submits every face to the context under its current transforms.
// With clipping enabled a mesh whose bounding box lies outside the view
// volume is skipped whole, so the bounds must be current. Render stops at
// the first face the pipeline rejects.
func (m *Mesh) Render(c *render.Context, def *render.Material) error {
	if c.Clipping() && !c.Frustum().IntersectsBox(m.BoundsMin, m.BoundsMax) {
		return nil
	}
	for i, p := range m.Polygons(def) {
		if err := c.RenderPolygon(p); err != nil {
			return fmt.Errorf("render %s face %d: %w", m.Name, i, err)
		}
	}
	return nil
}
