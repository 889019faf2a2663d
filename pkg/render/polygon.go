package render

import (
	"math"

	"github.com/taigrr/scanline/pkg/math3d"
)

// MaxVertices is the largest vertex count accepted by RenderPolygon.
const MaxVertices = 16

// Vertex is a model-space polygon corner.
type Vertex struct {
	Position math3d.Vec4 // w=1
	Normal   math3d.Vec4 // w=0
	TexCoord math3d.Vec2
}

// Polygon is a convex, counter-clockwise polygon submitted for rendering.
// Vertices and Material are referenced, not copied, by the caller's data.
type Polygon struct {
	Vertices []*Vertex
	Material *Material
}

// stageVertex is the working copy of a vertex as it moves through the stages.
type stageVertex struct {
	position math3d.Vec4
	normal   math3d.Vec4
	tex      math3d.Vec2
	color    MaterialColor
}

// stagePolygon is created fresh per submitted polygon and mutated in place.
type stagePolygon struct {
	vertices []stageVertex
	normal   math3d.Vec4
	material *Material
}

func newStagePolygon(p Polygon) stagePolygon {
	sp := stagePolygon{
		vertices: make([]stageVertex, len(p.Vertices)),
		material: p.Material,
	}
	for i, v := range p.Vertices {
		sp.vertices[i] = stageVertex{
			position: v.Position,
			normal:   v.Normal,
			tex:      v.TexCoord,
		}
	}
	sp.computeNormal()
	return sp
}

// computeNormal sets the face normal from the first pair of consecutive
// edges that are not collinear.
func (p *stagePolygon) computeNormal() {
	n := len(p.vertices)
	for i := range n {
		v0 := p.vertices[i].position
		v1 := p.vertices[(i+1)%n].position
		v2 := p.vertices[(i+2)%n].position
		e0 := v0.Sub(v1)
		e1 := v1.Sub(v2)
		p.normal = e0.Cross(e1).Normalize()
		if !p.normal.IsZero() {
			break
		}
	}
}

// transformPositions multiplies every position by m and applies the
// perspective divide.
func (p *stagePolygon) transformPositions(m math3d.Mat4) {
	for i := range p.vertices {
		p.vertices[i].position = m.MulVec4(p.vertices[i].position).DivideW()
	}
}

// transformNormals carries vertex normals and the face normal by m.
func (p *stagePolygon) transformNormals(m math3d.Mat4) {
	for i := range p.vertices {
		p.vertices[i].normal = m.MulVec4(p.vertices[i].normal).DiscardW()
	}
	p.normal = m.MulVec4(p.normal).DiscardW()
}

func (p *stagePolygon) shade(r *lightRegistry) {
	for i := range p.vertices {
		v := &p.vertices[i]
		v.color = r.shade(p.material, v.position, v.normal)
	}
}

// maxPixel bounds screen coordinates so edge arithmetic stays in range
// for vertices projected from next to the eye plane.
const maxPixel = 1 << 30

// pixel converts a viewport coordinate to a pixel index within ±maxPixel.
func pixel(f float64) int {
	return int(math.Max(-maxPixel, math.Min(maxPixel, f+0.5)))
}

// screenVertices rounds positions to pixels and carries the interpolated
// attributes to the rasterizer.
func (p *stagePolygon) screenVertices() []ScreenVertex {
	out := make([]ScreenVertex, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = ScreenVertex{
			X:     pixel(v.position.X),
			Y:     pixel(v.position.Y),
			Z:     v.position.Z,
			U:     v.tex.X,
			V:     v.tex.Y,
			Color: v.color,
		}
	}
	return out
}
