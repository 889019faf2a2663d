package render

import "github.com/taigrr/scanline/pkg/math3d"

// backFacing reports whether the view-space polygon faces away from the eye
// at the origin.
func (p *stagePolygon) backFacing() bool {
	return p.vertices[0].position.Dot(p.normal) > 0
}

// clipPlane is one face of the canonical view volume [-1,1]³.
type clipPlane int

const (
	clipLeft clipPlane = iota
	clipRight
	clipBottom
	clipTop
	clipFront
	clipBack
)

var clipPlanes = [...]clipPlane{clipLeft, clipRight, clipBottom, clipTop, clipFront, clipBack}

func (pl clipPlane) inside(v math3d.Vec4) bool {
	switch pl {
	case clipLeft:
		return v.X >= -1
	case clipRight:
		return v.X <= 1
	case clipBottom:
		return v.Y >= -1
	case clipTop:
		return v.Y <= 1
	case clipFront:
		return v.Z >= -1
	default:
		return v.Z <= 1
	}
}

// bound returns the plane's coordinate on its axis.
func (pl clipPlane) bound() float64 {
	switch pl {
	case clipLeft, clipBottom, clipFront:
		return -1
	default:
		return 1
	}
}

// intersectPosition solves the edge v0→v1 against the plane along the
// plane's axis.
func (pl clipPlane) intersectPosition(v0, v1 math3d.Vec4) math3d.Vec4 {
	b := pl.bound()
	switch pl {
	case clipLeft, clipRight:
		k := (b - v0.X) / (v1.X - v0.X)
		return math3d.Point(b, v0.Y+(v1.Y-v0.Y)*k, v0.Z+(v1.Z-v0.Z)*k)
	case clipBottom, clipTop:
		k := (b - v0.Y) / (v1.Y - v0.Y)
		return math3d.Point(v0.X+(v1.X-v0.X)*k, b, v0.Z+(v1.Z-v0.Z)*k)
	default:
		k := (b - v0.Z) / (v1.Z - v0.Z)
		return math3d.Point(v0.X+(v1.X-v0.X)*k, v0.Y+(v1.Y-v0.Y)*k, b)
	}
}

// intersect builds the clip vertex on edge v0→v1. Color and texture
// coordinates are interpolated by the distance travelled along the edge.
func (pl clipPlane) intersect(v0, v1 stageVertex) stageVertex {
	pos := pl.intersectPosition(v0.position, v1.position)
	full := v1.position.Sub(v0.position).Len()
	part := pos.Sub(v0.position).Len()
	t := part / full

	return stageVertex{
		position: pos,
		color:    v0.color.Add(v1.color.Sub(v0.color).Scale(t)),
		tex: math3d.V2(
			v0.tex.X+(v1.tex.X-v0.tex.X)*t,
			v0.tex.Y+(v1.tex.Y-v0.tex.Y)*t,
		),
	}
}

// clip runs Sutherland-Hodgman against the six planes of the view volume in
// normalized device coordinates. It reports whether anything drawable is
// left.
func (p *stagePolygon) clip() bool {
	out := make([]stageVertex, 0, 2*len(p.vertices))
	for _, pl := range clipPlanes {
		out = out[:0]
		n := len(p.vertices)
		for j := range n {
			v0 := p.vertices[(j-1+n)%n]
			v1 := p.vertices[j]
			in0, in1 := pl.inside(v0.position), pl.inside(v1.position)
			if in0 != in1 {
				out = append(out, pl.intersect(v0, v1))
			}
			if in1 {
				out = append(out, v1)
			}
		}
		p.vertices, out = out, p.vertices
	}
	return len(p.vertices) >= 3
}
