package render

import (
	"math"

	"github.com/taigrr/scanline/pkg/math3d"
)

// LightKind identifies a light source variant.
type LightKind int

const (
	LightPoint LightKind = iota
	LightDirectional
	LightSpot
)

func (k LightKind) String() string {
	switch k {
	case LightPoint:
		return "point"
	case LightDirectional:
		return "directional"
	case LightSpot:
		return "spot"
	default:
		return "unknown"
	}
}

// LightColors holds the per-term intensities of a light source.
type LightColors struct {
	Ambient  MaterialColor
	Diffuse  MaterialColor
	Specular MaterialColor
}

// Attenuation holds the distance falloff coefficients:
// factor = 1 / (Constant + Linear*d + Quadratic*d²).
type Attenuation struct {
	Constant  float64
	Linear    float64
	Quadratic float64
}

// NoAttenuation disables distance falloff.
var NoAttenuation = Attenuation{Constant: 1}

func (a Attenuation) factor(dist float64) float64 {
	return 1 / (a.Constant + a.Linear*dist + a.Quadratic*dist*dist)
}

// Light is a lighting source. Implementations are PointLight,
// DirectionalLight and SpotLight.
type Light interface {
	Kind() LightKind

	// toView returns a copy carried into viewing space.
	toView(mv, mvit math3d.Mat4) Light

	// contribute returns the unclamped color added at a view-space vertex.
	contribute(m *Material, vertex, normal math3d.Vec4) MaterialColor
}

// PointLight radiates from a position in all directions.
type PointLight struct {
	Position    math3d.Vec4
	Colors      LightColors
	Attenuation Attenuation
}

// DirectionalLight shines uniformly along Direction, the vector pointing
// from the lit surface towards the light.
type DirectionalLight struct {
	Direction math3d.Vec4
	Colors    LightColors
}

// SpotLight radiates from Position along Direction inside a cone of
// Cutoff degrees.
type SpotLight struct {
	Position    math3d.Vec4
	Direction   math3d.Vec4
	Colors      LightColors
	Attenuation Attenuation
	Cutoff      float64
}

// Kind implements Light.
func (PointLight) Kind() LightKind { return LightPoint }

// Kind implements Light.
func (DirectionalLight) Kind() LightKind { return LightDirectional }

// Kind implements Light.
func (SpotLight) Kind() LightKind { return LightSpot }

func viewPosition(mv math3d.Mat4, p math3d.Vec4) math3d.Vec4 {
	return mv.MulVec4(p).DivideW()
}

func viewDirection(mvit math3d.Mat4, d math3d.Vec4) math3d.Vec4 {
	return mvit.MulVec4(d).DiscardW().Normalize()
}

func (l PointLight) toView(mv, _ math3d.Mat4) Light {
	l.Position = viewPosition(mv, l.Position)
	return l
}

func (l DirectionalLight) toView(_, mvit math3d.Mat4) Light {
	l.Direction = viewDirection(mvit, l.Direction)
	return l
}

func (l SpotLight) toView(mv, mvit math3d.Mat4) Light {
	l.Position = viewPosition(mv, l.Position)
	l.Direction = viewDirection(mvit, l.Direction)
	return l
}

func (l PointLight) contribute(m *Material, vertex, normal math3d.Vec4) MaterialColor {
	toLight := l.Position.Sub(vertex).DiscardW()
	dist := toLight.Len()
	return blinnPhong(m, vertex, normal, toLight.Div(dist), l.Colors).
		Scale(l.Attenuation.factor(dist))
}

func (l DirectionalLight) contribute(m *Material, vertex, normal math3d.Vec4) MaterialColor {
	return blinnPhong(m, vertex, normal, l.Direction.DiscardW().Normalize(), l.Colors)
}

func (l SpotLight) contribute(m *Material, vertex, normal math3d.Vec4) MaterialColor {
	toLight := l.Position.Sub(vertex).DiscardW()
	dist := toLight.Len()
	L := toLight.Div(dist)

	// cos of the angle between the spot axis and the ray to the vertex
	ed := L.Negate().Dot(l.Direction)
	if ed < math.Cos(l.Cutoff*math.Pi/180) {
		return MaterialColor{}
	}
	spot := math.Max(0, ed)

	return blinnPhong(m, vertex, normal, L, l.Colors).
		Scale(l.Attenuation.factor(dist) * spot)
}

// blinnPhong evaluates the ambient, diffuse and specular terms for a unit
// vector L pointing from the vertex towards the light.
func blinnPhong(m *Material, vertex, normal, L math3d.Vec4, c LightColors) MaterialColor {
	N := normal.DiscardW().Normalize()
	V := vertex.DiscardW().Normalize().Negate()
	H := L.Add(V).Normalize()

	result := m.Ambient.Mul(c.Ambient)
	nl := N.Dot(L)
	if nl > 0 {
		nhs := math.Pow(math.Max(0, N.Dot(H)), m.Shininess)
		result = result.
			Add(m.Diffuse.Mul(c.Diffuse).Scale(nl)).
			Add(m.Specular.Mul(c.Specular).Scale(nhs))
	}
	return result
}
