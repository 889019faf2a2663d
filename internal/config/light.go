package config

import (
	"fmt"

	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/render"
)

// Light describes one light source. Colors are RGBA in the 0-1 range.
type Light struct {
	Kind      string     `yaml:"kind"` // "point", "directional" or "spot"
	Position  [3]float64 `yaml:"position"`
	Direction [3]float64 `yaml:"direction"`
	Ambient   [4]float64 `yaml:"ambient"`
	Diffuse   [4]float64 `yaml:"diffuse"`
	Specular  [4]float64 `yaml:"specular"`
	// Constant, linear and quadratic falloff; all zero means none
	Attenuation [3]float64 `yaml:"attenuation"`
	Cutoff      float64    `yaml:"cutoff"` // Spot cone half-angle, degrees
}

// Source builds the render light this entry describes.
func (l Light) Source() (render.Light, error) {
	colors := render.LightColors{
		Ambient:  rgba(l.Ambient),
		Diffuse:  rgba(l.Diffuse),
		Specular: rgba(l.Specular),
	}
	pos := math3d.Point(l.Position[0], l.Position[1], l.Position[2])
	dir := math3d.Dir(l.Direction[0], l.Direction[1], l.Direction[2])

	att := render.NoAttenuation
	if l.Attenuation != [3]float64{} {
		att = render.Attenuation{Constant: l.Attenuation[0], Linear: l.Attenuation[1], Quadratic: l.Attenuation[2]}
	}

	switch l.Kind {
	case "point":
		return render.PointLight{Position: pos, Colors: colors, Attenuation: att}, nil
	case "directional":
		if dir.IsZero() {
			return nil, fmt.Errorf("directional light needs a direction")
		}
		return render.DirectionalLight{Direction: dir, Colors: colors}, nil
	case "spot":
		if dir.IsZero() {
			return nil, fmt.Errorf("spot light needs a direction")
		}
		return render.SpotLight{Position: pos, Direction: dir, Colors: colors, Attenuation: att, Cutoff: l.Cutoff}, nil
	default:
		return nil, fmt.Errorf("unknown light kind %q", l.Kind)
	}
}

func rgba(c [4]float64) render.MaterialColor {
	return render.MaterialColor{R: c[0], G: c[1], B: c[2], A: c[3]}
}
