package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/render"
)

// Apply sets the projection, viewport and pipeline switches of rc.
// The model-view matrix is left to View.
func (c *Config) Apply(rc *render.Context) error {
	rc.BeginViewing()
	if err := c.Viewing.project(rc, c.Window); err != nil {
		return err
	}

	p := c.Pipeline
	setSwitch(p.Culling, rc.EnableCulling, rc.DisableCulling)
	setSwitch(p.Clipping, rc.EnableClipping, rc.DisableClipping)
	setSwitch(p.ZBuffer, rc.EnableZBuffer, rc.DisableZBuffer)
	setSwitch(p.Wireframe, rc.PolygonRenderWireframe, rc.PolygonRenderFill)

	wire, err := ParseColor(p.WireframeColor)
	if err != nil {
		return fmt.Errorf("wireframe color: %w", err)
	}
	rc.SetWireframeColor(wire)

	switch p.TextureMode {
	case "", "modulate":
		rc.TextureModeModulate()
	case "decal":
		rc.TextureModeDecal()
	default:
		return fmt.Errorf("unknown texture mode %q", p.TextureMode)
	}
	return nil
}

func setSwitch(on bool, enable, disable func()) {
	if on {
		enable()
	} else {
		disable()
	}
}

func (v ViewingConfig) project(rc *render.Context, w WindowConfig) error {
	switch v.Projection {
	case "", "perspective":
		aspect := v.Aspect
		if aspect == 0 {
			aspect = float64(w.Width) / float64(w.Height)
		}
		rc.ProjectPerspective(v.FOV, aspect, v.Near, v.Far)
	case "ortho":
		rc.ProjectOrtho(v.Ortho[0], v.Ortho[1], v.Ortho[2], v.Ortho[3], v.Near, v.Far)
	default:
		return fmt.Errorf("unknown projection %q", v.Projection)
	}
	return nil
}

// View resets the model-view matrix to the camera transform.
func (v ViewingConfig) View(rc *render.Context) error {
	rc.LoadIdentityModelView()
	return rc.LookAt(
		math3d.Point(v.Eye[0], v.Eye[1], v.Eye[2]),
		math3d.Point(v.Target[0], v.Target[1], v.Target[2]),
		math3d.Dir(v.Up[0], v.Up[1], v.Up[2]),
	)
}

// Sources builds the render lights of every configured light.
func (c *Config) Sources() ([]render.Light, error) {
	lights := make([]render.Light, 0, len(c.Lights))
	for i, l := range c.Lights {
		src, err := l.Source()
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		lights = append(lights, src)
	}
	return lights, nil
}

// Material returns the default material.
func (m MaterialConfig) Material() *render.Material {
	return render.NewMaterial(m.Ambient, m.Diffuse, m.Specular, m.Shininess)
}

// LoadTexture returns the configured texture, or nil when texturing is off.
func (p PipelineConfig) LoadTexture() (*render.Texture, error) {
	switch p.Texture {
	case "":
		return nil, nil
	case "checker":
		return render.NewCheckerTexture(256, 256, 16), nil
	default:
		return render.LoadTexture(p.Texture)
	}
}

// ParseColor parses an opaque #RRGGBB color.
func ParseColor(s string) (uint32, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return 0, fmt.Errorf("color %q is not #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return render.ColorBlack | uint32(v), nil
}
