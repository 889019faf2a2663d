package render

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/taigrr/scanline/pkg/math3d"
)

// PolygonMode selects filled or outlined rasterization.
type PolygonMode int

const (
	PolygonFill PolygonMode = iota
	PolygonWireframe
)

func (m PolygonMode) String() string {
	if m == PolygonWireframe {
		return "wireframe"
	}
	return "fill"
}

// Context owns all rendering state: the frame and depth buffers, the
// transform matrices, the per-frame light registry and the pipeline
// switches. It is not safe for concurrent use.
type Context struct {
	fb *Framebuffer

	modelView  math3d.Mat4
	mvit       math3d.Mat4 // inverse transpose of modelView
	projection math3d.Mat4
	viewport   math3d.Mat4
	stack      []math3d.Mat4

	lights lightRegistry

	culling  bool
	clipping bool
	zBuffer  bool

	mode           PolygonMode
	wireframeColor uint32

	texture        *Texture
	textureEnabled bool
	textureMode    TextureMode

	presenter Presenter
	log       *zap.Logger
	frame     int
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.log = l
		}
	}
}

// WithPresenter sets the display surface that receives every presented frame.
func WithPresenter(p Presenter) Option {
	return func(c *Context) {
		c.presenter = p
	}
}

// NewContext creates a rendering context with a width×height buffer.
// Transforms start as identity with a full-buffer viewport; culling,
// clipping, depth testing and texturing start disabled.
func NewContext(width, height int, opts ...Option) *Context {
	c := &Context{
		fb:             NewFramebuffer(width, height),
		wireframeColor: ColorWhite,
		textureMode:    TextureModulate,
		log:            zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.BeginViewing()
	c.fb.ClearDepth(1)
	return c
}

// Framebuffer returns the color and depth buffers.
func (c *Context) Framebuffer() *Framebuffer {
	return c.fb
}

// SetPresenter replaces the display surface.
func (c *Context) SetPresenter(p Presenter) {
	c.presenter = p
}

// Frame returns the number of frames presented so far.
func (c *Context) Frame() int {
	return c.frame
}

// Clear fills the color buffer.
func (c *Context) Clear(color uint32) {
	c.fb.Clear(color)
}

// ClearDepth fills the depth buffer.
func (c *Context) ClearDepth(d float64) {
	c.fb.ClearDepth(d)
}

// DrawPoints writes color at each point.
func (c *Context) DrawPoints(points []image.Point, color uint32) {
	c.fb.DrawPoints(points, color)
}

// DrawPointsColors writes colors[i] at points[i].
func (c *Context) DrawPointsColors(points []image.Point, colors []uint32) error {
	return c.fb.DrawPointsColors(points, colors)
}

// DrawLine draws a Bresenham line in pixel coordinates.
func (c *Context) DrawLine(p0, p1 image.Point, color uint32) {
	c.fb.DrawLine(p0, p1, color)
}

// Present hands the color buffer to the presenter and empties the light
// registry. Lights must be enabled again before drawing the next frame.
func (c *Context) Present() error {
	used := c.lights.len()
	c.lights.reset()
	c.frame++

	if c.presenter != nil {
		if err := c.presenter.Present(c.fb); err != nil {
			return fmt.Errorf("present frame %d: %w", c.frame, err)
		}
	}
	c.log.Debug("frame presented", zap.Int("frame", c.frame), zap.Int("lights", used))
	return nil
}

// Pipeline switches

// EnableCulling turns on back-face culling.
func (c *Context) EnableCulling() { c.culling = true }

// DisableCulling turns off back-face culling.
func (c *Context) DisableCulling() { c.culling = false }

// EnableClipping turns on view-volume clipping.
func (c *Context) EnableClipping() { c.clipping = true }

// DisableClipping turns off view-volume clipping.
func (c *Context) DisableClipping() { c.clipping = false }

// EnableZBuffer turns on depth testing.
func (c *Context) EnableZBuffer() { c.zBuffer = true }

// DisableZBuffer turns off depth testing.
func (c *Context) DisableZBuffer() { c.zBuffer = false }

// PolygonRenderFill fills subsequent polygons.
func (c *Context) PolygonRenderFill() { c.mode = PolygonFill }

// PolygonRenderWireframe outlines subsequent polygons.
func (c *Context) PolygonRenderWireframe() { c.mode = PolygonWireframe }

// SetWireframeColor sets the ARGB color used for outlines.
func (c *Context) SetWireframeColor(color uint32) { c.wireframeColor = color }

// EnableTexture binds t to subsequent polygons.
func (c *Context) EnableTexture(t *Texture) {
	c.texture = t
	c.textureEnabled = t != nil
}

// DisableTexture unbinds the current texture.
func (c *Context) DisableTexture() { c.textureEnabled = false }

// TextureModeDecal replaces lit colors with texels.
func (c *Context) TextureModeDecal() { c.textureMode = TextureDecal }

// TextureModeModulate multiplies lit colors by texels.
func (c *Context) TextureModeModulate() { c.textureMode = TextureModulate }

// Lights

// EnableLight copies l into the registry, carrying it into the current
// viewing space, and returns its handle.
func (c *Context) EnableLight(l Light) (LightHandle, error) {
	h, err := c.lights.add(l, c.modelView, c.mvit)
	if err != nil {
		return h, err
	}
	c.log.Debug("light enabled", zap.Stringer("kind", l.Kind()), zap.Int("handle", int(h)))
	return h, nil
}

// EnableLightHandle re-enables a light disabled earlier in this frame.
func (c *Context) EnableLightHandle(h LightHandle) error {
	return c.lights.setDisabled(h, false)
}

// DisableLight stops a light from contributing without removing it.
func (c *Context) DisableLight(h LightHandle) error {
	return c.lights.setDisabled(h, true)
}

// LightCount returns the number of lights enabled in the current frame.
func (c *Context) LightCount() int {
	return c.lights.len()
}

func (c *Context) shading() shading {
	sh := shading{depthTest: c.zBuffer, textureMode: c.textureMode}
	if c.textureEnabled {
		sh.texture = c.texture
	}
	return sh
}

// FillPolygon scan-converts a polygon already in pixel coordinates using the
// current depth and texture settings.
func (c *Context) FillPolygon(verts []ScreenVertex) error {
	return fillPolygon(c.fb, c.shading(), verts)
}
