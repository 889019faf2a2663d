package render

import (
	"github.com/taigrr/scanline/pkg/math3d"
)

// BeginViewing resets model-view and projection to identity and maps the
// viewport onto the whole buffer.
func (c *Context) BeginViewing() {
	c.LoadIdentityModelView()
	c.LoadIdentityProjection()
	c.SetViewport(0, 0, c.fb.Width, c.fb.Height)
}

// LoadIdentityModelView resets the model-view matrix.
func (c *Context) LoadIdentityModelView() {
	c.modelView = math3d.Identity()
	c.mvit = math3d.Identity()
}

// LoadIdentityProjection resets the projection matrix.
func (c *Context) LoadIdentityProjection() {
	c.projection = math3d.Identity()
}

// ModelView returns the current model-view matrix.
func (c *Context) ModelView() math3d.Mat4 { return c.modelView }

// ModelViewInverseTranspose returns the matrix used to transform normals.
func (c *Context) ModelViewInverseTranspose() math3d.Mat4 { return c.mvit }

// Projection returns the current projection matrix.
func (c *Context) Projection() math3d.Mat4 { return c.projection }

// Viewport returns the current viewport matrix.
func (c *Context) Viewport() math3d.Mat4 { return c.viewport }

// MultModelView post-multiplies the model-view matrix by m. If the product
// is singular the state is left unchanged.
func (c *Context) MultModelView(m math3d.Mat4) error {
	mv := c.modelView.Mul(m)
	mvit, err := mv.InverseTranspose()
	if err != nil {
		return err
	}
	c.modelView, c.mvit = mv, mvit
	return nil
}

// Translate post-multiplies a translation.
func (c *Context) Translate(tx, ty, tz float64) error {
	return c.MultModelView(math3d.Translate(tx, ty, tz))
}

// Rotate post-multiplies a rotation of degrees around (x, y, z).
func (c *Context) Rotate(degrees, x, y, z float64) error {
	return c.MultModelView(math3d.Rotate(degrees, x, y, z))
}

// Scale post-multiplies a scale.
func (c *Context) Scale(sx, sy, sz float64) error {
	return c.MultModelView(math3d.Scale(sx, sy, sz))
}

// LookAt post-multiplies a view transform placing the eye at eye looking
// at target.
func (c *Context) LookAt(eye, target, up math3d.Vec4) error {
	return c.MultModelView(math3d.LookAt(eye, target, up))
}

// MultProjection post-multiplies the projection matrix by m.
func (c *Context) MultProjection(m math3d.Mat4) {
	c.projection = c.projection.Mul(m)
}

// ProjectOrtho post-multiplies an orthographic projection.
func (c *Context) ProjectOrtho(xmin, xmax, ymin, ymax, near, far float64) {
	c.MultProjection(math3d.Orthographic(xmin, xmax, ymin, ymax, near, far))
}

// ProjectPerspective post-multiplies a perspective projection with a
// vertical field of view in degrees.
func (c *Context) ProjectPerspective(fovy, aspect, near, far float64) {
	c.MultProjection(math3d.Perspective(fovy, aspect, near, far))
}

// SetViewport rebuilds the viewport matrix for a pixel rectangle.
func (c *Context) SetViewport(x, y, width, height int) {
	c.viewport = math3d.Viewport(x, y, width, height)
}

// PushMatrix saves the current model-view matrix.
func (c *Context) PushMatrix() {
	c.stack = append(c.stack, c.modelView)
}

// PopMatrix restores the most recently pushed model-view matrix.
func (c *Context) PopMatrix() error {
	if len(c.stack) == 0 {
		return ErrMatrixStackEmpty
	}
	top := c.stack[len(c.stack)-1]
	mvit, err := top.InverseTranspose()
	if err != nil {
		return err
	}
	c.stack = c.stack[:len(c.stack)-1]
	c.modelView, c.mvit = top, mvit
	return nil
}
