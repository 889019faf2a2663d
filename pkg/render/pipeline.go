package render

import (
	"fmt"
	"image"

	"go.uber.org/zap"
)

// RenderPolygon runs one polygon through the pipeline: view transform,
// back-face culling, lighting, projection, clipping, viewport mapping and
// rasterization. Culled or fully clipped polygons return nil. A rejected
// polygon leaves every buffer untouched.
func (c *Context) RenderPolygon(p Polygon) error {
	if err := validatePolygon(p); err != nil {
		c.log.Warn("polygon rejected", zap.Error(err), zap.Int("vertices", len(p.Vertices)))
		return err
	}

	sp := newStagePolygon(p)
	sp.transformPositions(c.modelView)
	sp.transformNormals(c.mvit)
	if c.culling && sp.backFacing() {
		c.log.Debug("polygon culled")
		return nil
	}

	sp.shade(&c.lights)

	sp.transformPositions(c.projection)
	if c.clipping && !sp.clip() {
		c.log.Debug("polygon clipped away")
		return nil
	}

	sp.transformPositions(c.viewport)
	return c.rasterize(&sp)
}

func validatePolygon(p Polygon) error {
	switch {
	case len(p.Vertices) < 3:
		return ErrTooFewVertices
	case len(p.Vertices) > MaxVertices:
		return fmt.Errorf("%w: %d > %d", ErrTooManyVertices, len(p.Vertices), MaxVertices)
	case p.Material == nil:
		return ErrNoMaterial
	}
	for i, v := range p.Vertices {
		if v == nil {
			return fmt.Errorf("render: vertex %d is nil", i)
		}
	}
	return nil
}

func (c *Context) rasterize(sp *stagePolygon) error {
	verts := sp.screenVertices()
	if c.mode == PolygonFill {
		return fillPolygon(c.fb, c.shading(), verts)
	}

	n := len(verts)
	for i := range n {
		a, b := verts[i], verts[(i+1)%n]
		c.fb.DrawLine(image.Pt(a.X, a.Y), image.Pt(b.X, b.Y), c.wireframeColor)
	}
	return nil
}
