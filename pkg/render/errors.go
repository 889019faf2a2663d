package render

import "errors"

var (
	// ErrTooFewVertices is returned when a polygon with fewer than 3 vertices
	// reaches the rasterizer or the pipeline.
	ErrTooFewVertices = errors.New("render: polygon needs at least 3 vertices")

	// ErrTooManyVertices is returned when a submitted polygon exceeds MaxVertices.
	ErrTooManyVertices = errors.New("render: polygon exceeds vertex capacity")

	// ErrLightCapacity is returned when more than MaxLights sources are
	// enabled within one frame.
	ErrLightCapacity = errors.New("render: light registry is full")

	// ErrInvalidLightHandle is returned for handles not issued in the current frame.
	ErrInvalidLightHandle = errors.New("render: invalid light handle")

	// ErrNoMaterial is returned when a polygon is submitted without a material.
	ErrNoMaterial = errors.New("render: polygon has no material")

	// ErrMatrixStackEmpty is returned by PopMatrix without a matching PushMatrix.
	ErrMatrixStackEmpty = errors.New("render: matrix stack is empty")
)
