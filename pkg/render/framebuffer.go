// Package render implements a CPU scanline rendering pipeline: color and
// depth buffers, textures, Blinn-Phong vertex lighting, back-face culling,
// homogeneous clipping and an active-edge-table rasterizer.
package render

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
)

// Framebuffer holds the ARGB color buffer and the parallel depth buffer.
// Pixel coordinates have their origin at the bottom-left; memory is laid out
// top row first so the buffer can be blitted to a display directly.
type Framebuffer struct {
	Width  int       // Width in pixels
	Height int       // Height in pixels
	Pixels []uint32  // Row-major ARGB pixel data, top row first
	Depth  []float64 // Depth value per pixel, same layout as Pixels
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
		Depth:  make([]float64, width*height),
	}
}

// index maps a bottom-left based pixel coordinate to its memory offset.
func (fb *Framebuffer) index(x, y int) int {
	return (fb.Height-1-y)*fb.Width + x
}

func (fb *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// Clear fills the color buffer with a solid color.
func (fb *Framebuffer) Clear(c uint32) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// ClearDepth fills the depth buffer with d.
func (fb *Framebuffer) ClearDepth(d float64) {
	for i := range fb.Depth {
		fb.Depth[i] = d
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c uint32) {
	if !fb.inBounds(x, y) {
		return
	}
	fb.Pixels[fb.index(x, y)] = c
}

// GetPixel returns the color at (x, y).
// Returns 0 if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) uint32 {
	if !fb.inBounds(x, y) {
		return 0
	}
	return fb.Pixels[fb.index(x, y)]
}

// DepthAt returns the stored depth at (x, y).
// Returns 0 if out of bounds.
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	if !fb.inBounds(x, y) {
		return 0
	}
	return fb.Depth[fb.index(x, y)]
}

// DrawPoints writes c at every point.
func (fb *Framebuffer) DrawPoints(points []image.Point, c uint32) {
	for _, p := range points {
		fb.SetPixel(p.X, p.Y, c)
	}
}

// DrawPointsColors writes colors[i] at points[i].
func (fb *Framebuffer) DrawPointsColors(points []image.Point, colors []uint32) error {
	if len(points) != len(colors) {
		return fmt.Errorf("render: %d points but %d colors", len(points), len(colors))
	}
	for i, p := range points {
		fb.SetPixel(p.X, p.Y, colors[i])
	}
	return nil
}

// DrawLine draws a line from p0 towards p1 using Bresenham's algorithm.
// The end point itself is not written, so closed outlines do not paint
// shared corners twice.
func (fb *Framebuffer) DrawLine(p0, p1 image.Point, c uint32) {
	if !fb.inBounds(p0.X, p0.Y) || !fb.inBounds(p1.X, p1.Y) {
		var ok bool
		if p0, p1, ok = fb.clipLine(p0, p1); !ok {
			return
		}
	}
	x0, y0, x1, y1 := p0.X, p0.Y, p1.X, p1.Y
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx - dy

	for x0 != x1 || y0 != y1 {
		fb.SetPixel(x0, y0, c)
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// clipLine trims the segment to the buffer grown by one pixel on every
// side (Liang-Barsky), so a trimmed end falls on a pixel that is never
// written. It reports false when nothing of the segment is left.
func (fb *Framebuffer) clipLine(p0, p1 image.Point) (image.Point, image.Point, bool) {
	x0, y0 := float64(p0.X), float64(p0.Y)
	dx, dy := float64(p1.X-p0.X), float64(p1.Y-p0.Y)
	xmin, ymin := -1.0, -1.0
	xmax, ymax := float64(fb.Width), float64(fb.Height)

	t0, t1 := 0.0, 1.0
	for _, b := range [4][2]float64{
		{-dx, x0 - xmin},
		{dx, xmax - x0},
		{-dy, y0 - ymin},
		{dy, ymax - y0},
	} {
		p, q := b[0], b[1]
		if p == 0 {
			if q < 0 {
				return p0, p1, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return p0, p1, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return p0, p1, false
			}
			t1 = min(t1, t)
		}
	}

	at := func(t float64) image.Point {
		return image.Pt(int(math.Round(x0+t*dx)), int(math.Round(y0+t*dy)))
	}
	a, b := p0, p1
	if t0 > 0 {
		a = at(t0)
	}
	if t1 < 1 {
		b = at(t1)
	}
	return a, b, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for row := range fb.Height {
		for x := range fb.Width {
			img.SetRGBA(x, row, ToRGBA(fb.Pixels[row*fb.Width+x]))
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
