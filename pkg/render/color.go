package render

import (
	"image/color"
	"math"
)

// MaterialColor is a floating point RGBA color. Channels are nominally in
// [0,1] but are only clamped when converted to a packed pixel.
type MaterialColor struct {
	R, G, B, A float64
}

// RGBAColor creates a MaterialColor from its four channels.
func RGBAColor(r, g, b, a float64) MaterialColor {
	return MaterialColor{r, g, b, a}
}

// Gray returns a color with r, g and b set to v and alpha set to a.
func Gray(v, a float64) MaterialColor {
	return MaterialColor{v, v, v, a}
}

// Add returns the component-wise sum.
//
//nolint:st1016 // a+b naming convention is clearer for color operations
func (a MaterialColor) Add(b MaterialColor) MaterialColor {
	return MaterialColor{a.R + b.R, a.G + b.G, a.B + b.B, a.A + b.A}
}

// Sub returns the component-wise difference.
//
//nolint:st1016 // a-b naming convention is clearer for color operations
func (a MaterialColor) Sub(b MaterialColor) MaterialColor {
	return MaterialColor{a.R - b.R, a.G - b.G, a.B - b.B, a.A - b.A}
}

// Mul returns the component-wise product.
//
//nolint:st1016 // a*b naming convention is clearer for color operations
func (a MaterialColor) Mul(b MaterialColor) MaterialColor {
	return MaterialColor{a.R * b.R, a.G * b.G, a.B * b.B, a.A * b.A}
}

// Scale multiplies every channel by s.
func (c MaterialColor) Scale(s float64) MaterialColor {
	return MaterialColor{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Div divides every channel by s.
func (c MaterialColor) Div(s float64) MaterialColor {
	return MaterialColor{c.R / s, c.G / s, c.B / s, c.A / s}
}

// Clamp limits every channel to [0,1].
func (c MaterialColor) Clamp() MaterialColor {
	return MaterialColor{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// ToARGB packs the color into a 32-bit ARGB pixel. Each channel is scaled
// by 255 and truncated independently.
func (c MaterialColor) ToARGB() uint32 {
	return ARGB(channel(c.A), channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	return uint8(int(v*255) & 0xff)
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(v, 0))
}

// ARGB packs four 8-bit channels as alpha<<24 | red<<16 | green<<8 | blue.
func ARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// RGB packs an opaque pixel.
func RGB(r, g, b uint8) uint32 {
	return ARGB(0xff, r, g, b)
}

// SplitARGB unpacks a pixel into its alpha, red, green and blue channels.
func SplitARGB(c uint32) (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// ToRGBA converts a packed pixel to a color.RGBA.
func ToRGBA(c uint32) color.RGBA {
	a, r, g, b := SplitARGB(c)
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// FromColor packs any color.Color into an ARGB pixel.
func FromColor(c color.Color) uint32 {
	r, g, b, a := c.RGBA()
	// RGBA returns 16-bit values, scale to 8-bit
	return ARGB(uint8(a>>8), uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Colors for convenience
const (
	ColorBlack uint32 = 0xff000000
	ColorWhite uint32 = 0xffffffff
	ColorRed   uint32 = 0xffff0000
	ColorGreen uint32 = 0xff00ff00
	ColorBlue  uint32 = 0xff0000ff
)
