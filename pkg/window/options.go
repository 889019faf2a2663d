// Package window displays rendered frames in a desktop window.
package window

import (
	"go.uber.org/zap"

	"github.com/taigrr/scanline/pkg/render"
)

// Options configures Run.
type Options struct {
	Title  string
	Scale  int // Window pixels per framebuffer pixel
	TPS    int // Ticks (frames) per second
	Logger *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "scanline"
	}
	if o.Scale < 1 {
		o.Scale = 1
	}
	if o.TPS < 1 {
		o.TPS = 60
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// rgbaPixels converts the framebuffer's ARGB words to opaque RGBA bytes in
// memory row order, reusing dst when it is large enough.
func rgbaPixels(dst []byte, fb *render.Framebuffer) []byte {
	n := len(fb.Pixels) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, p := range fb.Pixels {
		_, r, g, b := render.SplitARGB(p)
		j := i * 4
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
	return dst
}
