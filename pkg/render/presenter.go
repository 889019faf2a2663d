package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// Presenter is a display surface that receives each finished frame.
type Presenter interface {
	Present(fb *Framebuffer) error
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(fb *Framebuffer) error

// Present calls f(fb).
func (f PresenterFunc) Present(fb *Framebuffer) error {
	return f(fb)
}

// PNGPresenter writes every frame to Dir as frame-NNNN.png.
type PNGPresenter struct {
	Dir   string
	Scale int // Integer upscale factor; values below 2 keep the buffer size
	frame int
}

// NewPNGPresenter creates a presenter writing into dir, creating it if needed.
func NewPNGPresenter(dir string, scale int) (*PNGPresenter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	return &PNGPresenter{Dir: dir, Scale: scale}, nil
}

// Present implements Presenter.
func (p *PNGPresenter) Present(fb *Framebuffer) error {
	path := filepath.Join(p.Dir, fmt.Sprintf("frame-%04d.png", p.frame))
	p.frame++

	var img image.Image = fb.ToImage()
	if p.Scale > 1 {
		img = upscale(img, p.Scale)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

// LastPath returns the file written by the most recent Present.
func (p *PNGPresenter) LastPath() string {
	if p.frame == 0 {
		return ""
	}
	return filepath.Join(p.Dir, fmt.Sprintf("frame-%04d.png", p.frame-1))
}

// upscale enlarges img by an integer factor with nearest-neighbor sampling
// so pixels stay crisp.
func upscale(img image.Image, scale int) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
