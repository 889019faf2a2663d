package render

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// TextureMode selects how a texture sample is combined with the lit color.
type TextureMode int

const (
	TextureModulate TextureMode = iota // Multiply texel and lit color
	TextureDecal                       // Replace lit color with texel
)

func (m TextureMode) String() string {
	switch m {
	case TextureModulate:
		return "modulate"
	case TextureDecal:
		return "decal"
	default:
		return fmt.Sprintf("TextureMode(%d)", int(m))
	}
}

// Texture holds a 2D ARGB image for texture mapping. Row 0 is the top of
// the image and maps to v=0.
type Texture struct {
	Width  int
	Height int
	Pixels []uint32 // Row-major ARGB pixel data
}

// NewTexture creates an empty texture with the given dimensions.
func NewTexture(width, height int) *Texture {
	return &Texture{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
	}
}

// LoadTexture loads a texture from an image file.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture: %w", err)
	}
	defer f.Close()

	return DecodeTexture(f)
}

// DecodeTexture decodes an encoded image (PNG, JPEG, GIF, BMP, TIFF or
// WebP) into a texture.
func DecodeTexture(r io.Reader) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return TextureFromImage(img), nil
}

// TextureFromImage creates a texture from an image.Image.
func TextureFromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	tex := NewTexture(width, height)

	for y := range height {
		for x := range width {
			tex.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}

	return tex
}

// NewCheckerTexture creates a procedural black and white checkerboard
// with squares of checkSize texels.
func NewCheckerTexture(width, height, checkSize int) *Texture {
	tex := NewTexture(width, height)
	for y := range height {
		for x := range width {
			var c uint8
			evenX := (x/checkSize)%2 == 0
			evenY := (y/checkSize)%2 == 0
			if evenX != evenY {
				c = 255
			}
			tex.SetPixel(x, y, ARGB(255, c, c, c))
		}
	}
	return tex
}

// SetPixel sets a pixel in the texture.
func (t *Texture) SetPixel(x, y int, c uint32) {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return
	}
	t.Pixels[y*t.Width+x] = c
}

// GetPixel returns the pixel at (x, y) with bounds checking.
func (t *Texture) GetPixel(x, y int) uint32 {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return 0
	}
	return t.Pixels[y*t.Width+x]
}

// Sample bilinearly samples the texture at (u, v) in [0,1].
// Coordinates are scaled by (Width-1, Height-1); neighbours past the right
// or bottom edge contribute transparent black. Blending runs along u first,
// then along v, per channel.
func (t *Texture) Sample(u, v float64) uint32 {
	if t.Width == 0 || t.Height == 0 {
		return 0
	}
	u = clamp01(u) * float64(t.Width-1)
	v = clamp01(v) * float64(t.Height-1)
	x, y := int(u), int(v)

	c0 := t.Pixels[y*t.Width+x]
	var c1, c2, c3 uint32
	if x+1 < t.Width {
		c1 = t.Pixels[y*t.Width+x+1]
	}
	if y+1 < t.Height {
		c2 = t.Pixels[(y+1)*t.Width+x]
		if x+1 < t.Width {
			c3 = t.Pixels[(y+1)*t.Width+x+1]
		}
	}

	ur, vr := u-float64(x), v-float64(y)
	return mergeColor(mergeColor(c0, c1, ur), mergeColor(c2, c3, ur), vr)
}

func mergeComponent(c0, c1 uint8, ratio float64) uint8 {
	c := float64(c0)/255*(1-ratio) + float64(c1)/255*ratio
	return uint8(255 * c)
}

func mergeColor(c0, c1 uint32, ratio float64) uint32 {
	a0, r0, g0, b0 := SplitARGB(c0)
	a1, r1, g1, b1 := SplitARGB(c1)
	return ARGB(
		mergeComponent(a0, a1, ratio),
		mergeComponent(r0, r1, ratio),
		mergeComponent(g0, g1, ratio),
		mergeComponent(b0, b1, ratio),
	)
}

func modulateComponent(c0, c1 uint8) uint8 {
	return uint8(float64(c0) / 255 * (float64(c1) / 255) * 255)
}

// Modulate multiplies two pixels channel by channel in normalized space.
func Modulate(c0, c1 uint32) uint32 {
	a0, r0, g0, b0 := SplitARGB(c0)
	a1, r1, g1, b1 := SplitARGB(c1)
	return ARGB(
		modulateComponent(a0, a1),
		modulateComponent(r0, r1),
		modulateComponent(g0, g1),
		modulateComponent(b0, b1),
	)
}

// Decal returns the texel unchanged.
func Decal(_, texel uint32) uint32 {
	return texel
}

// Combine applies the texture mode to a lit color and a texel.
func (m TextureMode) Combine(lit, texel uint32) uint32 {
	if m == TextureDecal {
		return Decal(lit, texel)
	}
	return Modulate(lit, texel)
}
