package render

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFramebufferOriginBottomLeft(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.SetPixel(0, 0, ColorRed)
	fb.SetPixel(3, 2, ColorBlue)

	// memory is top row first
	if got := fb.Pixels[2*4+0]; got != ColorRed {
		t.Errorf("bottom-left pixel stored at %#08x, want red in last row", got)
	}
	if got := fb.Pixels[3]; got != ColorBlue {
		t.Errorf("top-right pixel stored at %#08x, want blue in first row", got)
	}

	img := fb.ToImage()
	if got := img.RGBAAt(0, 2); got != ToRGBA(ColorRed) {
		t.Errorf("image bottom-left = %v, want red", got)
	}
}

func TestFramebufferBounds(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		fb.SetPixel(p.X, p.Y, ColorWhite)
		if got := fb.GetPixel(p.X, p.Y); got != 0 {
			t.Errorf("GetPixel(%v) = %#08x, want 0", p, got)
		}
	}
	for _, c := range fb.Pixels {
		if c != 0 {
			t.Fatal("out of bounds write reached the buffer")
		}
	}
}

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Clear(ColorGreen)
	fb.ClearDepth(0.75)
	for i := range fb.Pixels {
		if fb.Pixels[i] != ColorGreen || fb.Depth[i] != 0.75 {
			t.Fatalf("index %d = %#08x/%v after clear", i, fb.Pixels[i], fb.Depth[i])
		}
	}
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 image.Point
		want   []image.Point
	}{
		{"horizontal", image.Pt(1, 1), image.Pt(4, 1), []image.Point{{1, 1}, {2, 1}, {3, 1}}},
		{"vertical down", image.Pt(2, 4), image.Pt(2, 1), []image.Point{{2, 4}, {2, 3}, {2, 2}}},
		{"diagonal", image.Pt(0, 0), image.Pt(3, 3), []image.Point{{0, 0}, {1, 1}, {2, 2}}},
		{"single point", image.Pt(2, 2), image.Pt(2, 2), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb := NewFramebuffer(6, 6)
			fb.DrawLine(tc.p0, tc.p1, ColorWhite)

			got := coverage(fb, 0)
			if len(got) != len(tc.want) {
				t.Errorf("drew %d pixels, want %d", len(got), len(tc.want))
			}
			for _, p := range tc.want {
				if _, ok := got[p]; !ok {
					t.Errorf("missing pixel %v", p)
				}
			}
			if _, ok := got[tc.p1]; ok && tc.p0 != tc.p1 {
				t.Errorf("end point %v should not be drawn", tc.p1)
			}
		})
	}
}

func TestDrawLineClipsToBuffer(t *testing.T) {
	fb := NewFramebuffer(5, 5)
	fb.DrawLine(image.Pt(-10, 2), image.Pt(20, 2), ColorWhite)
	if n := len(coverage(fb, 0)); n != 5 {
		t.Errorf("drew %d pixels, want 5", n)
	}
}

func TestDrawLineFarEndpoints(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 image.Point
		want   int
	}{
		{"horizontal from far left", image.Pt(-1_000_000_000, 2), image.Pt(3, 2), 3},
		{"vertical through buffer", image.Pt(1, -1_000_000_000), image.Pt(1, 1_000_000_000), 5},
		{"entirely outside", image.Pt(-1_000_000_000, -5), image.Pt(1_000_000_000, -5), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb := NewFramebuffer(5, 5)
			done := make(chan struct{})
			go func() {
				fb.DrawLine(tc.p0, tc.p1, ColorWhite)
				close(done)
			}()
			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("DrawLine did not finish within a second")
			}
			if n := len(coverage(fb, 0)); n != tc.want {
				t.Errorf("drew %d pixels, want %d", n, tc.want)
			}
		})
	}
}

func TestDrawPoints(t *testing.T) {
	fb := NewFramebuffer(5, 5)
	pts := []image.Point{{0, 0}, {4, 4}, {2, 3}}

	fb.DrawPoints(pts, ColorRed)
	for _, p := range pts {
		if fb.GetPixel(p.X, p.Y) != ColorRed {
			t.Errorf("point %v not drawn", p)
		}
	}

	colors := []uint32{ColorGreen, ColorBlue, ColorWhite}
	if err := fb.DrawPointsColors(pts, colors); err != nil {
		t.Fatal(err)
	}
	for i, p := range pts {
		if got := fb.GetPixel(p.X, p.Y); got != colors[i] {
			t.Errorf("point %v = %#08x, want %#08x", p, got, colors[i])
		}
	}

	if err := fb.DrawPointsColors(pts, colors[:1]); err == nil {
		t.Error("mismatched lengths should fail")
	}
}

func TestSavePNG(t *testing.T) {
	fb := NewFramebuffer(8, 4)
	fb.Clear(ColorBlue)
	fb.SetPixel(0, 0, ColorRed)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := fb.SavePNG(path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("bounds = %v", b)
	}
	if got := FromColor(img.At(0, 3)); got != ColorRed {
		t.Errorf("bottom-left = %#08x, want red", got)
	}
}
