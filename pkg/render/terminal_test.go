package render

import (
	"image"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
)

func TestTerminalPresenterFramebufferSize(t *testing.T) {
	p := NewTerminalPresenter(nil, uv.Rectangle{Min: image.Pt(2, 1), Max: image.Pt(42, 21)})
	w, h := p.FramebufferSize()
	if w != 40 || h != 40 {
		t.Errorf("FramebufferSize() = %dx%d, want 40x40", w, h)
	}
}

func TestCellColor(t *testing.T) {
	fb := NewFramebuffer(2, 3)
	fb.SetPixel(0, 2, ColorRed) // top row of the image
	fb.SetPixel(1, 0, ARGB(0, 10, 20, 30))

	tests := []struct {
		name string
		x, r int
		want uint32
		none bool
	}{
		{"top row", 0, 0, ColorRed, false},
		{"transparent", 1, 2, 0, true},
		{"past bottom", 0, 3, 0, true},
		{"negative row", 0, -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fb.cellColor(tt.x, tt.r)
			if tt.none {
				if got != nil {
					t.Errorf("cellColor(%d, %d) = %v, want nil", tt.x, tt.r, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("cellColor(%d, %d) = nil", tt.x, tt.r)
			}
			if c := FromColor(got); c != tt.want {
				t.Errorf("cellColor(%d, %d) = %08x, want %08x", tt.x, tt.r, c, tt.want)
			}
		})
	}
}
