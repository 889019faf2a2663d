package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the framebuffer to terminal cells and draws them on the
// screen. Each terminal row shows two framebuffer rows with ▀ (upper half
// block): fg is the top pixel, bg the bottom one.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		// framebuffer rows counted from the top of the image
		topRow := (row - area.Min.Y) * 2
		botRow := topRow + 1

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width {
				break
			}

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: fb.cellColor(x, topRow),
					Bg: fb.cellColor(x, botRow),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// cellColor returns the pixel at memory row r, or nil past the buffer.
func (fb *Framebuffer) cellColor(x, r int) color.Color {
	if r < 0 || r >= fb.Height {
		return nil
	}
	c := ToRGBA(fb.Pixels[r*fb.Width+x])
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// TerminalScreen is a screen that can flush drawn cells to the terminal,
// such as *uv.Terminal.
type TerminalScreen interface {
	uv.Screen
	Display() error
}

// TerminalPresenter draws frames onto a terminal with half-block cells.
type TerminalPresenter struct {
	Screen TerminalScreen
	Area   uv.Rectangle
}

// NewTerminalPresenter creates a presenter drawing into area.
func NewTerminalPresenter(scr TerminalScreen, area uv.Rectangle) *TerminalPresenter {
	return &TerminalPresenter{Screen: scr, Area: area}
}

// FramebufferSize returns the buffer size that fills the area: one pixel
// per column and two per row.
func (p *TerminalPresenter) FramebufferSize() (int, int) {
	return p.Area.Max.X - p.Area.Min.X, (p.Area.Max.Y - p.Area.Min.Y) * 2
}

// Present implements Presenter.
func (p *TerminalPresenter) Present(fb *Framebuffer) error {
	fb.Draw(p.Screen, p.Area)
	return p.Screen.Display()
}
