//go:build cgo

package window

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/taigrr/scanline/pkg/render"
)

// Run opens a desktop window showing the context's framebuffer and drives
// the main loop: every tick calls frame and then presents the result. It
// blocks until the window closes, Escape is pressed, ctx is cancelled or
// frame fails. The context's presenter is replaced by the window.
func Run(ctx context.Context, c *render.Context, frame render.FrameFunc, opts Options) error {
	opts = opts.withDefaults()
	fb := c.Framebuffer()

	g := &game{ctx: ctx, rc: c, frame: frame, log: opts.Logger}
	c.SetPresenter(g)

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(fb.Width*opts.Scale, fb.Height*opts.Scale)
	ebiten.SetTPS(opts.TPS)

	opts.Logger.Info("window opened",
		zap.String("title", opts.Title),
		zap.Int("width", fb.Width),
		zap.Int("height", fb.Height),
		zap.Int("scale", opts.Scale),
	)
	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type game struct {
	ctx   context.Context
	rc    *render.Context
	frame render.FrameFunc
	log   *zap.Logger

	pix   []byte
	fbImg *ebiten.Image
	w, h  int
}

func (g *game) Update() error {
	if g.ctx.Err() != nil || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if err := g.frame(g.rc); err != nil {
		return err
	}
	return g.rc.Present()
}

// Present implements render.Presenter by snapshotting the frame for the
// next Draw.
func (g *game) Present(fb *render.Framebuffer) error {
	g.pix = rgbaPixels(g.pix, fb)
	g.w, g.h = fb.Width, fb.Height
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.pix == nil {
		return
	}
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != g.w || g.fbImg.Bounds().Dy() != g.h {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(g.w, g.h)
	}
	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	fb := g.rc.Framebuffer()
	return fb.Width, fb.Height
}
