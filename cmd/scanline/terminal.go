package main

import (
	"context"
	"fmt"
	"image"

	uv "github.com/charmbracelet/ultraviolet"
	"go.uber.org/zap"

	"github.com/taigrr/scanline/internal/config"
	"github.com/taigrr/scanline/pkg/render"
)

// runTerminal draws frames with half-block cells until ctx is done or the
// user quits. A resize restarts the loop with a framebuffer matching the
// new terminal size.
func runTerminal(ctx context.Context, cfg *config.Config, sc *scene, log *zap.Logger) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)
	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	resized := make(chan uv.Rectangle, 1)
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				// Only the latest size matters
				select {
				case <-resized:
				default:
				}
				resized <- screenArea(ev.Width, ev.Height)
			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "q", "ctrl+c"):
					cancel()
					return
				case ev.MatchString("x"):
					sc.send(toggleWireframe)
				case ev.MatchString("c"):
					sc.send(toggleCulling)
				case ev.MatchString("t"):
					sc.send(toggleTexture)
				case ev.MatchString("space"):
					sc.send(kick)
				case ev.MatchString("r"):
					sc.send(resetSpin)
				}
			}
		}
	}()

	// Half blocks are roughly square, so the buffer's own shape is the aspect.
	cfg.Viewing.Aspect = 0

	area := screenArea(width, height)
	for {
		loopCtx, stop := context.WithCancel(ctx)
		next := make(chan uv.Rectangle, 1)
		done := make(chan struct{})
		go func() {
			defer close(done)
			select {
			case r := <-resized:
				next <- r
				stop()
			case <-loopCtx.Done():
			}
		}()

		err := drawTerminal(loopCtx, term, area, cfg, sc, log)
		stop()
		<-done

		select {
		case area = <-next:
			log.Debug("terminal resized", zap.Int("cols", area.Max.X), zap.Int("rows", area.Max.Y))
			term.Erase()
			term.Resize(area.Max.X, area.Max.Y)
			continue
		default:
		}
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
}

func drawTerminal(ctx context.Context, term *uv.Terminal, area uv.Rectangle, cfg *config.Config, sc *scene, log *zap.Logger) error {
	p := render.NewTerminalPresenter(term, area)
	w, h := p.FramebufferSize()
	if w <= 0 || h <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	rc := render.NewContext(w, h, render.WithLogger(log), render.WithPresenter(p))
	if err := cfg.Apply(rc); err != nil {
		return err
	}
	return render.RunLoop(ctx, rc, sc.frame, render.LoopOptions{
		FPS:       cfg.Window.FPS,
		MaxFrames: cfg.Output.Frames,
	})
}

func screenArea(cols, rows int) uv.Rectangle {
	return uv.Rectangle{Max: image.Pt(cols, rows)}
}
