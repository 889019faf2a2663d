// scanline - software 3D renderer
// Renders a lit, optionally textured model with a scanline rasterizer and
// shows it in the terminal, in a desktop window, or as PNG files.
//
// Terminal controls:
//
//	X      - Toggle wireframe
//	C      - Toggle back-face culling
//	T      - Toggle texture
//	Space  - Spin faster
//	R      - Reset rotation
//	Q/Esc  - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/taigrr/scanline/internal/config"
	"github.com/taigrr/scanline/internal/logger"
	"github.com/taigrr/scanline/pkg/render"
	"github.com/taigrr/scanline/pkg/window"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "scanline - software 3D renderer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: scanline [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nTerminal controls:\n")
		fmt.Fprintf(os.Stderr, "  X      - Toggle wireframe\n")
		fmt.Fprintf(os.Stderr, "  C      - Toggle back-face culling\n")
		fmt.Fprintf(os.Stderr, "  T      - Toggle texture\n")
		fmt.Fprintf(os.Stderr, "  Space  - Spin faster\n")
		fmt.Fprintf(os.Stderr, "  R      - Reset rotation\n")
		fmt.Fprintf(os.Stderr, "  Q/Esc  - Quit\n")
	}
	config.ParseFlags()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal presenter owns the screen, so console logs stay off.
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, cfg.Output.Mode == "terminal"); err != nil {
		return err
	}
	defer logger.Sync()
	log := logger.Named("scanline")

	sc, err := newScene(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderLog := logger.Named("render")
	switch cfg.Output.Mode {
	case "png":
		return runPNG(ctx, cfg, sc, renderLog)
	case "window":
		rc := render.NewContext(cfg.Window.Width, cfg.Window.Height, render.WithLogger(renderLog))
		if err := cfg.Apply(rc); err != nil {
			return err
		}
		return window.Run(ctx, rc, sc.frame, window.Options{
			Title:  cfg.Window.Title,
			Scale:  cfg.Window.Scale,
			TPS:    cfg.Window.FPS,
			Logger: log,
		})
	default:
		return runTerminal(ctx, cfg, sc, renderLog)
	}
}

// runPNG renders Output.Frames frames (at least one) into Output.Dir.
func runPNG(ctx context.Context, cfg *config.Config, sc *scene, log *zap.Logger) error {
	p, err := render.NewPNGPresenter(cfg.Output.Dir, cfg.Window.Scale)
	if err != nil {
		return err
	}
	rc := render.NewContext(cfg.Window.Width, cfg.Window.Height, render.WithLogger(log), render.WithPresenter(p))
	if err := cfg.Apply(rc); err != nil {
		return err
	}

	frames := max(cfg.Output.Frames, 1)
	if err := render.RunLoop(ctx, rc, sc.frame, render.LoopOptions{MaxFrames: frames}); err != nil {
		return err
	}
	log.Info("frames written", zap.Int("frames", rc.Frame()), zap.String("last", p.LastPath()))
	return nil
}
