package render

import (
	"context"
	"time"
)

// FrameFunc draws one frame into the context.
type FrameFunc func(c *Context) error

// LoopOptions controls RunLoop.
type LoopOptions struct {
	FPS       int // Target frame rate; 0 renders as fast as possible
	MaxFrames int // Stop after this many frames; 0 runs until ctx is done
}

// RunLoop drives a headless main loop: each iteration calls frame and then
// Present. It returns when ctx is cancelled, MaxFrames frames have been
// presented, or frame or Present fails.
func RunLoop(ctx context.Context, c *Context, frame FrameFunc, opts LoopOptions) error {
	var targetDuration time.Duration
	if opts.FPS > 0 {
		targetDuration = time.Second / time.Duration(opts.FPS)
	}

	for n := 0; opts.MaxFrames == 0 || n < opts.MaxFrames; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		start := time.Now()
		if err := frame(c); err != nil {
			return err
		}
		if err := c.Present(); err != nil {
			return err
		}

		// Frame timing
		if elapsed := time.Since(start); elapsed < targetDuration {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(targetDuration - elapsed):
			}
		}
	}
	return nil
}
