package config

import (
	"errors"
	"fmt"

	"github.com/taigrr/scanline/pkg/render"
)

// Validate reports every setting that cannot produce a picture.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps %d must be positive", c.Window.FPS))
	}
	if c.Window.Scale < 1 {
		errs = append(errs, fmt.Errorf("scale %d must be at least 1", c.Window.Scale))
	}
	if c.Viewing.Near <= 0 || c.Viewing.Far <= c.Viewing.Near {
		errs = append(errs, fmt.Errorf("depth range near=%v far=%v needs 0 < near < far", c.Viewing.Near, c.Viewing.Far))
	}
	switch c.Output.Mode {
	case "terminal", "window", "png":
	default:
		errs = append(errs, fmt.Errorf("unknown output mode %q", c.Output.Mode))
	}
	if len(c.Lights) > render.MaxLights {
		errs = append(errs, fmt.Errorf("%d lights exceed the limit of %d", len(c.Lights), render.MaxLights))
	}
	if _, err := c.Sources(); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseColor(c.Scene.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	return errors.Join(errs...)
}
