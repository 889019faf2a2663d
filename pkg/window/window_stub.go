//go:build !cgo

package window

import (
	"context"
	"errors"

	"github.com/taigrr/scanline/pkg/render"
)

// Run reports that window mode is unavailable without cgo.
func Run(_ context.Context, _ *render.Context, _ render.FrameFunc, _ Options) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
