package render

import (
	"fmt"

	"github.com/taigrr/scanline/pkg/math3d"
)

// MaxLights is the number of light sources that can be enabled per frame.
const MaxLights = 32

// LightHandle identifies a light enabled in the current frame.
type LightHandle int

type lightSlot struct {
	light    Light
	disabled bool
}

// lightRegistry holds the lights enabled since the last Present, already
// carried into viewing space.
type lightRegistry struct {
	slots []lightSlot
}

func (r *lightRegistry) add(l Light, mv, mvit math3d.Mat4) (LightHandle, error) {
	if len(r.slots) >= MaxLights {
		return -1, ErrLightCapacity
	}
	r.slots = append(r.slots, lightSlot{light: l.toView(mv, mvit)})
	return LightHandle(len(r.slots) - 1), nil
}

func (r *lightRegistry) setDisabled(h LightHandle, disabled bool) error {
	if h < 0 || int(h) >= len(r.slots) {
		return fmt.Errorf("%w: %d", ErrInvalidLightHandle, h)
	}
	r.slots[h].disabled = disabled
	return nil
}

func (r *lightRegistry) reset() {
	clear(r.slots)
	r.slots = r.slots[:0]
}

func (r *lightRegistry) len() int {
	return len(r.slots)
}

// shade accumulates every enabled source at a view-space vertex and clamps
// the result to [0,1].
func (r *lightRegistry) shade(m *Material, vertex, normal math3d.Vec4) MaterialColor {
	var c MaterialColor
	for _, s := range r.slots {
		if s.disabled {
			continue
		}
		c = c.Add(s.light.contribute(m, vertex, normal))
	}
	return c.Clamp()
}
