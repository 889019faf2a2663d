package main

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// spinner turns the model around the y axis. Its speed is pulled back
// toward the target by a critically damped spring, so impulses fade out
// smoothly instead of stopping dead.
type spinner struct {
	Angle  float64 // Degrees
	Speed  float64 // Degrees per second
	Target float64 // Resting speed, degrees per second

	dt     float64
	accel  float64 // Spring velocity of Speed
	spring harmonica.Spring
}

// defaultFPS is the spring rate used when no frame rate is given.
const defaultFPS = 60

func newSpinner(fps int, target float64) *spinner {
	if fps <= 0 {
		fps = defaultFPS
	}
	return &spinner{
		Speed:  target,
		Target: target,
		dt:     1 / float64(fps),
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update advances one frame.
func (s *spinner) Update() {
	s.Angle = math.Mod(s.Angle+s.Speed*s.dt, 360)
	s.Speed, s.accel = s.spring.Update(s.Speed, s.accel, s.Target)
}

// Impulse adds to the current speed.
func (s *spinner) Impulse(degPerSec float64) {
	s.Speed += degPerSec
}

// Reset puts the model back at rest at angle 0.
func (s *spinner) Reset() {
	s.Angle, s.Speed, s.accel = 0, s.Target, 0
}
