package main

import (
	"math"
	"testing"
)

func TestSpinnerSteadyState(t *testing.T) {
	s := newSpinner(30, 90)
	for range 30 {
		s.Update()
	}
	// One second at 90 deg/s.
	if math.Abs(s.Angle-90) > 1e-9 {
		t.Errorf("Angle = %v, want 90", s.Angle)
	}
}

func TestSpinnerImpulseDecays(t *testing.T) {
	s := newSpinner(60, 0)
	s.Impulse(360)

	prev := s.Speed
	for range 120 {
		s.Update()
		if s.Speed > prev+1e-9 {
			t.Fatalf("speed grew from %v to %v", prev, s.Speed)
		}
		if s.Speed < -1e-6 {
			t.Fatalf("speed overshot to %v", s.Speed)
		}
		prev = s.Speed
	}
	if s.Speed > 10 {
		t.Errorf("speed after 2s = %v, want near 0", s.Speed)
	}
	if s.Angle <= 0 {
		t.Error("impulse did not turn the model")
	}

	s.Reset()
	if s.Angle != 0 || s.Speed != 0 {
		t.Errorf("after Reset angle=%v speed=%v", s.Angle, s.Speed)
	}
}

func TestSpinnerWraps(t *testing.T) {
	s := newSpinner(1, 300)
	s.Update()
	s.Update()
	if math.Abs(s.Angle-240) > 1e-9 {
		t.Errorf("Angle = %v, want 240", s.Angle)
	}
}

func TestSpinnerDefaultsFPS(t *testing.T) {
	for _, fps := range []int{0, -5} {
		s := newSpinner(fps, 60)
		for range defaultFPS {
			s.Update()
		}
		if math.Abs(s.Angle-60) > 1e-9 {
			t.Errorf("fps %d: Angle after %d frames = %v, want 60", fps, defaultFPS, s.Angle)
		}
	}
}
