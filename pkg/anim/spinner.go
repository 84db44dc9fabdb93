// Package anim animates orientations with harmonica springs.
package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/gyro/pkg/math3d"
)

const (
	// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
	decayFrequency = 4.0
	decayDamping   = 1.0
)

// Axis is the angular velocity about one axis, in degrees per frame, with
// a spring that decays it toward zero.
type Axis struct {
	Velocity float64
	spring   harmonica.Spring
	accel    float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewAxis creates an axis at rest for the given frame rate.
func NewAxis(fps int) Axis {
	return Axis{spring: harmonica.NewSpring(harmonica.FPS(fps), decayFrequency, decayDamping)}
}

// Update decays the velocity by one frame and returns the velocity that
// applied during the frame.
func (a *Axis) Update() float64 {
	v := a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
	return v
}

// Spinner accumulates pitch, yaw and roll impulses into an orientation.
type Spinner struct {
	Pitch, Yaw, Roll Axis
	Orientation      math3d.Quat
	fps              int
}

// NewSpinner creates a spinner at rest at orientation start.
func NewSpinner(fps int, start math3d.Quat) *Spinner {
	s := &Spinner{fps: fps}
	s.Reset(start)
	return s
}

// Update advances one frame. The frame's rotation is applied in the
// orientation's local frame.
func (s *Spinner) Update() math3d.Quat {
	pitch := s.Pitch.Update()
	yaw := s.Yaw.Update()
	roll := s.Roll.Update()
	if pitch != 0 || yaw != 0 || roll != 0 {
		// Renormalize against drift.
		s.Orientation = s.Orientation.Rotate(pitch, yaw, roll).Normalize()
	}
	return s.Orientation
}

// ApplyImpulse adds to the angular velocities, in degrees per frame.
func (s *Spinner) ApplyImpulse(pitch, yaw, roll float64) {
	s.Pitch.Velocity += pitch
	s.Yaw.Velocity += yaw
	s.Roll.Velocity += roll
}

// Stop zeroes every velocity and keeps the orientation.
func (s *Spinner) Stop() {
	s.Pitch = NewAxis(s.fps)
	s.Yaw = NewAxis(s.fps)
	s.Roll = NewAxis(s.fps)
}

// Reset stops the spinner and moves it to orientation q.
func (s *Spinner) Reset(q math3d.Quat) {
	s.Stop()
	s.Orientation = q
}

// Moving reports whether any velocity is above eps.
func (s *Spinner) Moving(eps float64) bool {
	return math.Abs(s.Pitch.Velocity) > eps || math.Abs(s.Yaw.Velocity) > eps || math.Abs(s.Roll.Velocity) > eps
}
