package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/gyro/pkg/math3d"
)

// Frequency 6.0 = snappy, damping 0.8 = slight overshoot before settling.
const (
	tweenFrequency = 6.0
	tweenDamping   = 0.8
	tweenSettle    = 1e-3
)

// Tween eases an orientation from a start to a target. A spring drives
// progress from 0 to 1 and the orientation is the slerp at that progress.
type Tween struct {
	From, To math3d.Quat

	spring   harmonica.Spring
	progress float64
	velocity float64
}

// NewTween creates a tween from from to to.
func NewTween(fps int, from, to math3d.Quat) *Tween {
	return &Tween{
		From:   from,
		To:     to,
		spring: harmonica.NewSpring(harmonica.FPS(fps), tweenFrequency, tweenDamping),
	}
}

// Update advances one frame and returns the current orientation.
func (t *Tween) Update() math3d.Quat {
	if !t.Done() {
		t.progress, t.velocity = t.spring.Update(t.progress, t.velocity, 1)
	}
	return t.Value()
}

// Value returns the current orientation. Once Done it is exactly To.
func (t *Tween) Value() math3d.Quat {
	if t.Done() {
		return t.To
	}
	return t.From.Slerp(t.To, t.progress)
}

// Progress returns the spring position, which may briefly exceed 1.
func (t *Tween) Progress() float64 {
	return t.progress
}

// Retarget starts a new tween toward to from the current orientation.
func (t *Tween) Retarget(to math3d.Quat) {
	t.From = t.Value()
	t.To = to
	t.progress = 0
	t.velocity = 0
}

// Done reports whether progress has settled at 1.
func (t *Tween) Done() bool {
	return math.Abs(1-t.progress) < tweenSettle && math.Abs(t.velocity) < tweenSettle
}
