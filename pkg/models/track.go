package models

import (
	"errors"
	"fmt"
	"sort"

	"github.com/taigrr/gyro/pkg/math3d"
)

// Interpolation selects how a Track blends between keys.
type Interpolation int

const (
	InterpolationLinear Interpolation = iota
	InterpolationStep
	InterpolationCubicSpline
)

func (i Interpolation) String() string {
	switch i {
	case InterpolationStep:
		return "STEP"
	case InterpolationCubicSpline:
		return "CUBICSPLINE"
	default:
		return "LINEAR"
	}
}

// ErrEmptyTrack is returned when a track has no keys.
var ErrEmptyTrack = errors.New("models: rotation track has no keys")

// Track is a keyed rotation animation targeting one node.
type Track struct {
	Name   string
	Node   int
	Times  []float64 // Strictly increasing key times in seconds
	Values []math3d.Quat
	Interp Interpolation
}

// NewTrack validates and normalizes a set of rotation keys.
func NewTrack(node int, times []float64, values []math3d.Quat, interp Interpolation) (*Track, error) {
	if len(times) == 0 {
		return nil, ErrEmptyTrack
	}
	if len(times) != len(values) {
		return nil, fmt.Errorf("models: %d key times for %d rotations", len(times), len(values))
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return nil, fmt.Errorf("models: key time %d (%g) not after %g", i, times[i], times[i-1])
		}
	}

	norm := make([]math3d.Quat, len(values))
	for i, v := range values {
		norm[i] = v.Normalize()
	}
	return &Track{Node: node, Times: times, Values: norm, Interp: interp}, nil
}

// Duration returns the time of the last key.
func (t *Track) Duration() float64 {
	return t.Times[len(t.Times)-1]
}

// Sample returns the rotation at time at, clamped to the key range.
func (t *Track) Sample(at float64) math3d.Quat {
	last := len(t.Times) - 1
	if at <= t.Times[0] {
		return t.Values[0]
	}
	if at >= t.Times[last] {
		return t.Values[last]
	}

	// First key after at.
	next := sort.Search(last, func(i int) bool { return t.Times[i+1] > at }) + 1
	prev := next - 1

	if t.Interp == InterpolationStep {
		return t.Values[prev]
	}
	alpha := (at - t.Times[prev]) / (t.Times[next] - t.Times[prev])
	return t.Values[prev].Slerp(t.Values[next], alpha)
}
