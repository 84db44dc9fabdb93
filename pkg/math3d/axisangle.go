package math3d

import "math"

// AxisAngle is a rotation of Angle degrees about the axis (X, Y, Z).
type AxisAngle struct {
	Angle   float64
	X, Y, Z float64
}

// AA creates an AxisAngle.
func AA(angle, x, y, z float64) AxisAngle {
	return AxisAngle{angle, x, y, z}
}

// Axis returns the axis as a vector.
func (a AxisAngle) Axis() Vec3 {
	return Vec3{a.X, a.Y, a.Z}
}

// QuatFromAxisAngle converts a to a quaternion. The axis is used as given,
// so it must already be unit length for a unit result. QuatRotationAxis
// normalizes instead.
func QuatFromAxisAngle(a AxisAngle) Quat {
	s, c := math.Sincos(radians(a.Angle) / 2)
	return quat(a.X*s, a.Y*s, a.Z*s, c)
}

// QuatRotationAxisAngle converts a to a quaternion, normalizing the axis.
func QuatRotationAxisAngle(a AxisAngle) Quat {
	return QuatRotationAxisXYZ(a.Angle, a.X, a.Y, a.Z)
}

// AxisAngle converts a unit quaternion back to an angle in degrees and a
// unit axis. The identity reports a zero angle about X.
func (q Quat) AxisAngle() AxisAngle {
	x, y, z, qw := q.xyzw()
	w := math.Max(-1, math.Min(1, qw))
	s := math.Sqrt(1 - w*w)
	angle := degrees(2 * math.Acos(w))
	if s < 1e-9 {
		return AxisAngle{angle, 1, 0, 0}
	}
	return AxisAngle{angle, x / s, y / s, z / s}
}
