package math3d

import "math"

// smallAngleLimit is the bound on θ⁴/24 below which QuatRotation uses the
// series expansions of cos θ and sin θ / θ.
const smallAngleLimit = 1e-8

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// QuatRotation returns the rotation whose rotation vector is (ax, ay, az),
// in degrees: a turn of |(ax, ay, az)| degrees around that vector.
//
// Near zero this switches to the series 1-θ²/2 for W and 1-θ²/6 for
// sin θ / θ, so tiny angles do not divide zero by zero.
func QuatRotation(ax, ay, az float64) Quat {
	tx := radians(ax) * 0.5
	ty := radians(ay) * 0.5
	tz := radians(az) * 0.5
	magSq := tx*tx + ty*ty + tz*tz

	var w, s float64
	if magSq*magSq/24 < smallAngleLimit {
		w = 1 - magSq/2
		s = 1 - magSq/6
	} else {
		mag := math.Sqrt(magSq)
		w = math.Cos(mag)
		s = math.Sin(mag) / mag
	}
	return quat(tx*s, ty*s, tz*s, w)
}

// QuatRotationV is QuatRotation taking the angles as a vector.
func QuatRotationV(angles Vec3) Quat {
	return QuatRotation(angles.X, angles.Y, angles.Z)
}

// QuatRotationX returns a rotation of deg degrees about the X axis.
func QuatRotationX(deg float64) Quat { return QuatRotation(deg, 0, 0) }

// QuatRotationY returns a rotation of deg degrees about the Y axis.
func QuatRotationY(deg float64) Quat { return QuatRotation(0, deg, 0) }

// QuatRotationZ returns a rotation of deg degrees about the Z axis.
func QuatRotationZ(deg float64) Quat { return QuatRotation(0, 0, deg) }

// QuatRotationAxis returns a rotation of deg degrees about axis. The axis
// is normalized; a zero axis yields NaN.
func QuatRotationAxis(deg float64, axis Vec3) Quat {
	return QuatRotationAxisXYZ(deg, axis.X, axis.Y, axis.Z)
}

// QuatRotationAxisXYZ is QuatRotationAxis with the axis given as scalars.
func QuatRotationAxisXYZ(deg, x, y, z float64) Quat {
	half := radians(deg / 2)
	s := math.Sin(half)
	l := math.Sqrt(x*x + y*y + z*z)
	return quat(x/l*s, y/l*s, z/l*s, math.Cos(half))
}

// eulerHalves returns the sines and cosines of the half angles.
func eulerHalves(rx, ry, rz float64) (sx, cx, sy, cy, sz, cz float64) {
	sx, cx = math.Sincos(rx * 0.5)
	sy, cy = math.Sincos(ry * 0.5)
	sz, cz = math.Sincos(rz * 0.5)
	return
}

// QuatEulerRadXYZ composes rotations about X, then Y, then Z (radians),
// each about the fixed world axes. It equals Rz ⊗ Ry ⊗ Rx.
func QuatEulerRadXYZ(rx, ry, rz float64) Quat {
	sx, cx, sy, cy, sz, cz := eulerHalves(rx, ry, rz)
	return quat(
		sx*cy*cz-cx*sy*sz,
		cx*sy*cz+sx*cy*sz,
		cx*cy*sz-sx*sy*cz,
		cx*cy*cz+sx*sy*sz,
	)
}

// QuatEulerRadZYX composes rotations about Z, then Y, then X (radians),
// each about the fixed world axes. It equals Rx ⊗ Ry ⊗ Rz.
func QuatEulerRadZYX(rx, ry, rz float64) Quat {
	sx, cx, sy, cy, sz, cz := eulerHalves(rx, ry, rz)
	return quat(
		sx*cy*cz+cx*sy*sz,
		cx*sy*cz-sx*cy*sz,
		cx*cy*sz+sx*sy*cz,
		cx*cy*cz-sx*sy*sz,
	)
}

// QuatEulerDegXYZ is QuatEulerRadXYZ in degrees.
func QuatEulerDegXYZ(x, y, z float64) Quat {
	return QuatEulerRadXYZ(radians(x), radians(y), radians(z))
}

// QuatEulerDegZYX is QuatEulerRadZYX in degrees.
func QuatEulerDegZYX(x, y, z float64) Quat {
	return QuatEulerRadZYX(radians(x), radians(y), radians(z))
}

// QuatEulerRadXYZV takes the angles as a vector.
func QuatEulerRadXYZV(v Vec3) Quat { return QuatEulerRadXYZ(v.X, v.Y, v.Z) }

// QuatEulerRadZYXV takes the angles as a vector.
func QuatEulerRadZYXV(v Vec3) Quat { return QuatEulerRadZYX(v.X, v.Y, v.Z) }

// QuatEulerDegXYZV takes the angles as a vector.
func QuatEulerDegXYZV(v Vec3) Quat { return QuatEulerDegXYZ(v.X, v.Y, v.Z) }

// QuatEulerDegZYXV takes the angles as a vector.
func QuatEulerDegZYXV(v Vec3) Quat { return QuatEulerDegZYX(v.X, v.Y, v.Z) }

// Rotate returns q followed, in q's local frame, by QuatRotation(ax, ay,
// az): the product q ⊗ r. Transforming a vector by the result applies the
// new rotation first.
func (q Quat) Rotate(ax, ay, az float64) Quat {
	return q.Mul(QuatRotation(ax, ay, az))
}

// RotateV is Rotate taking the angles as a vector.
func (q Quat) RotateV(angles Vec3) Quat {
	return q.Rotate(angles.X, angles.Y, angles.Z)
}

// RotateX rotates q locally by deg degrees about X.
func (q Quat) RotateX(deg float64) Quat { return q.Rotate(deg, 0, 0) }

// RotateY rotates q locally by deg degrees about Y.
func (q Quat) RotateY(deg float64) Quat { return q.Rotate(0, deg, 0) }

// RotateZ rotates q locally by deg degrees about Z.
func (q Quat) RotateZ(deg float64) Quat { return q.Rotate(0, 0, deg) }

// RotateAxis rotates q locally by deg degrees about axis.
func (q Quat) RotateAxis(deg float64, axis Vec3) Quat {
	return q.Mul(QuatRotationAxis(deg, axis))
}

// RotateTo stores q.Rotate(ax, ay, az) in dst. dst may point at q.
func (q Quat) RotateTo(ax, ay, az float64, dst *Quat) {
	*dst = q.Rotate(ax, ay, az)
}

// RotateXTo stores q.RotateX(deg) in dst. dst may point at q.
func (q Quat) RotateXTo(deg float64, dst *Quat) { *dst = q.RotateX(deg) }

// RotateYTo stores q.RotateY(deg) in dst. dst may point at q.
func (q Quat) RotateYTo(deg float64, dst *Quat) { *dst = q.RotateY(deg) }

// RotateZTo stores q.RotateZ(deg) in dst. dst may point at q.
func (q Quat) RotateZTo(deg float64, dst *Quat) { *dst = q.RotateZ(deg) }

// RotateAxisTo stores q.RotateAxis(deg, axis) in dst. dst may point at q.
func (q Quat) RotateAxisTo(deg float64, axis Vec3, dst *Quat) {
	*dst = q.RotateAxis(deg, axis)
}
