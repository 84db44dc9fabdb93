package math3d

import "math"

// Mat3 returns the rotation matrix of q. q is not normalized first, so a
// non-unit quaternion gives a matrix that also scales.
func (q Quat) Mat3() Mat3 {
	x, y, z, w := q.xyzw()
	xx := 2 * x * x
	yy := 2 * y * y
	zz := 2 * z * z
	xy := 2 * x * y
	xz := 2 * x * z
	xw := 2 * x * w
	yz := 2 * y * z
	yw := 2 * y * w
	zw := 2 * z * w

	return Mat3{
		1 - yy - zz, xy + zw, xz - yw,
		xy - zw, 1 - zz - xx, yz + xw,
		xz + yw, yz - xw, 1 - yy - xx,
	}
}

// Mat4 returns the rotation matrix of q as a homogeneous matrix with zero
// translation.
func (q Quat) Mat4() Mat4 {
	return q.Mat3().Mat4()
}

// QuatFromMat3 extracts the rotation of a pure rotation matrix.
func QuatFromMat3(m Mat3) Quat {
	return quatFromBasis(
		m[0], m[1], m[2],
		m[3], m[4], m[5],
		m[6], m[7], m[8],
	)
}

// QuatFromMat4 extracts the rotation held in the upper-left block of m.
// Translation is ignored.
func QuatFromMat4(m Mat4) Quat {
	return quatFromBasis(
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	)
}

// quatFromBasis takes the rotation block as mCR, column then row.
//
// With a non-negative trace W is large enough to divide by. Otherwise the
// largest diagonal element picks the component to solve for first, which
// keeps the divisor away from zero.
func quatFromBasis(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) Quat {
	var x, y, z, w float64
	tr := m00 + m11 + m22
	if tr >= 0 {
		t := math.Sqrt(tr + 1)
		w = t * 0.5
		t = 0.5 / t
		x = (m12 - m21) * t
		y = (m20 - m02) * t
		z = (m01 - m10) * t
		return quat(x, y, z, w)
	}

	switch max(m00, m11, m22) {
	case m00:
		t := math.Sqrt(m00 - (m11 + m22) + 1)
		x = t * 0.5
		t = 0.5 / t
		y = (m10 + m01) * t
		z = (m02 + m20) * t
		w = (m12 - m21) * t
	case m11:
		t := math.Sqrt(m11 - (m22 + m00) + 1)
		y = t * 0.5
		t = 0.5 / t
		z = (m21 + m12) * t
		x = (m10 + m01) * t
		w = (m20 - m02) * t
	default:
		t := math.Sqrt(m22 - (m00 + m11) + 1)
		z = t * 0.5
		t = 0.5 / t
		x = (m02 + m20) * t
		y = (m21 + m12) * t
		w = (m01 - m10) * t
	}
	return quat(x, y, z, w)
}
