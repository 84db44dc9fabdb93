package math3d

import "math"

// Quat is a rotation quaternion. X, Y and Z are the vector part, W is the
// scalar part. Components are stored in single precision; operations
// compute in float64 and round once on the way out.
//
// A Quat represents a rotation only while X²+Y²+Z²+W² is 1. Most
// operations assume that and none of them check it; Normalize restores it.
// Degenerate input yields NaN or Inf components that propagate silently.
//
// Note that the zero value is not the identity rotation. Use QuatIdent.
type Quat struct {
	X, Y, Z, W float32
}

// quat rounds float64 components into a Quat.
func quat(x, y, z, w float64) Quat {
	return Quat{float32(x), float32(y), float32(z), float32(w)}
}

// xyzw widens the components to float64.
func (q Quat) xyzw() (x, y, z, w float64) {
	return float64(q.X), float64(q.Y), float64(q.Z), float64(q.W)
}

// QuatIdent returns the identity rotation (0, 0, 0, 1).
func QuatIdent() Quat {
	return Quat{0, 0, 0, 1}
}

// Q creates a quaternion from its four components.
func Q(x, y, z, w float32) Quat {
	return Quat{x, y, z, w}
}

// Q3 creates a quaternion from a vector part with W set to 1.
// The result is not normalized.
func Q3(x, y, z float32) Quat {
	return Quat{x, y, z, 1}
}

// Set copies r into q.
func (q *Quat) Set(r Quat) {
	*q = r
}

// SetXYZW overwrites all four components.
func (q *Quat) SetXYZW(x, y, z, w float32) {
	q.X, q.Y, q.Z, q.W = x, y, z, w
}

// SetXYZ overwrites the vector part and leaves W alone.
func (q *Quat) SetXYZ(x, y, z float32) {
	q.X, q.Y, q.Z = x, y, z
}

// SetIdentity resets q to the identity rotation.
func (q *Quat) SetIdentity() {
	*q = QuatIdent()
}

// SetNormalize normalizes q in place.
func (q *Quat) SetNormalize() {
	*q = q.Normalize()
}

// Vec4 returns the components as a Vec4.
func (q Quat) Vec4() Vec4 {
	x, y, z, w := q.xyzw()
	return Vec4{x, y, z, w}
}

// Normalize returns q divided by its norm. A zero quaternion yields NaN.
func (q Quat) Normalize() Quat {
	x, y, z, w := q.xyzw()
	n := q.Len()
	return quat(x/n, y/n, z/n, w/n)
}

// Add returns the component-wise sum. The result is generally not a unit
// quaternion.
func (q Quat) Add(r Quat) Quat {
	return Quat{q.X + r.X, q.Y + r.Y, q.Z + r.Z, q.W + r.W}
}

// Scale returns every component multiplied by s.
func (q Quat) Scale(s float64) Quat {
	x, y, z, w := q.xyzw()
	return quat(x*s, y*s, z*s, w*s)
}

// Negate returns -q, which represents the same rotation as q.
func (q Quat) Negate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, -q.W}
}

// Dot returns the 4D dot product.
func (q Quat) Dot(r Quat) float64 {
	qx, qy, qz, qw := q.xyzw()
	rx, ry, rz, rw := r.xyzw()
	return qx*rx + qy*ry + qz*rz + qw*rw
}

// QuatDot returns the 4D dot product of a and b.
func QuatDot(a, b Quat) float64 {
	return a.Dot(b)
}

// LenSq returns the squared norm X²+Y²+Z²+W².
func (q Quat) LenSq() float64 {
	return q.Dot(q)
}

// Len returns the norm.
func (q Quat) Len() float64 {
	return math.Sqrt(q.LenSq())
}

// Angle returns the rotation angle of a unit quaternion in radians, in
// the range [0, π].
func (q Quat) Angle() float64 {
	a := 2 * math.Acos(float64(q.W))
	if a <= math.Pi {
		return a
	}
	return 2*math.Pi - a
}

// Mul returns the Hamilton product q ⊗ r. Transforming a vector by the
// result applies r first, then q.
func (q Quat) Mul(r Quat) Quat {
	qx, qy, qz, qw := q.xyzw()
	rx, ry, rz, rw := r.xyzw()
	return quat(
		qw*rx+qx*rw+qy*rz-qz*ry,
		qw*ry-qx*rz+qy*rw+qz*rx,
		qw*rz+qx*ry-qy*rx+qz*rw,
		qw*rw-qx*rx-qy*ry-qz*rz,
	)
}

// MulTo stores a ⊗ b in dst. dst may point at either operand.
func MulTo(dst *Quat, a, b Quat) {
	*dst = a.Mul(b)
}

// Conjugate returns q with the vector part negated.
func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Invert returns the multiplicative inverse: the conjugate divided by the
// squared norm. For a unit quaternion this equals Conjugate up to rounding.
func (q Quat) Invert() Quat {
	x, y, z, w := q.xyzw()
	n := q.LenSq()
	return quat(-x/n, -y/n, -z/n, w/n)
}

// Div returns q ⊗ r⁻¹.
func (q Quat) Div(r Quat) Quat {
	return q.Mul(r.Invert())
}

// Transform rotates v by q. It expands the rotation directly instead of
// building a matrix and assumes q is a unit quaternion.
func (q Quat) Transform(v Vec3) Vec3 {
	x, y, z, w := q.xyzw()
	x2, y2, z2 := x*2, y*2, z*2
	xx, yy, zz := x*x2, y*y2, z*z2
	xy, xz, yz := x*y2, x*z2, y*z2
	wx, wy, wz := w*x2, w*y2, w*z2

	return Vec3{
		(1-(yy+zz))*v.X + (xy-wz)*v.Y + (xz+wy)*v.Z,
		(xy+wz)*v.X + (1-(xx+zz))*v.Y + (yz-wx)*v.Z,
		(xz-wy)*v.X + (yz+wx)*v.Y + (1-(xx+yy))*v.Z,
	}
}

// TransformTo rotates v by q and stores the result in dst. dst may point
// at v.
func (q Quat) TransformTo(v Vec3, dst *Vec3) {
	*dst = q.Transform(v)
}

// ApproxEqual reports whether every component of q and r differs by at
// most eps. It does not treat q and -q as equal; see SameRotation.
func (q Quat) ApproxEqual(r Quat, eps float64) bool {
	qx, qy, qz, qw := q.xyzw()
	rx, ry, rz, rw := r.xyzw()
	return math.Abs(qx-rx) <= eps &&
		math.Abs(qy-ry) <= eps &&
		math.Abs(qz-rz) <= eps &&
		math.Abs(qw-rw) <= eps
}

// SameRotation reports whether q and r describe the same rotation within
// eps, accepting either sign.
func (q Quat) SameRotation(r Quat, eps float64) bool {
	return q.ApproxEqual(r, eps) || q.ApproxEqual(r.Negate(), eps)
}

// lookAtEpsilon bounds how close the forward·direction cosine must be to
// ±1 for QuatLookAt to take a degenerate branch.
const lookAtEpsilon = 1e-6

// QuatLookAt returns the rotation that turns forward onto the direction
// from src to dst. forward must be a unit vector.
//
// When the direction is opposite to forward the result is a half turn about
// up; when it already matches forward the result is the identity.
func QuatLookAt(src, dst, up, forward Vec3) Quat {
	dir := dst.Sub(src)
	dir = dir.Scale(1 / dir.Len())

	dot := forward.Dot(dir)
	if math.Abs(dot+1) < lookAtEpsilon {
		return QuatRotationAxis(180, up)
	}
	if math.Abs(dot-1) < lookAtEpsilon {
		return QuatIdent()
	}

	angle := math.Acos(dot)
	axis := forward.Cross(dir)
	axis = axis.Scale(1 / axis.Len())
	return QuatRotationAxis(degrees(angle), axis)
}
