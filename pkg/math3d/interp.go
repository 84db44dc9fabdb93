package math3d

import "math"

// slerpLerpThreshold is how far |q·target| may fall below 1 before Slerp
// stops blending linearly. Orientations less than about 52° apart are
// blended linearly.
const slerpLerpThreshold = 0.1

// Slerp interpolates along the shorter great arc from q to target.
// alpha 0 gives q and alpha 1 gives target or its negation.
//
// The result is not renormalized. Close inputs are blended linearly, which
// keeps the result near unit length but not exactly on it.
func (q Quat) Slerp(target Quat, alpha float64) Quat {
	raw := q.Dot(target)
	dot := math.Abs(raw)

	var s1, s2 float64
	if 1-dot > slerpLerpThreshold {
		angle := math.Acos(dot)
		inv := 1 / math.Sin(angle)
		s1 = math.Sin((1-alpha)*angle) * inv
		s2 = math.Sin(alpha*angle) * inv
	} else {
		s1 = 1 - alpha
		s2 = alpha
	}
	if raw < 0 {
		s2 = -s2
	}

	qx, qy, qz, qw := q.xyzw()
	tx, ty, tz, tw := target.xyzw()
	return quat(
		s1*qx+s2*tx,
		s1*qy+s2*ty,
		s1*qz+s2*tz,
		s1*qw+s2*tw,
	)
}

// Slerp interpolates from a to b. See Quat.Slerp.
func Slerp(a, b Quat, alpha float64) Quat {
	return a.Slerp(b, alpha)
}

// Nlerp blends q and target linearly, flipping target onto q's hemisphere
// first, and normalizes the result. It is cheaper than Slerp but does not
// move at constant angular speed.
func (q Quat) Nlerp(target Quat, factor float64) Quat {
	if q.Dot(target) < 0 {
		target = target.Negate()
	}
	inv := 1 - factor
	qx, qy, qz, qw := q.xyzw()
	tx, ty, tz, tw := target.xyzw()
	return quat(
		inv*qx+factor*tx,
		inv*qy+factor*ty,
		inv*qz+factor*tz,
		inv*qw+factor*tw,
	).Normalize()
}

// Nlerp blends a and b. See Quat.Nlerp.
func Nlerp(a, b Quat, factor float64) Quat {
	return a.Nlerp(b, factor)
}
