package math3d

import (
	"math"
	"testing"
)

const eps = 1e-6

// sampleRotations covers axis-aligned quarter, half and three-quarter turns
// plus a tilted rotation. Some of them have a negative matrix trace.
func sampleRotations() map[string]Quat {
	return map[string]Quat{
		"identity": QuatIdent(),
		"x90":      QuatRotationAxis(90, V3(1, 0, 0)),
		"x180":     QuatRotationAxis(180, V3(1, 0, 0)),
		"x270":     QuatRotationAxis(270, V3(1, 0, 0)),
		"y90":      QuatRotationAxis(90, V3(0, 1, 0)),
		"y180":     QuatRotationAxis(180, V3(0, 1, 0)),
		"y270":     QuatRotationAxis(270, V3(0, 1, 0)),
		"z90":      QuatRotationAxis(90, V3(0, 0, 1)),
		"z180":     QuatRotationAxis(180, V3(0, 0, 1)),
		"z270":     QuatRotationAxis(270, V3(0, 0, 1)),
		"tilted":   QuatRotationAxis(137, V3(1, -2, 0.5)),
		"diagonal": QuatRotationAxis(170, V3(1, 1, 1)),
	}
}

func TestQuatDefaults(t *testing.T) {
	if got := QuatIdent(); got != (Quat{0, 0, 0, 1}) {
		t.Errorf("QuatIdent() = %v, want (0,0,0,1)", got)
	}
	if got := Q3(1, 2, 3); got != (Quat{1, 2, 3, 1}) {
		t.Errorf("Q3(1,2,3) = %v, want w=1 and no normalization", got)
	}

	q := Q(1, 2, 3, 4)
	q.SetIdentity()
	if q != QuatIdent() {
		t.Errorf("SetIdentity left %v", q)
	}

	q.SetXYZ(5, 6, 7)
	if q != (Quat{5, 6, 7, 1}) {
		t.Errorf("SetXYZ changed W: %v", q)
	}
}

func TestQuatNormalize(t *testing.T) {
	tests := []Quat{
		{1, 2, 3, 4},
		{0, 0, 0, 5},
		{-0.3, 0.1, 7, -2},
		{1e-5, 0, 0, 1e-5},
	}

	for _, q := range tests {
		n := q.Normalize()
		if math.Abs(n.LenSq()-1) > eps {
			t.Errorf("Normalize(%v) has squared norm %v", q, n.LenSq())
		}
	}

	q := Quat{0, 3, 0, 4}
	q.SetNormalize()
	if !q.ApproxEqual(Quat{0, 0.6, 0, 0.8}, eps) {
		t.Errorf("SetNormalize = %v, want (0, 0.6, 0, 0.8)", q)
	}
}

func TestQuatNormalizeZeroIsNaN(t *testing.T) {
	n := Quat{}.Normalize()
	if !math.IsNaN(float64(n.W)) {
		t.Errorf("normalizing the zero quaternion = %v, want NaN", n)
	}
}

func TestQuatLength(t *testing.T) {
	q := Q(1, 2, 2, 4)
	if got := q.LenSq(); got != 25 {
		t.Errorf("LenSq = %v, want 25", got)
	}
	if got := q.Len(); got != 5 {
		t.Errorf("Len = %v, want 5", got)
	}
}

func TestQuatAddDot(t *testing.T) {
	a := Q(1, 2, 3, 4)
	b := Q(-1, 0.5, 2, 1)

	if got := a.Add(b); got != (Quat{0, 2.5, 5, 5}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Dot(b); got != -1+1+6+4 {
		t.Errorf("Dot = %v, want 10", got)
	}
	if QuatDot(a, b) != a.Dot(b) {
		t.Error("QuatDot differs from Dot")
	}

	sum := QuatIdent().Add(QuatIdent())
	if sum.LenSq() == 1 {
		t.Error("Add should not renormalize")
	}
}

func TestQuatMulIdentity(t *testing.T) {
	for name, q := range sampleRotations() {
		t.Run(name, func(t *testing.T) {
			if got := QuatIdent().Mul(q); !got.ApproxEqual(q, eps) {
				t.Errorf("I*q = %v, want %v", got, q)
			}
			if got := q.Mul(QuatIdent()); !got.ApproxEqual(q, eps) {
				t.Errorf("q*I = %v, want %v", got, q)
			}
		})
	}
}

func TestQuatMulComposesRotations(t *testing.T) {
	a := QuatRotationAxis(90, V3(0, 0, 1))
	b := QuatRotationAxis(90, V3(1, 0, 0))
	v := V3(0, 1, 0)

	got := a.Mul(b).Transform(v)
	want := a.Transform(b.Transform(v))
	if !got.ApproxEqual(want, eps) {
		t.Errorf("(a*b)v = %v, want a(bv) = %v", got, want)
	}

	// b takes Y to Z, a leaves Z alone.
	if !got.ApproxEqual(V3(0, 0, 1), eps) {
		t.Errorf("(a*b)v = %v, want (0, 0, 1)", got)
	}
}

func TestMulToAliasing(t *testing.T) {
	a := QuatRotationAxis(30, V3(1, 1, 0))
	b := QuatRotationAxis(-75, V3(0, 1, 2))
	want := a.Mul(b)

	x := a
	MulTo(&x, x, b)
	if !x.ApproxEqual(want, eps) {
		t.Errorf("dst aliasing a: got %v, want %v", x, want)
	}

	y := b
	MulTo(&y, a, y)
	if !y.ApproxEqual(want, eps) {
		t.Errorf("dst aliasing b: got %v, want %v", y, want)
	}
}

func TestQuatInvert(t *testing.T) {
	for name, q := range sampleRotations() {
		t.Run(name, func(t *testing.T) {
			if got := q.Mul(q.Invert()); !got.ApproxEqual(QuatIdent(), eps) {
				t.Errorf("q*q⁻¹ = %v, want identity", got)
			}
			if got := q.Invert().Mul(q); !got.ApproxEqual(QuatIdent(), eps) {
				t.Errorf("q⁻¹*q = %v, want identity", got)
			}
		})
	}

	// Non-unit quaternions invert too.
	q := Q(1, 2, 3, 4)
	if got := q.Mul(q.Invert()); !got.ApproxEqual(QuatIdent(), eps) {
		t.Errorf("non-unit q*q⁻¹ = %v, want identity", got)
	}
}

func TestQuatConjugate(t *testing.T) {
	q := Q(1, -2, 3, 4)
	if got := q.Conjugate(); got != (Quat{-1, 2, -3, 4}) {
		t.Errorf("Conjugate = %v", got)
	}

	u := QuatRotationAxis(40, V3(3, 1, 0))
	if !u.Conjugate().ApproxEqual(u.Invert(), eps) {
		t.Error("conjugate of a unit quaternion should equal its inverse")
	}
}

func TestQuatDiv(t *testing.T) {
	a := QuatRotationAxis(120, V3(0, 1, 0))
	b := QuatRotationAxis(45, V3(1, 0, 1))

	if got := a.Div(b).Mul(b); !got.ApproxEqual(a, eps) {
		t.Errorf("(a/b)*b = %v, want %v", got, a)
	}
	if got := a.Div(a); !got.ApproxEqual(QuatIdent(), eps) {
		t.Errorf("a/a = %v, want identity", got)
	}
}

func TestQuatAngle(t *testing.T) {
	tests := []struct {
		name string
		q    Quat
		want float64
	}{
		{"identity", QuatIdent(), 0},
		{"quarter", QuatRotationAxis(90, V3(0, 0, 1)), math.Pi / 2},
		{"half", QuatRotationAxis(180, V3(1, 0, 0)), math.Pi},
		{"three quarters folds", QuatRotationAxis(270, V3(0, 1, 0)), math.Pi / 2},
		{"negated", QuatRotationAxis(60, V3(1, 0, 0)).Negate(), math.Pi / 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.q.Angle(); math.Abs(got-tc.want) > eps {
				t.Errorf("Angle() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestQuatTransform(t *testing.T) {
	if got := QuatIdent().Transform(V3(1, 0, 0)); got != V3(1, 0, 0) {
		t.Errorf("identity transform = %v, want (1, 0, 0)", got)
	}

	q := QuatRotationAxis(90, V3(0, 0, 1))
	if got := q.Transform(V3(1, 0, 0)); !got.ApproxEqual(V3(0, 1, 0), eps) {
		t.Errorf("90° about Z of X = %v, want (0, 1, 0)", got)
	}

	v := V3(1, 0, 0)
	q.TransformTo(v, &v)
	if !v.ApproxEqual(V3(0, 1, 0), eps) {
		t.Errorf("in-place transform = %v, want (0, 1, 0)", v)
	}
}

func TestQuatTransformMatchesMatrix(t *testing.T) {
	tests := []struct {
		deg  float64
		axis Vec3
		v    Vec3
	}{
		{90, V3(0, 0, 1), V3(1, 0, 0)},
		{33, V3(1, 0, 0), V3(0, 2, 0)},
		{-140, V3(0, 1, 0), V3(0, 0, 3)},
		{77, V3(1, 1, 1), V3(1, -1, 0)},
		{200, V3(2, -1, 5), V3(1, 2, 0)},
	}

	for _, tc := range tests {
		q := QuatRotationAxis(tc.deg, tc.axis)
		got := q.Transform(tc.v)
		want := Rotate(tc.axis, tc.deg*math.Pi/180).MulVec3Dir(tc.v)
		if !got.ApproxEqual(want, 1e-5) {
			t.Errorf("%v° about %v: quaternion gives %v, matrix gives %v", tc.deg, tc.axis, got, want)
		}

		// v is orthogonal to the axis, so it turns by exactly the angle.
		wantAngle := math.Abs(math.Remainder(tc.deg, 360)) * math.Pi / 180
		if a := tc.v.AngleTo(got); math.Abs(a-wantAngle) > eps {
			t.Errorf("%v° about %v: vector turned by %v rad, want %v", tc.deg, tc.axis, a, wantAngle)
		}
	}
}

func TestQuatLookAt(t *testing.T) {
	forward := Forward()
	up := Up()

	t.Run("general", func(t *testing.T) {
		src := V3(1, 1, 1)
		dst := V3(4, -3, 1)
		q := QuatLookAt(src, dst, up, forward)

		want := dst.Sub(src).Normalize()
		if got := q.Transform(forward); !got.ApproxEqual(want, eps) {
			t.Errorf("forward maps to %v, want %v", got, want)
		}
		if math.Abs(q.LenSq()-1) > eps {
			t.Errorf("lookAt is not unit: %v", q)
		}
	})

	t.Run("parallel", func(t *testing.T) {
		q := QuatLookAt(Zero3(), V3(0, 0, -7), up, forward)
		if q != QuatIdent() {
			t.Errorf("got %v, want identity", q)
		}
	})

	t.Run("opposite", func(t *testing.T) {
		q := QuatLookAt(Zero3(), V3(0, 0, 2), up, forward)
		if got := q.Transform(forward); !got.ApproxEqual(V3(0, 0, 1), eps) {
			t.Errorf("forward maps to %v, want (0, 0, 1)", got)
		}
		if got := q.Transform(up); !got.ApproxEqual(up, eps) {
			t.Errorf("half turn about up moved up to %v", got)
		}
	})
}

func TestSameRotation(t *testing.T) {
	q := QuatRotationAxis(50, V3(0, 1, 0))
	if !q.SameRotation(q.Negate(), eps) {
		t.Error("q and -q should be the same rotation")
	}
	if q.SameRotation(q.Conjugate(), eps) {
		t.Error("q and its conjugate are different rotations")
	}
}
