package math3d

import (
	"math"
	"testing"
)

func TestSlerpEndpoints(t *testing.T) {
	pairs := []struct {
		name string
		a, b Quat
	}{
		{"wide", QuatRotationAxis(10, V3(1, 0, 0)), QuatRotationAxis(160, V3(0, 1, 1))},
		{"narrow", QuatRotationAxis(10, V3(0, 0, 1)), QuatRotationAxis(20, V3(0, 0, 1))},
		{"opposite hemisphere", QuatRotationY(30), QuatRotationY(120).Negate()},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			if got := p.a.Slerp(p.b, 0); !got.ApproxEqual(p.a, eps) {
				t.Errorf("alpha 0 = %v, want %v", got, p.a)
			}
			if got := p.a.Slerp(p.b, 1); !got.SameRotation(p.b, eps) {
				t.Errorf("alpha 1 = %v, want ±%v", got, p.b)
			}
		})
	}
}

func TestSlerpSelf(t *testing.T) {
	q := QuatRotationAxis(77, V3(1, 2, 3))
	for _, alpha := range []float64{0, 0.1, 0.5, 0.9, 1} {
		if got := Slerp(q, q, alpha); !got.ApproxEqual(q, eps) {
			t.Errorf("Slerp(q, q, %v) = %v, want %v", alpha, got, q)
		}
	}
}

func TestSlerpConstantSpeed(t *testing.T) {
	a := QuatRotationZ(0)
	b := QuatRotationZ(150)

	for _, alpha := range []float64{0.25, 0.5, 0.75} {
		got := a.Slerp(b, alpha)
		want := QuatRotationZ(150 * alpha)
		if !got.ApproxEqual(want, eps) {
			t.Errorf("alpha %v = %v, want %v", alpha, got, want)
		}
	}
}

func TestSlerpShortestArc(t *testing.T) {
	a := QuatRotationZ(20)
	b := QuatRotationZ(100).Negate()

	mid := a.Slerp(b, 0.5)
	if !mid.SameRotation(QuatRotationZ(60), eps) {
		t.Errorf("midpoint = %v, want ±%v", mid, QuatRotationZ(60))
	}
}

func TestNlerpUnit(t *testing.T) {
	pairs := [][2]Quat{
		{QuatIdent(), QuatRotationX(179)},
		{Q(1, 2, 3, 4), Q(-4, 0.5, 0, 1)},
		{QuatRotationY(40), QuatRotationY(40).Negate()},
		{Q3(0.2, 0.2, 0.2), QuatRotationZ(-90)},
	}

	for _, p := range pairs {
		for _, f := range []float64{0, 0.3, 0.5, 0.8, 1} {
			got := Nlerp(p[0], p[1], f)
			if math.Abs(got.LenSq()-1) > eps {
				t.Errorf("Nlerp(%v, %v, %v) has squared norm %v", p[0], p[1], f, got.LenSq())
			}
		}
	}
}

func TestNlerpFlipsHemisphere(t *testing.T) {
	a := QuatRotationX(30)
	b := QuatRotationX(30).Negate()

	if got := a.Nlerp(b, 0.5); !got.ApproxEqual(a, eps) {
		t.Errorf("Nlerp of q and -q = %v, want %v", got, a)
	}
}
