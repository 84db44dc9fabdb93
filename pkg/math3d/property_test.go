package math3d

import (
	"math"
	"testing"

	fuzz "github.com/google/gofuzz"
)

// newRotationFuzzer fills Quat values with uniformly distributed unit
// quaternions and Vec3 values with components in [-10, 10).
func newRotationFuzzer(seed int64) *fuzz.Fuzzer {
	return fuzz.NewWithSeed(seed).NilChance(0).Funcs(
		func(q *Quat, c fuzz.Continue) {
			*q = quat(c.NormFloat64(), c.NormFloat64(), c.NormFloat64(), c.NormFloat64()).Normalize()
		},
		func(v *Vec3, c fuzz.Continue) {
			*v = Vec3{c.Float64()*20 - 10, c.Float64()*20 - 10, c.Float64()*20 - 10}
		},
	)
}

const propertyRuns = 500

func TestPropertyUnitNorm(t *testing.T) {
	f := newRotationFuzzer(1)
	for range propertyRuns {
		var a, b Quat
		var alpha float64
		f.Fuzz(&a)
		f.Fuzz(&b)
		f.Fuzz(&alpha)
		alpha = math.Abs(math.Mod(alpha, 1))

		if math.Abs(a.Normalize().LenSq()-1) > eps {
			t.Fatalf("Normalize(%v) is not unit", a)
		}
		if n := a.Nlerp(b, alpha); math.Abs(n.LenSq()-1) > eps {
			t.Fatalf("Nlerp(%v, %v, %v) = %v is not unit", a, b, alpha, n)
		}
		if m := a.Mul(b); math.Abs(m.LenSq()-1) > eps {
			t.Fatalf("%v * %v = %v is not unit", a, b, m)
		}
	}
}

func TestPropertyMatrixRoundTrip(t *testing.T) {
	f := newRotationFuzzer(2)
	for range propertyRuns {
		var q Quat
		f.Fuzz(&q)

		if got := QuatFromMat3(q.Mat3()); !got.SameRotation(q, eps) {
			t.Fatalf("round trip of %v gave %v", q, got)
		}
	}
}

func TestPropertyTransformPreservesLength(t *testing.T) {
	f := newRotationFuzzer(3)
	for range propertyRuns {
		var q Quat
		var v Vec3
		f.Fuzz(&q)
		f.Fuzz(&v)

		got := q.Transform(v)
		if math.Abs(got.Len()-v.Len()) > 1e-5 {
			t.Fatalf("%v changed |%v| to |%v|", q, v, got)
		}
		if want := q.Mat3().MulVec3(v); !got.ApproxEqual(want, 1e-5) {
			t.Fatalf("%v: transform %v, matrix %v", q, got, want)
		}
		if back := q.Invert().Transform(got); !back.ApproxEqual(v, 1e-5) {
			t.Fatalf("%v: inverse did not undo the rotation: %v -> %v", q, v, back)
		}
	}
}

func TestPropertySlerpEndpoints(t *testing.T) {
	f := newRotationFuzzer(4)
	for range propertyRuns {
		var a, b Quat
		f.Fuzz(&a)
		f.Fuzz(&b)

		if got := a.Slerp(b, 0); !got.ApproxEqual(a, eps) {
			t.Fatalf("Slerp(%v, %v, 0) = %v", a, b, got)
		}
		if got := a.Slerp(b, 1); !got.SameRotation(b, eps) {
			t.Fatalf("Slerp(%v, %v, 1) = %v", a, b, got)
		}
	}
}
