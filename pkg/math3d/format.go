package math3d

import (
	"math"
	"strconv"
	"strings"
)

// FormatSci formats v in scientific notation with four significant digits.
// Non-negative values get a leading space so columns line up, and the
// exponent always carries its sign without padding: " 1.000E+0",
// "-2.500E-3".
func FormatSci(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	s := strconv.FormatFloat(math.Abs(v), 'E', 3, 64)
	mant, exp, _ := strings.Cut(s, "E")
	e, _ := strconv.Atoi(exp)

	var b strings.Builder
	if math.Signbit(v) {
		b.WriteByte('-')
	} else {
		b.WriteByte(' ')
	}
	b.WriteString(mant)
	b.WriteByte('E')
	if e >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(e))
	return b.String()
}

// String formats q as "(x y z w)" using FormatSci.
func (q Quat) String() string {
	return q.StringWith(FormatSci)
}

// StringWith formats q as "(x y z w)" with a caller-supplied number format.
func (q Quat) StringWith(format func(float64) string) string {
	x, y, z, w := q.xyzw()
	return "(" + format(x) + " " + format(y) + " " + format(z) + " " + format(w) + ")"
}

// String formats a as "angle° about (x, y, z)".
func (a AxisAngle) String() string {
	return strconv.FormatFloat(a.Angle, 'f', 2, 64) + "° about (" +
		strconv.FormatFloat(a.X, 'f', 4, 64) + ", " +
		strconv.FormatFloat(a.Y, 'f', 4, 64) + ", " +
		strconv.FormatFloat(a.Z, 'f', 4, 64) + ")"
}
