package expressions

import (
	"math"
	"strconv"
	"strings"
)

// Constant values carry five decimal places of precision. A value entering
// through AddConstant or AppendCoefficient is truncated before combining,
// and every value renders truncated, so digits past the fifth decimal place
// never influence results.
const (
	// truncScale is the scale of truncation: five decimal places.
	truncScale = 100000
	// epsilon is the comparison tolerance for constants. Two constants are
	// equal when their canonical values differ by less than this.
	epsilon = 1e-5
)

// truncate5 truncates a nonnegative value at the fifth decimal place. The
// result may be infinite for very large v; callers saturate it before
// combining, since truncation toward zero never exceeds the input.
func truncate5(v float64) float64 {
	return math.Floor(v*truncScale) / truncScale
}

// saturate clamps an overflowed result to the largest finite float64.
func saturate(v float64) float64 {
	if math.IsInf(v, 0) {
		return math.MaxFloat64
	}
	return v
}

// formatValue renders a constant value: the shortest decimal form, cut after
// the fifth fractional digit without rounding, trailing zeros dropped. Plain
// decimal notation always, never exponent form, so even the largest values
// render as long digit strings that Parse accepts.
func formatValue(v float64) string {
	if v == 0 {
		return "0"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s
	}
	if end := dot + 6; end < len(s) {
		s = s[:end]
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// canonicalValue is the value a constant presents to comparison: its
// rendering parsed back, carrying at most five decimal places.
func canonicalValue(v float64) float64 {
	c, _ := strconv.ParseFloat(formatValue(v), 64)
	return c
}
