package common

import "math"

// QtyTolerance is the relative tolerance used when comparing filled
// quantities. Fill maths accumulates across bars, so exact float
// comparison against the requested quantity is unreliable.
const QtyTolerance = 1e-9

// AlmostEqual reports whether a and b are equal within QtyTolerance,
// relative to the larger magnitude of the two.
func AlmostEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	largest := math.Max(math.Abs(a), math.Abs(b))
	return diff <= largest*QtyTolerance
}

// AlmostZero reports whether v is zero within QtyTolerance.
func AlmostZero(v float64) bool {
	return math.Abs(v) <= QtyTolerance
}
