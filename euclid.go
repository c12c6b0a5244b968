package snappea

// Extended Euclidean algorithm over the Dehn filling coefficients.
//
// The sign convention below is load-bearing: the core geodesic length
// formula in core_geodesic.go applies d to the longitude holonomy and
// -c to the meridian holonomy, and is only correct if the identity
// d*m - c*l = gcd(m, l) holds exactly as stated here.

// EuclideanAlgorithm computes g = gcd(|m|, |l|) together with Bezout
// coefficients d and c satisfying
//
//	d*m - c*l = g
//
// The returned g is always non-negative, with gcd(x, 0) = |x|.
// The degenerate call EuclideanAlgorithm(0, 0) returns g = 0; callers
// that cannot tolerate a zero gcd must guard against it themselves.
func EuclideanAlgorithm(m, l int64) (g, d, c int64) {
	// Iterative extended gcd. Invariants, maintained per step:
	//   oldS*m + oldT*l = oldR
	//   s*m    + t*l    = r
	oldR, r := m, l
	oldS, s := int64(1), int64(0)
	oldT, t := int64(0), int64(1)

	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}

	// Truncated division keeps the invariants valid for negative
	// inputs but may leave a negative gcd; flip the whole identity.
	if oldR < 0 {
		oldR, oldS, oldT = -oldR, -oldS, -oldT
	}

	return oldR, oldS, -oldT
}
