package snappea

import (
	"errors"
	"math"
)

// Core geodesic computation for Dehn-filled cusps.
//
// Doing (m, l) Dehn filling on a cusp adds a solid torus whose central
// curve, the core geodesic, lifts to a line L in the universal cover.
// The group of covering transformations fixing L is generated by the
// holonomies H(m) and H(l) of the meridian and longitude, subject to
// the single relation m*H(m) + l*H(l) = 0. Changing basis with a
// determinant-one integer matrix turns the relation into n*g = 0,
// where g is the purely rotational generator and n = gcd(m, l) is the
// order of the singular locus. Working out the basis change shows the
// translational generator is h = -c*H(m) + d*H(l) for any integers
// d, c with d*m - c*l = gcd(m, l), which the extended Euclidean
// algorithm supplies directly.
//
// Based on the core_geodesics computation in the SnapPea kernel
// (https://github.com/3-manifolds/SnapPy), reworked for Go.

// torsionEpsilon shifts the normalization window for the rotational
// part of a core length. Lengths whose torsion sits exactly on the
// boundary +-pi/n land deterministically on the positive side.
const torsionEpsilon = 1e-5

// maxTorsionSteps bounds the angle normalization loop. Well-formed
// holonomies converge in one or two steps; the bound keeps degenerate
// inputs from looping forever.
const maxTorsionSteps = 256

// ErrDegenerateFilling is returned when a filled cusp carries the
// coefficient pair (0, 0), for which gcd and the singularity index are
// undefined.
var ErrDegenerateFilling = errors.New("snappea: degenerate Dehn filling coefficients (0, 0)")

// CoreGeodesicInfo packages the result of Manifold.CoreGeodesic.
type CoreGeodesicInfo struct {
	// SingularityIndex describes the nature of the filled cusp:
	// 0 means the cusp is unfilled or its coefficients are not
	// integers (no core geodesic exists); 1 means the coefficients
	// are relatively prime and the filling is a manifold locally;
	// n > 1 means the filling is an orbifold with a singular locus
	// of order n.
	SingularityIndex int

	// CoreLength is the complex length of the core geodesic under
	// the most refined hyperbolic structure. The real part is the
	// translation length (always >= 0), the imaginary part the
	// rotation angle. Zero when SingularityIndex is 0.
	CoreLength complex128

	// Precision is the number of decimal places on which the
	// ultimate and penultimate length estimates agree. Zero when
	// SingularityIndex is 0.
	Precision int
}

// CoreGeodesic computes the singularity index, core geodesic length,
// and a precision estimate for the cusp with the given index.
//
// The precision estimate is derived by comparing the lengths obtained
// from the two most recent solution refinements; callers that do not
// need it simply ignore the field.
//
// Errors from cusp lookup (ErrCuspNotFound) and from degenerate
// filling coefficients (ErrDegenerateFilling) are returned unchanged.
func (m *Manifold) CoreGeodesic(cuspIndex int) (CoreGeodesicInfo, error) {
	cusp, err := m.Cusp(cuspIndex)
	if err != nil {
		return CoreGeodesicInfo{}, err
	}

	n, length, err := ComputeCoreGeodesic(cusp)
	if err != nil {
		return CoreGeodesicInfo{}, err
	}

	if n == 0 {
		// No core geodesic: unfilled cusp or non-integer
		// coefficients. A zero result, not an error.
		return CoreGeodesicInfo{}, nil
	}

	return CoreGeodesicInfo{
		SingularityIndex: n,
		CoreLength:       length[Ultimate],
		Precision:        DecimalPlacesOfAccuracy(length[Ultimate], length[Penultimate]),
	}, nil
}

// ComputeCoreGeodesic computes the singularity index of a cusp's Dehn
// filling and the complex core geodesic length under both the ultimate
// and penultimate hyperbolic structures.
//
// If the cusp is unfilled, or its filling coefficients are not
// integers, the singularity index is 0 and both lengths are zero;
// this is a definitional result, not an error. A filled cusp with
// coefficients (0, 0) yields ErrDegenerateFilling.
func ComputeCoreGeodesic(cusp *Cusp) (singularityIndex int, length [2]complex128, err error) {
	if cusp.IsComplete || !cusp.CoefficientsAreIntegers() {
		return 0, [2]complex128{}, nil
	}

	m := int64(math.Round(cusp.M))
	l := int64(math.Round(cusp.L))
	if m == 0 && l == 0 {
		return 0, [2]complex128{}, ErrDegenerateFilling
	}

	// The gcd is the singularity index; the Bezout coefficients give
	// the translational generator of the covering group fixing the
	// lifted geodesic (see the file comment).
	g, d, c := EuclideanAlgorithm(m, l)
	singularityIndex = int(g)
	piOverN := math.Pi / float64(singularityIndex)

	for i := range length {
		h := cusp.Holonomy[i]

		// length = -c*H(m) + d*H(l), holonomies already logarithmic.
		length[i] = complex(float64(-c), 0)*h.Meridian + complex(float64(d), 0)*h.Longitude

		// The geodesic is oriented only up to sign; fix the
		// translation length non-negative.
		if real(length[i]) < 0 {
			length[i] = -length[i]
		}

		// The rotational part is well-defined only modulo 2*pi/n.
		// Normalize it to (-pi/n + eps, pi/n + eps].
		im := imag(length[i])
		for steps := 0; im < -piOverN+torsionEpsilon && steps < maxTorsionSteps; steps++ {
			im += 2.0 * piOverN
		}
		for steps := 0; im > piOverN+torsionEpsilon && steps < maxTorsionSteps; steps++ {
			im -= 2.0 * piOverN
		}
		re := real(length[i])

		// The longitude tracked on a Klein bottle cusp is the double
		// cover of the true longitude, so the raw translation length
		// is twice the geometric one.
		if cusp.Topology == KleinCusp {
			re /= 2.0
		}

		length[i] = complex(re, im)
	}

	return singularityIndex, length, nil
}
