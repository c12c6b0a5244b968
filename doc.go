// Package snappea computes geometric invariants of Dehn-filled cusps
// of hyperbolic 3-manifolds.
//
// # Overview
//
// A Dehn filling on a cusp is described by a pair of coefficients
// (m, l) counting the meridian and longitude. Filling produces a
// closed solid torus whose central curve, the core geodesic, is a
// geometric invariant of the filled manifold. When the coefficients
// are not relatively prime the filling produces an orbifold instead,
// with a singular locus of order gcd(m, l).
//
// # Quick Start
//
//	mfd := snappea.NewManifold("m003", 1)
//	cusp, _ := mfd.Cusp(0)
//	cusp.DehnFill(1, 2)
//	cusp.Holonomy[snappea.Ultimate] = snappea.Holonomy{
//		Meridian:  complex(0.5, 0.3),
//		Longitude: complex(1.0, 0.1),
//	}
//	cusp.Holonomy[snappea.Penultimate] = cusp.Holonomy[snappea.Ultimate]
//
//	info, err := mfd.CoreGeodesic(0)
//	// info.SingularityIndex, info.CoreLength, info.Precision
//
// # Inputs
//
// The package does not solve the hyperbolic gluing equations. Cusp
// holonomies are logarithmic holonomy values produced by an external
// hyperbolic-structure solver; two snapshots are kept, the most
// refined solution (Ultimate) and the previous one (Penultimate), so
// that the number of decimal places on which they agree can serve as
// a precision estimate.
//
// # Subpackages
//
//   - census: SQLite-backed manifold census storage
//
// # Concurrency
//
// All computations are pure functions of their inputs. Distinct
// manifolds may be processed concurrently without coordination; a
// single manifold must not be mutated while a computation reads it.
package snappea

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
