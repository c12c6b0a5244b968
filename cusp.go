package snappea

import "math"

// Topology classifies the boundary of a cusp cross-section.
type Topology int

const (
	// TorusCusp is a cusp whose cross-section is a torus.
	TorusCusp Topology = iota
	// KleinCusp is a cusp whose cross-section is a Klein bottle.
	KleinCusp
)

// String returns a human-readable name for the topology.
func (t Topology) String() string {
	switch t {
	case TorusCusp:
		return "torus"
	case KleinCusp:
		return "Klein bottle"
	default:
		return "unknown"
	}
}

// Snapshot indices into Cusp.Holonomy. The hyperbolic-structure solver
// records the holonomies of the two most recent solution refinements;
// comparing them yields a precision estimate.
const (
	// Ultimate selects the most refined hyperbolic structure.
	Ultimate = 0
	// Penultimate selects the previous refinement.
	Penultimate = 1
)

// integerEpsilon is the tolerance used when deciding whether a Dehn
// filling coefficient stored as a float represents an integer.
const integerEpsilon = 1e-9

// Holonomy holds the logarithmic holonomies of the two peripheral
// curves of a cusp under one hyperbolic structure. The real part of
// each value is a log of a dilation factor, the imaginary part a
// rotation angle.
type Holonomy struct {
	Meridian  complex128
	Longitude complex128
}

// Cusp is one cusp of a hyperbolic 3-manifold, together with its Dehn
// filling state and the holonomy data produced by an external
// hyperbolic-structure solver.
//
// Filling coefficients are stored as floats because callers may
// request non-integer fillings; computations that require integers
// check CoefficientsAreIntegers first.
type Cusp struct {
	// Index is the cusp's position within its manifold.
	Index int

	// Topology classifies the cusp cross-section.
	Topology Topology

	// IsComplete is true while the cusp is unfilled.
	IsComplete bool

	// M and L are the Dehn filling coefficients (meridian and
	// longitude counts). Meaningful only when IsComplete is false.
	M, L float64

	// Holonomy holds the logarithmic holonomy snapshots, indexed by
	// Ultimate and Penultimate.
	Holonomy [2]Holonomy
}

// DehnFill marks the cusp as filled with coefficients (m, l).
func (c *Cusp) DehnFill(m, l float64) {
	c.IsComplete = false
	c.M = m
	c.L = l
}

// Unfill restores the cusp to its complete (unfilled) state.
func (c *Cusp) Unfill() {
	c.IsComplete = true
	c.M = 0
	c.L = 0
}

// IsFilled reports whether the cusp carries a Dehn filling.
func (c *Cusp) IsFilled() bool {
	return !c.IsComplete
}

// CoefficientsAreIntegers reports whether both Dehn filling
// coefficients represent integers, within a small tolerance.
func (c *Cusp) CoefficientsAreIntegers() bool {
	return isInteger(c.M) && isInteger(c.L)
}

func isInteger(x float64) bool {
	return math.Abs(x-math.Round(x)) < integerEpsilon
}
