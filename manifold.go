package snappea

import (
	"errors"
	"fmt"
)

// ErrCuspNotFound is returned when a cusp index does not resolve to a
// cusp of the manifold.
var ErrCuspNotFound = errors.New("snappea: cusp not found")

// Manifold is a hyperbolic 3-manifold reduced to the data this package
// operates on: a name and an ordered list of cusps. Triangulation
// combinatorics and the hyperbolic structure itself live with the
// external solver that fills in the cusp holonomies.
type Manifold struct {
	Name  string
	cusps []*Cusp
}

// NewManifold creates a manifold with numCusps complete torus cusps.
func NewManifold(name string, numCusps int) *Manifold {
	m := &Manifold{Name: name}
	for i := 0; i < numCusps; i++ {
		m.AddCusp(TorusCusp)
	}
	return m
}

// AddCusp appends a new complete cusp of the given topology and
// returns it.
func (m *Manifold) AddCusp(topology Topology) *Cusp {
	c := &Cusp{
		Index:      len(m.cusps),
		Topology:   topology,
		IsComplete: true,
	}
	m.cusps = append(m.cusps, c)
	return c
}

// NumCusps returns the number of cusps.
func (m *Manifold) NumCusps() int {
	return len(m.cusps)
}

// Cusp returns the cusp with the given index, or an error wrapping
// ErrCuspNotFound if the index is out of range.
func (m *Manifold) Cusp(index int) (*Cusp, error) {
	if index < 0 || index >= len(m.cusps) {
		return nil, fmt.Errorf("%w: index %d, manifold %q has %d cusps",
			ErrCuspNotFound, index, m.Name, len(m.cusps))
	}
	return m.cusps[index], nil
}
