// Package stl reads and writes ASCII STL solids while preserving the
// parse-order identity of every facet, which is what the permutation
// watermark is built on.
package stl

import (
	"github.com/philipparndt/stlmark/pkg/geometry"
)

// Model represents a single parsed STL solid. Facets keep the index they
// had in the source file: facet i of the model is the i-th facet block
// that was read. Indices are contiguous from 0.
type Model struct {
	Name   string
	Facets []geometry.Triangle
}

// NewModel creates a new empty model
func NewModel(name string) *Model {
	return &Model{
		Name:   name,
		Facets: make([]geometry.Triangle, 0),
	}
}

// AddFacet appends a facet, assigning it the next parse-order index
func (m *Model) AddFacet(facet geometry.Triangle) {
	m.Facets = append(m.Facets, facet)
}

// FacetCount returns the number of facets in the model
func (m *Model) FacetCount() int {
	return len(m.Facets)
}

// Facet returns the facet with the given parse-order index
func (m *Model) Facet(i int) geometry.Triangle {
	return m.Facets[i]
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, facet := range m.Facets {
		bbox.Extend(facet.V1)
		bbox.Extend(facet.V2)
		bbox.Extend(facet.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, facet := range m.Facets {
		totalArea += facet.Area()
	}
	return totalArea
}
