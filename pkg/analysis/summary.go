// Package analysis computes the model statistics surfaced by the CLI.
package analysis

import (
	"fmt"

	"github.com/philipparndt/stlmark/pkg/geometry"
	"github.com/philipparndt/stlmark/pkg/permcodec"
	"github.com/philipparndt/stlmark/pkg/stl"
)

// Summary contains measurements of a solid and its embedding capacity
type Summary struct {
	Name         string
	FacetCount   int
	CapacityBits int
	SurfaceArea  float64
	BoundingBox  geometry.BoundingBox
	Dimensions   geometry.Vector3
}

// Summarize analyzes a model
func Summarize(model *stl.Model) *Summary {
	s := &Summary{
		Name:         model.Name,
		FacetCount:   model.FacetCount(),
		CapacityBits: permcodec.Capacity(model.FacetCount()),
		SurfaceArea:  model.SurfaceArea(),
		BoundingBox:  model.BoundingBox(),
	}
	s.Dimensions = s.BoundingBox.Size()
	return s
}

// String renders the one-line solid description
func (s *Summary) String() string {
	return fmt.Sprintf("'%s' with %d facets, which can carry %d bits",
		s.Name, s.FacetCount, s.CapacityBits)
}

// FormatVector formats a vector for display
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
