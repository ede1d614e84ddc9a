package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/stlmark/pkg/geometry"
	"github.com/philipparndt/stlmark/pkg/stl"
)

func TestSummarize(t *testing.T) {
	model := stl.NewModel("plate")
	up := geometry.NewVector3(0, 0, 1)
	model.AddFacet(geometry.NewTriangle(up,
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(2, 0, 0),
		geometry.NewVector3(0, 2, 0)))
	model.AddFacet(geometry.NewTriangle(up,
		geometry.NewVector3(2, 0, 0),
		geometry.NewVector3(2, 2, 0),
		geometry.NewVector3(0, 2, 0)))

	s := Summarize(model)

	if s.Name != "plate" {
		t.Errorf("name: got %q", s.Name)
	}
	if s.FacetCount != 2 {
		t.Errorf("facet count: got %d", s.FacetCount)
	}
	if s.CapacityBits != 1 {
		t.Errorf("capacity: got %d, want 1", s.CapacityBits)
	}
	if math.Abs(s.SurfaceArea-4.0) > 1e-10 {
		t.Errorf("surface area: got %v, want 4", s.SurfaceArea)
	}
	if s.Dimensions != geometry.NewVector3(2, 2, 0) {
		t.Errorf("dimensions: got %v", s.Dimensions)
	}

	want := "'plate' with 2 facets, which can carry 1 bits"
	if s.String() != want {
		t.Errorf("String: got %q, want %q", s.String(), want)
	}
}
