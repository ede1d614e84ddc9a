package canonical

import (
	"testing"

	"github.com/philipparndt/stlmark/pkg/geometry"
	"github.com/philipparndt/stlmark/pkg/stl"
)

// irregular tetrahedron, all facet centroids clearly separated
func tetraVertices(offset geometry.Vector3) [4]geometry.Vector3 {
	return [4]geometry.Vector3{
		geometry.NewVector3(0, 0, 0).Add(offset),
		geometry.NewVector3(4, 0, 0).Add(offset),
		geometry.NewVector3(1, 3, 0).Add(offset),
		geometry.NewVector3(0.5, 1, 2.5).Add(offset),
	}
}

func tetraModel(offset geometry.Vector3) *stl.Model {
	v := tetraVertices(offset)
	m := stl.NewModel("tetra")
	up := geometry.NewVector3(0, 0, 1)
	m.AddFacet(geometry.NewTriangle(up, v[0], v[1], v[2]))
	m.AddFacet(geometry.NewTriangle(up, v[0], v[1], v[3]))
	m.AddFacet(geometry.NewTriangle(up, v[1], v[2], v[3]))
	m.AddFacet(geometry.NewTriangle(up, v[0], v[2], v[3]))
	return m
}

func TestReferenceDeterministic(t *testing.T) {
	model := tetraModel(geometry.Vector3{})

	first, err := Reference(model)
	if err != nil {
		t.Fatalf("Reference failed: %v", err)
	}
	second, err := Reference(model)
	if err != nil {
		t.Fatalf("Reference failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("orders differ at %d: %v vs %v", i, first, second)
		}
	}
}

func TestReferenceIsPermutation(t *testing.T) {
	model := tetraModel(geometry.Vector3{})

	ref, err := Reference(model)
	if err != nil {
		t.Fatalf("Reference failed: %v", err)
	}
	if len(ref) != model.FacetCount() {
		t.Fatalf("expected %d entries, got %d", model.FacetCount(), len(ref))
	}

	seen := make([]bool, len(ref))
	for _, id := range ref {
		if id < 0 || id >= len(ref) || seen[id] {
			t.Fatalf("%v is not a permutation of facet indices", ref)
		}
		seen[id] = true
	}
}

func TestReferenceTrivialModels(t *testing.T) {
	empty := stl.NewModel("empty")
	ref, err := Reference(empty)
	if err != nil {
		t.Fatalf("Reference on empty model failed: %v", err)
	}
	if len(ref) != 0 {
		t.Errorf("expected empty reference, got %v", ref)
	}

	single := stl.NewModel("single")
	single.AddFacet(geometry.NewTriangle(
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	))
	ref, err = Reference(single)
	if err != nil {
		t.Fatalf("Reference on single facet failed: %v", err)
	}
	if len(ref) != 1 || ref[0] != 0 {
		t.Errorf("expected [0], got %v", ref)
	}
}

func TestReferenceAgreesAcrossFacetOrder(t *testing.T) {
	// Reading the same geometry in a different facet order must yield
	// the same canonical sequence of physical facets. This is what lets
	// a receiver reconstruct the sender's baseline from the stego file.
	original := tetraModel(geometry.Vector3{})

	shuffled := stl.NewModel(original.Name)
	for _, id := range []int{2, 0, 3, 1} {
		shuffled.AddFacet(original.Facet(id))
	}

	refA, err := Reference(original)
	if err != nil {
		t.Fatalf("Reference failed: %v", err)
	}
	refB, err := Reference(shuffled)
	if err != nil {
		t.Fatalf("Reference failed: %v", err)
	}

	for k := range refA {
		if original.Facet(refA[k]) != shuffled.Facet(refB[k]) {
			t.Fatalf("canonical position %d holds different facets", k)
		}
	}
}

func TestReferenceTranslationInvariant(t *testing.T) {
	base := tetraModel(geometry.Vector3{})
	moved := tetraModel(geometry.NewVector3(10, -5, 3))

	refA, err := Reference(base)
	if err != nil {
		t.Fatalf("Reference failed: %v", err)
	}
	refB, err := Reference(moved)
	if err != nil {
		t.Fatalf("Reference failed: %v", err)
	}

	for i := range refA {
		if refA[i] != refB[i] {
			t.Fatalf("translation changed the ordering: %v vs %v", refA, refB)
		}
	}
}
