// Package stego ties the pieces together for an embedding tool: a mesh
// wrapper that memoizes its canonical reference order, message embedding
// into a facet order, and extraction from an observed order.
package stego

import (
	"sync"

	"github.com/philipparndt/stlmark/pkg/canonical"
	"github.com/philipparndt/stlmark/pkg/permcodec"
	"github.com/philipparndt/stlmark/pkg/stl"
)

// Mesh wraps a parsed model with its memoized reference order. The
// reference is computed once on first use and is read-only afterwards, so
// a Mesh is safe for concurrent encodes and decodes.
type Mesh struct {
	model *stl.Model

	refOnce sync.Once
	ref     []int
	refErr  error
}

// Wrap creates a Mesh around a parsed model
func Wrap(model *stl.Model) *Mesh {
	return &Mesh{model: model}
}

// Model returns the wrapped model
func (m *Mesh) Model() *stl.Model {
	return m.model
}

// Reference returns the canonical reference order of the mesh, computing
// it on first call.
func (m *Mesh) Reference() ([]int, error) {
	m.refOnce.Do(func() {
		m.ref, m.refErr = canonical.Reference(m.model)
	})
	return m.ref, m.refErr
}

// Capacity returns the number of message bits this mesh can carry
func (m *Mesh) Capacity() int {
	return permcodec.Capacity(m.model.FacetCount())
}

// Embed turns a message into a facet order. Writing the model's facets in
// the returned order produces the stego solid.
func (m *Mesh) Embed(bits string) ([]int, error) {
	ref, err := m.Reference()
	if err != nil {
		return nil, err
	}
	return permcodec.Encode(ref, bits)
}

// Extract recovers the embedded bit string from an observed facet order.
// A nil ord observes the identity order, which is the receiving side's
// view of a stego file: derive ref from the file's own geometry and
// decode its facets as read. The result carries padding and filler past
// the message; the caller truncates to the expected length.
func Extract(ref, ord []int) (string, error) {
	return permcodec.Decode(ref, ord)
}
