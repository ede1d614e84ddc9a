package stl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/stlmark/pkg/geometry"
)

// Coordinates are always emitted as %e with six fractional digits. The
// precision is pinned once for the whole system: sender and receiver must
// see identical geometry when a written file is parsed back.
const coordFormat = "%e %e %e"

// Write emits the solid with facet blocks in the given order. The order
// must be a permutation of 0..FacetCount()-1; a nil order means file
// order. Writing never mutates the model.
func (m *Model) Write(w io.Writer, order []int) error {
	n := m.FacetCount()
	if order == nil {
		order = identityOrder(n)
	}
	if err := checkOrder(order, n); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", m.Name)
	for _, id := range order {
		writeFacet(bw, m.Facets[id])
	}
	fmt.Fprintf(bw, "endsolid %s\n", m.Name)
	return bw.Flush()
}

// WriteFile writes the ordered solid to a file
func (m *Model) WriteFile(filename string, order []int) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := m.Write(file, order); err != nil {
		return err
	}
	return file.Close()
}

func writeFacet(w io.Writer, f geometry.Triangle) {
	fmt.Fprintf(w, "    facet normal "+coordFormat+"\n", f.Normal.X, f.Normal.Y, f.Normal.Z)
	fmt.Fprintf(w, "        outer loop\n")
	fmt.Fprintf(w, "            vertex "+coordFormat+"\n", f.V1.X, f.V1.Y, f.V1.Z)
	fmt.Fprintf(w, "            vertex "+coordFormat+"\n", f.V2.X, f.V2.Y, f.V2.Z)
	fmt.Fprintf(w, "            vertex "+coordFormat+"\n", f.V3.X, f.V3.Y, f.V3.Z)
	fmt.Fprintf(w, "        endloop\n")
	fmt.Fprintf(w, "    endfacet\n")
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

// checkOrder verifies that order is a permutation of 0..n-1
func checkOrder(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("stl: order has %d entries, model has %d facets", len(order), n)
	}
	seen := make([]bool, n)
	for _, id := range order {
		if id < 0 || id >= n {
			return fmt.Errorf("stl: order contains out-of-range facet index %d", id)
		}
		if seen[id] {
			return fmt.Errorf("stl: order contains facet index %d twice", id)
		}
		seen[id] = true
	}
	return nil
}
