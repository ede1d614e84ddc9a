// Package canonical derives a reference ordering of facet indices from
// mesh geometry alone. Two parties holding the same solid compute the
// same ordering without exchanging any metadata, because it depends only
// on the vertex set's principal axes, not on file order.
package canonical

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/philipparndt/stlmark/pkg/stl"
)

// ErrDegenerateGeometry indicates geometry whose covariance matrix cannot
// be eigendecomposed.
var ErrDegenerateGeometry = errors.New("canonical: degenerate geometry")

// Reference computes the canonical ordering of the model's facet indices:
//
//  1. all 3n vertices form one point set; its 3x3 covariance matrix is
//     eigendecomposed into a principal axis basis intrinsic to the shape;
//  2. every facet centroid is projected into that basis;
//  3. indices are sorted lexicographically on the projected coordinates,
//     ascending.
//
// Conventions pinned for reproducibility: eigenvalues ascending, and each
// eigenvector's sign chosen so its largest-magnitude component is
// positive. The sort is stable, so facets with exactly equal projections
// keep parse order; such ties silently desynchronize sender and receiver
// and are out of scope.
//
// Models with fewer than 2 facets order trivially and carry no capacity.
func Reference(m *stl.Model) ([]int, error) {
	n := m.FacetCount()
	if n == 0 {
		return []int{}, nil
	}
	if n == 1 {
		return []int{0}, nil
	}

	basis, err := principalAxes(m)
	if err != nil {
		return nil, err
	}

	// Facet centroids expressed in the eigenbasis.
	proj := make([][3]float64, n)
	for i := 0; i < n; i++ {
		c := m.Facet(i).Center()
		for k := 0; k < 3; k++ {
			proj[i][k] = c.X*basis.At(0, k) + c.Y*basis.At(1, k) + c.Z*basis.At(2, k)
		}
	}

	ref := make([]int, n)
	for i := range ref {
		ref[i] = i
	}
	sort.SliceStable(ref, func(a, b int) bool {
		pa, pb := proj[ref[a]], proj[ref[b]]
		for k := 0; k < 3; k++ {
			if pa[k] != pb[k] {
				return pa[k] < pb[k]
			}
		}
		return false
	})

	return ref, nil
}

// principalAxes returns the eigenvector basis of the vertex covariance
// matrix as a 3x3 matrix whose columns are the sign-fixed eigenvectors.
func principalAxes(m *stl.Model) (*mat.Dense, error) {
	n := m.FacetCount()
	points := mat.NewDense(3*n, 3, nil)
	for i := 0; i < n; i++ {
		f := m.Facet(i)
		points.SetRow(3*i+0, []float64{f.V1.X, f.V1.Y, f.V1.Z})
		points.SetRow(3*i+1, []float64{f.V2.X, f.V2.Y, f.V2.Z})
		points.SetRow(3*i+2, []float64{f.V3.X, f.V3.Y, f.V3.Z})
	}

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, points, nil)

	var eig mat.EigenSym
	if !eig.Factorize(&cov, true) {
		return nil, fmt.Errorf("eigendecomposition of covariance failed: %w", ErrDegenerateGeometry)
	}

	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	fixSigns(&vecs)
	return &vecs, nil
}

// fixSigns flips each eigenvector so that its largest-magnitude component
// is positive. Eigenvectors are only defined up to sign; without this,
// two runs of a conformant solver could disagree and break the shared
// baseline.
func fixSigns(vecs *mat.Dense) {
	for k := 0; k < 3; k++ {
		lead, magnitude := 0, 0.0
		for i := 0; i < 3; i++ {
			if a := math.Abs(vecs.At(i, k)); a > magnitude {
				lead, magnitude = i, a
			}
		}
		if vecs.At(lead, k) < 0 {
			for i := 0; i < 3; i++ {
				vecs.Set(i, k, -vecs.At(i, k))
			}
		}
	}
}
