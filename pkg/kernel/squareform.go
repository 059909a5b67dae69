package kernel

import (
	"errors"
	"fmt"

	"github.com/marekgalovic/pdist/pkg/math"
)

var (
	ErrLengthMismatch error = errors.New("Condensed vector length does not match point count")
)

// SquareForm expands a condensed distance vector of n points into the
// symmetric n x n matrix with a zero diagonal.
func SquareForm(v math.Vector, n int) (*math.Matrix, error) {
	if len(v) != PairCount(n) {
		return nil, fmt.Errorf("%w: %d values for %d points", ErrLengthMismatch, len(v), n)
	}

	m := math.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := v[LinIndex(i, j, n)]
			m.Set(i, j, d)
			m.Set(j, i, d)
		}
	}
	return m, nil
}
