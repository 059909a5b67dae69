package kernel

import (
	"github.com/marekgalovic/pdist/pkg/math"
	"github.com/marekgalovic/pdist/pkg/space"
)

// Kernel computes the condensed pairwise distance vector of a point set. The
// result has PairCount(points.Rows()) entries and the distance of the pair
// (i, j) is stored at LinIndex(i, j, points.Rows()).
type Kernel interface {
	Name() string
	Compute(*math.Matrix) math.Vector
}

type sequentialKernel struct {
	space space.Space
}

// NewSequential returns the brute force double loop kernel.
func NewSequential(s space.Space) Kernel {
	return &sequentialKernel{space: s}
}

func (this *sequentialKernel) Name() string {
	return this.space.Impl().String()
}

func (this *sequentialKernel) Compute(points *math.Matrix) math.Vector {
	n := points.Rows()
	result := make(math.Vector, PairCount(n))
	for i := 0; i < n; i++ {
		a := points.Row(i)
		for j := i + 1; j < n; j++ {
			result[LinIndex(i, j, n)] = this.space.Distance(a, points.Row(j))
		}
	}

	return result
}

// computeBlock writes the distances of rows [b.From, b.To) into out, which
// must be exactly the slot range of the block.
func computeBlock(s space.Space, points *math.Matrix, b Block, out math.Vector) {
	n := points.Rows()
	l := 0
	for i := b.From; i < b.To; i++ {
		a := points.Row(i)
		for j := i + 1; j < n; j++ {
			out[l] = s.Distance(a, points.Row(j))
			l++
		}
	}
}
