package space

import (
	"github.com/marekgalovic/pdist/pkg/math"
)

const unrolledDim = 3

// unrolledSpaceImpl hardcodes three axes. Sums are accumulated in the same
// order as nativeSpaceImpl so both produce identical bits.
type unrolledSpaceImpl struct{}

func (unrolledSpaceImpl) EuclideanDistance(a, b math.Vector) float64 {
	d0 := a[0] - b[0]
	d1 := a[1] - b[1]
	d2 := a[2] - b[2]

	return math.Sqrt(d0*d0 + d1*d1 + d2*d2)
}

func (unrolledSpaceImpl) ManhattanDistance(a, b math.Vector) float64 {
	return math.Abs(a[0]-b[0]) + math.Abs(a[1]-b[1]) + math.Abs(a[2]-b[2])
}

func (unrolledSpaceImpl) CosineDistance(a, b math.Vector) float64 {
	dot := a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
	aNorm := a[0]*a[0] + a[1]*a[1] + a[2]*a[2]
	bNorm := b[0]*b[0] + b[1]*b[1] + b[2]*b[2]

	return 1 - dot/(math.Sqrt(aNorm)*math.Sqrt(bNorm))
}
