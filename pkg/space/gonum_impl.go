package space

import (
	"github.com/marekgalovic/pdist/pkg/math"

	"gonum.org/v1/gonum/floats"
)

type gonumSpaceImpl struct{}

func (gonumSpaceImpl) EuclideanDistance(a, b math.Vector) float64 {
	return floats.Distance(a, b, 2)
}

func (gonumSpaceImpl) ManhattanDistance(a, b math.Vector) float64 {
	return floats.Distance(a, b, 1)
}

func (gonumSpaceImpl) CosineDistance(a, b math.Vector) float64 {
	return 1 - floats.Dot(a, b)/(floats.Norm(a, 2)*floats.Norm(b, 2))
}
