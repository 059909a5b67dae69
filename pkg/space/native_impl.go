package space

import (
	"github.com/marekgalovic/pdist/pkg/math"
)

type nativeSpaceImpl struct{}

func (nativeSpaceImpl) EuclideanDistance(a, b math.Vector) float64 {
	var distance float64
	for i := 0; i < len(a); i++ {
		distance += math.Square(a[i] - b[i])
	}

	return math.Sqrt(distance)
}

func (nativeSpaceImpl) ManhattanDistance(a, b math.Vector) float64 {
	var distance float64
	for i := 0; i < len(a); i++ {
		distance += math.Abs(a[i] - b[i])
	}

	return distance
}

func (nativeSpaceImpl) CosineDistance(a, b math.Vector) float64 {
	return 1 - math.Dot(a, b)/(math.Length(a)*math.Length(b))
}
