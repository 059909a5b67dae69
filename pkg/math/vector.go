package math

import (
	goMath "math"
)

type Vector []float64

func assertSameDim(i, j *Vector) {
	if len(*i) != len(*j) {
		panic("Vector sizes do not match.")
	}
}

func Dot(a, b Vector) float64 {
	var dot float64
	for i := 0; i < len(a); i++ {
		dot += a[i] * b[i]
	}
	return dot
}

func Length(a Vector) float64 {
	return Sqrt(Dot(a, a))
}

// MaxAbsDiff returns the largest element-wise absolute difference of two
// vectors of equal length. A NaN on either side counts as an infinite
// difference unless both sides are NaN.
func MaxAbsDiff(a, b Vector) float64 {
	assertSameDim(&a, &b)

	var diff float64
	for i := 0; i < len(a); i++ {
		aNaN, bNaN := goMath.IsNaN(a[i]), goMath.IsNaN(b[i])
		if aNaN && bNaN {
			continue
		}
		if aNaN || bNaN {
			return goMath.Inf(1)
		}
		if d := Abs(a[i] - b[i]); d > diff {
			diff = d
		}
	}
	return diff
}
