package math

import (
	goMath "math"
)

const MaxIntVal = int((^uint(0)) >> 1)

func Abs(x float64) float64 {
	return goMath.Abs(x)
}

func Square(x float64) float64 {
	return x * x
}

func Sqrt(x float64) float64 {
	return goMath.Sqrt(x)
}

func IsFinite(x float64) bool {
	return !goMath.IsNaN(x) && !goMath.IsInf(x, 0)
}

func MinInt(values ...int) int {
	min := MaxIntVal
	for _, value := range values {
		if value < min {
			min = value
		}
	}
	return min
}
