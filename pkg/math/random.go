package math

import (
	"math/rand"
)

// RandomUniformMatrix samples rows x cols values uniformly from [low, high).
func RandomUniformMatrix(rng *rand.Rand, rows, cols int, low, high float64) *Matrix {
	m := NewMatrix(rows, cols)
	for i := range m.data {
		m.data[i] = low + (high-low)*rng.Float64()
	}
	return m
}

func RandomNormalMatrix(rng *rand.Rand, rows, cols int, mu, sigma float64) *Matrix {
	m := NewMatrix(rows, cols)
	for i := range m.data {
		m.data[i] = rng.NormFloat64()*sigma + mu
	}
	return m
}
