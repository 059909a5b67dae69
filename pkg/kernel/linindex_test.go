package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairCount(t *testing.T) {
	assert.Equal(t, 0, PairCount(0))
	assert.Equal(t, 0, PairCount(1))
	assert.Equal(t, 1, PairCount(2))
	assert.Equal(t, 3, PairCount(3))
	assert.Equal(t, 10, PairCount(5))
	assert.Equal(t, 499500, PairCount(1000))
}

func TestLinIndexSmall(t *testing.T) {
	assert.Equal(t, 0, LinIndex(0, 1, 3))
	assert.Equal(t, 1, LinIndex(0, 2, 3))
	assert.Equal(t, 2, LinIndex(1, 2, 3))
}

func TestLinIndexIsBijection(t *testing.T) {
	for n := 0; n <= 30; n++ {
		seen := make(map[int]bool)
		expected := 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				l := LinIndex(i, j, n)
				assert.Equal(t, expected, l, "n=%d i=%d j=%d", n, i, j)
				assert.False(t, seen[l])
				seen[l] = true
				expected++
			}
		}
		assert.Equal(t, PairCount(n), len(seen))
		for l := 0; l < PairCount(n); l++ {
			assert.True(t, seen[l], "gap at %d for n=%d", l, n)
		}
	}
}

func TestRowOffset(t *testing.T) {
	for n := 0; n <= 20; n++ {
		for i := 0; i < n-1; i++ {
			assert.Equal(t, LinIndex(i, i+1, n), RowOffset(i, n))
			assert.Equal(t, n-1-i, RowOffset(i+1, n)-RowOffset(i, n))
		}
		assert.Equal(t, PairCount(n), RowOffset(n, n))
	}
}

func TestPairAtInvertsLinIndex(t *testing.T) {
	for n := 2; n <= 25; n++ {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				pi, pj := PairAt(LinIndex(i, j, n), n)
				assert.Equal(t, i, pi)
				assert.Equal(t, j, pj)
			}
		}
	}
}

func TestPairAtOutOfRange(t *testing.T) {
	assert.Panics(t, func() { PairAt(-1, 5) })
	assert.Panics(t, func() { PairAt(10, 5) })
	assert.Panics(t, func() { PairAt(0, 1) })
}
