package kernel

import (
	"fmt"
	"sort"
)

// PairCount is the number of unordered pairs of n points.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// LinIndex maps the pair (i, j), i < j < n, to its position in the condensed
// upper triangle. Rows are laid out in increasing i, each row in increasing j.
func LinIndex(i, j, n int) int {
	return i*(n-1) - i*(i+1)/2 + j - 1
}

// RowOffset is the linear index of the first pair of row i. It is defined for
// i in [0, n] and RowOffset(n, n) == PairCount(n).
func RowOffset(i, n int) int {
	if n < 2 {
		return 0
	}
	return i*(n-1) - i*(i-1)/2
}

// PairAt is the inverse of LinIndex.
func PairAt(l, n int) (int, int) {
	if l < 0 || l >= PairCount(n) {
		panic(fmt.Sprintf("linear index %d out of range for %d points", l, n))
	}

	i := sort.Search(n-1, func(k int) bool {
		return RowOffset(k+1, n) > l
	})
	return i, l - RowOffset(i, n) + i + 1
}
