package kernel

import (
	"container/heap"
	goMath "math"
	"sort"

	"github.com/marekgalovic/pdist/pkg/math"
)

type Pair struct {
	I        int
	J        int
	Distance float64
}

// pairLess orders pairs by distance, then by row and column.
func pairLess(a, b Pair) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	if a.I != b.I {
		return a.I < b.I
	}
	return a.J < b.J
}

func pairGreater(a, b Pair) bool { return pairLess(b, a) }

// pairQueue is a heap whose root is the pair that would be evicted first.
type pairQueue struct {
	items []Pair
	evict func(a, b Pair) bool
}

func (pq pairQueue) Len() int { return len(pq.items) }

func (pq pairQueue) Less(i, j int) bool { return pq.evict(pq.items[i], pq.items[j]) }

func (pq pairQueue) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *pairQueue) Push(val interface{}) {
	pq.items = append(pq.items, val.(Pair))
}

func (pq *pairQueue) Pop() interface{} {
	item := pq.items[len(pq.items)-1]
	pq.items = pq.items[:len(pq.items)-1]
	return item
}

func (pq *pairQueue) Peek() Pair {
	return pq.items[0]
}

// selectPairs keeps the k pairs ranking first under keep. NaN distances are
// skipped.
func selectPairs(v math.Vector, n, k int, keep func(a, b Pair) bool) []Pair {
	if len(v) != PairCount(n) {
		panic("Condensed vector length does not match point count.")
	}
	if k <= 0 || len(v) == 0 {
		return []Pair{}
	}

	queue := &pairQueue{
		items: make([]Pair, 0, math.MinInt(k, len(v))),
		evict: func(a, b Pair) bool { return keep(b, a) },
	}
	l := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := v[l]
			l++
			if goMath.IsNaN(d) {
				continue
			}

			candidate := Pair{i, j, d}
			if queue.Len() < k {
				heap.Push(queue, candidate)
			} else if keep(candidate, queue.Peek()) {
				queue.items[0] = candidate
				heap.Fix(queue, 0)
			}
		}
	}

	result := queue.items
	sort.Slice(result, func(a, b int) bool { return keep(result[a], result[b]) })
	return result
}

// ClosestPairs returns the k pairs with the smallest distances in ascending
// order.
func ClosestPairs(v math.Vector, n, k int) []Pair {
	return selectPairs(v, n, k, pairLess)
}

// FarthestPairs returns the k pairs with the largest distances in descending
// order.
func FarthestPairs(v math.Vector, n, k int) []Pair {
	return selectPairs(v, n, k, pairGreater)
}
