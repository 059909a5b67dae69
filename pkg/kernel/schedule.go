package kernel

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnknownSchedule error = errors.New("Unknown schedule")
	ErrPlanBounds      error = errors.New("Plan block out of bounds")
	ErrPlanOverlap     error = errors.New("Plan blocks overlap")
	ErrPlanGap         error = errors.New("Plan blocks leave rows uncovered")
)

var scheduleNames = [...]string{
	"static",
	"balanced",
	"striped",
}

type Schedule int

const (
	// Static splits rows into equally sized contiguous blocks.
	Static Schedule = iota
	// Balanced splits rows into contiguous blocks holding equal pair counts.
	Balanced
	// Striped deals fixed size row chunks to workers round robin.
	Striped
)

func (s Schedule) String() string {
	return scheduleNames[s]
}

func ParseSchedule(name string) (Schedule, error) {
	for i, n := range scheduleNames {
		if strings.EqualFold(n, name) {
			return Schedule(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSchedule, name)
}

// Block is the row range [From, To) of the upper triangle. It owns the
// contiguous output slots [RowOffset(From), RowOffset(To)).
type Block struct {
	From int
	To   int
}

func (b Block) Slots(n int) (int, int) {
	return RowOffset(b.From, n), RowOffset(b.To, n)
}

// Plan holds the blocks assigned to each worker.
type Plan [][]Block

func NewPlan(n, workers int, schedule Schedule, chunkRows int) Plan {
	if workers < 1 {
		workers = 1
	}
	if n > 0 && workers > n {
		workers = n
	}

	plan := make(Plan, workers)
	if n == 0 {
		return plan
	}

	switch schedule {
	case Static:
		rowsPerWorker := (n + workers - 1) / workers
		for w := 0; w < workers; w++ {
			from, to := w*rowsPerWorker, (w+1)*rowsPerWorker
			if to > n {
				to = n
			}
			if from < to {
				plan[w] = append(plan[w], Block{from, to})
			}
		}
	case Striped:
		if chunkRows < 1 {
			chunkRows = defaultChunkRows(n, workers)
		}
		for k, from := 0, 0; from < n; k, from = k+1, from+chunkRows {
			to := from + chunkRows
			if to > n {
				to = n
			}
			plan[k%workers] = append(plan[k%workers], Block{from, to})
		}
	default:
		pairs := PairCount(n)
		from := 0
		for w := 0; w < workers && from < n; w++ {
			to := n
			if w < workers-1 {
				goal := (pairs*(w+1) + workers - 1) / workers
				to = from + 1
				for to < n && RowOffset(to, n) < goal {
					to++
				}
			}
			plan[w] = append(plan[w], Block{from, to})
			from = to
		}
	}

	return plan
}

func defaultChunkRows(n, workers int) int {
	chunk := n / (workers * 8)
	if chunk < 1 {
		return 1
	}
	return chunk
}

// Validate checks that the blocks of the plan partition the rows [0, n), and
// therefore that their output slots partition [0, PairCount(n)).
func (p Plan) Validate(n int) error {
	blocks := make([]Block, 0)
	for _, assigned := range p {
		blocks = append(blocks, assigned...)
	}
	for _, b := range blocks {
		if b.From < 0 || b.To > n || b.From >= b.To {
			return fmt.Errorf("%w: [%d, %d) with %d rows", ErrPlanBounds, b.From, b.To, n)
		}
	}

	sort.Slice(blocks, func(i, j int) bool { return blocks[i].From < blocks[j].From })

	nextRow, nextSlot := 0, 0
	for _, b := range blocks {
		lo, hi := b.Slots(n)
		if b.From < nextRow || lo < nextSlot {
			return fmt.Errorf("%w: block [%d, %d)", ErrPlanOverlap, b.From, b.To)
		}
		if b.From > nextRow || lo > nextSlot {
			return fmt.Errorf("%w: rows [%d, %d)", ErrPlanGap, nextRow, b.From)
		}
		nextRow, nextSlot = b.To, hi
	}
	if nextRow != n || nextSlot != PairCount(n) {
		return fmt.Errorf("%w: rows [%d, %d)", ErrPlanGap, nextRow, n)
	}
	return nil
}

// Pairs returns the number of pairs assigned to each worker.
func (p Plan) Pairs(n int) []int {
	result := make([]int, len(p))
	for w, blocks := range p {
		for _, b := range blocks {
			lo, hi := b.Slots(n)
			result[w] += hi - lo
		}
	}
	return result
}
