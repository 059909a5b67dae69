package kernel

import (
	goMath "math"
	"math/rand"
	"testing"

	"github.com/marekgalovic/pdist/pkg/math"
	"github.com/marekgalovic/pdist/pkg/space"

	"github.com/stretchr/testify/assert"
)

func triangle() *math.Matrix {
	return math.MustMatrixFromRows([]math.Vector{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	})
}

// bruteForce appends pair distances in row order without using LinIndex.
func bruteForce(points *math.Matrix) math.Vector {
	n := points.Rows()
	result := make(math.Vector, 0)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var sum float64
			for k := 0; k < points.Cols(); k++ {
				d := points.At(i, k) - points.At(j, k)
				sum += d * d
			}
			result = append(result, goMath.Sqrt(sum))
		}
	}
	return result
}

func allKernels(t *testing.T, dim int) []Kernel {
	kernels := make([]Kernel, 0)
	for _, name := range Names() {
		if name == "unrolled" && dim != 3 {
			continue
		}
		k, err := New(name, dim, Threshold(0), Workers(4))
		assert.Nil(t, err)
		kernels = append(kernels, k)
	}
	return kernels
}

func TestKernelsTriangle(t *testing.T) {
	expected := math.Vector{1, 1, goMath.Sqrt2}
	for _, k := range allKernels(t, 3) {
		result := k.Compute(triangle())
		assert.Len(t, result, 3, k.Name())
		assert.InDeltaSlice(t, expected, result, 1e-12, k.Name())
	}
}

func TestKernelsDegenerateInputs(t *testing.T) {
	single := math.MustMatrixFromRows([]math.Vector{{1, 2, 3}})
	empty := math.NewMatrix(0, 3)

	for _, k := range allKernels(t, 3) {
		assert.Len(t, k.Compute(single), 0, k.Name())
		assert.Len(t, k.Compute(empty), 0, k.Name())
	}
}

func TestKernelsOutputLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n <= 50; n++ {
		points := math.RandomUniformMatrix(rng, n, 3, -1, 1)
		for _, k := range allKernels(t, 3) {
			assert.Equal(t, n*(n-1)/2, len(k.Compute(points)), "kernel=%s n=%d", k.Name(), n)
		}
	}
}

func TestKernelsMatchBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, dim := range []int{1, 3, 7} {
		points := math.RandomUniformMatrix(rng, 97, dim, -100, 100)
		expected := bruteForce(points)
		for _, k := range allKernels(t, dim) {
			assert.InDeltaSlice(t, expected, k.Compute(points), 1e-9, "kernel=%s dim=%d", k.Name(), dim)
		}
	}
}

func TestSequentialWritesEachPairAtItsLinIndex(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	n := 31
	points := math.RandomUniformMatrix(rng, n, 3, 0, 10)
	result := NewSequential(space.NewEuclidean(3)).Compute(points)

	for l := range result {
		i, j := PairAt(l, n)
		a, b := points.Row(i), points.Row(j)
		d := math.Vector{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
		assert.InDelta(t, math.Length(d), result[l], 1e-12)
	}
}

func TestParallelMatchesSequentialForAllSchedules(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	points := math.RandomUniformMatrix(rng, 257, 3, -50, 50)
	expected := NewSequential(space.NewEuclidean(3)).Compute(points)

	for _, schedule := range schedules {
		for _, workers := range []int{1, 2, 3, 8, 64, 1000} {
			k := NewParallel(space.NewEuclidean(3), Workers(workers), WithSchedule(schedule), ChunkRows(5), Threshold(0))
			assert.InDeltaSlice(t, expected, k.Compute(points), 1e-9, "schedule=%s workers=%d", schedule, workers)
		}
	}
}

func TestParallelBelowThresholdRunsInline(t *testing.T) {
	k := NewParallel(space.NewEuclidean(3), Workers(8), Threshold(1000))
	assert.InDeltaSlice(t, math.Vector{1, 1, goMath.Sqrt2}, k.Compute(triangle()), 1e-12)
}

func TestKernelNames(t *testing.T) {
	k, err := New("parallel", 3)
	assert.Nil(t, err)
	assert.Equal(t, "parallel/unrolled", k.Name())

	k, err = New("parallel", 4)
	assert.Nil(t, err)
	assert.Equal(t, "parallel/native", k.Name())

	k, err = New("gonum", 3)
	assert.Nil(t, err)
	assert.Equal(t, "gonum", k.Name())

	assert.Equal(t, []string{"gonum", "native", "parallel", "unrolled"}, Names())
}

func TestNewErrors(t *testing.T) {
	_, err := New("openmp", 3)
	assert.ErrorIs(t, err, ErrUnknownKernel)

	_, err = New("unrolled", 2)
	assert.ErrorIs(t, err, space.ErrUnsupportedDimension)
}

func TestManhattanMetric(t *testing.T) {
	k, err := New("parallel", 3, WithMetric(space.Manhattan), Threshold(0))
	assert.Nil(t, err)
	assert.Equal(t, math.Vector{1, 1, 2}, k.Compute(triangle()))
}

func TestSquareForm(t *testing.T) {
	m, err := SquareForm(math.Vector{1, 2, 3}, 3)
	assert.Nil(t, err)
	assert.Equal(t, math.Vector{0, 1, 2}, m.Row(0))
	assert.Equal(t, math.Vector{1, 0, 3}, m.Row(1))
	assert.Equal(t, math.Vector{2, 3, 0}, m.Row(2))

	_, err = SquareForm(math.Vector{1, 2}, 3)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	m, err = SquareForm(math.Vector{}, 1)
	assert.Nil(t, err)
	assert.Equal(t, float64(0), m.At(0, 0))
}

func BenchmarkKernels(b *testing.B) {
	rng := rand.New(rand.NewSource(5))
	points := math.RandomUniformMatrix(rng, 2000, 3, -1, 1)

	for _, name := range Names() {
		k, err := New(name, 3)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(k.Name(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				k.Compute(points)
			}
			b.ReportMetric(float64(PairCount(points.Rows())*b.N)/b.Elapsed().Seconds(), "pairs/sec")
		})
	}
}
