package pdist

import (
	goMath "math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/marekgalovic/pdist/pkg/kernel"
	"github.com/marekgalovic/pdist/pkg/math"
	"github.com/marekgalovic/pdist/pkg/points"

	"github.com/stretchr/testify/assert"
)

func writePoints(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "points.txt")
	assert.Nil(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestComputePairwiseDistances(t *testing.T) {
	coords := math.MustMatrixFromRows([]math.Vector{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	result := ComputePairwiseDistances(coords)

	assert.InDeltaSlice(t, math.Vector{1, 1, goMath.Sqrt2}, result, 1e-12)
	assert.Len(t, ComputePairwiseDistances(math.MustMatrixFromRows([]math.Vector{{1, 2, 3}})), 0)
}

func TestComputePairwiseDistancesLarge(t *testing.T) {
	coords := math.RandomUniformMatrix(rand.New(rand.NewSource(1)), 400, 3, -1, 1)
	k, err := kernel.New(kernel.Reference, 3)
	assert.Nil(t, err)

	assert.InDeltaSlice(t, k.Compute(coords), ComputePairwiseDistances(coords), 1e-9)
}

func TestComputeFile(t *testing.T) {
	path := writePoints(t, "0 0 0\n1 0 0\n0 1 0\n")

	pts, result, err := ComputeFile(NewConfig(), path)
	assert.Nil(t, err)
	assert.Equal(t, 3, pts.Rows())
	assert.InDeltaSlice(t, math.Vector{1, 1, goMath.Sqrt2}, result, 1e-12)
}

func TestComputeFileEveryKernel(t *testing.T) {
	path := writePoints(t, "0 0 0\n1 0 0\n0 1 0\n")
	for _, name := range kernel.Names() {
		config := NewConfig()
		config.Kernel = name
		_, result, err := ComputeFile(config, path)
		assert.Nil(t, err, name)
		assert.InDeltaSlice(t, math.Vector{1, 1, goMath.Sqrt2}, result, 1e-12, name)
	}
}

func TestComputeFileEmpty(t *testing.T) {
	path := writePoints(t, "# nothing here\n")

	pts, result, err := ComputeFile(NewConfig(), path)
	assert.Nil(t, err)
	assert.Equal(t, 0, pts.Rows())
	assert.Len(t, result, 0)

	config := NewConfig()
	config.AllowEmpty = false
	_, _, err = ComputeFile(config, path)
	assert.ErrorIs(t, err, points.ErrEmptyInput)
}

func TestComputeFileMalformed(t *testing.T) {
	_, _, err := ComputeFile(NewConfig(), writePoints(t, "0 0 0\n1 0\n"))
	assert.ErrorIs(t, err, points.ErrMalformedInput)
}

func TestComputeFileGeneralDimension(t *testing.T) {
	config := NewConfig()
	config.Dimension = 0

	pts, result, err := ComputeFile(config, writePoints(t, "0 0 0 0\n1 1 1 1\n"))
	assert.Nil(t, err)
	assert.Equal(t, 4, pts.Cols())
	assert.InDeltaSlice(t, math.Vector{2}, result, 1e-12)
}
