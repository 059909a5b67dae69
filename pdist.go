// Package pdist computes condensed pairwise distance vectors: for N points the
// N(N-1)/2 distances of all pairs (i, j), i < j, ordered by i then j.
package pdist

import (
	"errors"
	"time"

	"github.com/marekgalovic/pdist/pkg/kernel"
	"github.com/marekgalovic/pdist/pkg/math"
	"github.com/marekgalovic/pdist/pkg/metrics"
	"github.com/marekgalovic/pdist/pkg/points"
	"github.com/marekgalovic/pdist/pkg/space"

	log "github.com/sirupsen/logrus"
)

// ComputePairwiseDistances returns the Euclidean distances of all pairs of
// rows of coords using the parallel kernel. The distance of rows i < j is
// stored at kernel.LinIndex(i, j, coords.Rows()).
func ComputePairwiseDistances(coords *math.Matrix) math.Vector {
	s, err := space.New(space.Euclidean, space.Auto, coords.Cols())
	if err != nil {
		panic(err)
	}
	return kernel.NewParallel(s).Compute(coords)
}

// Compute runs the configured kernel over pts.
func Compute(config *Config, pts *math.Matrix) (math.Vector, error) {
	k, err := config.NewKernel(config.Kernel, pts.Cols())
	if err != nil {
		return nil, err
	}

	startAt := time.Now()
	result := k.Compute(pts)
	elapsed := time.Since(startAt)
	metrics.ObserveComputation(k.Name(), len(result), elapsed)

	log.WithFields(log.Fields{
		"kernel":  k.Name(),
		"points":  pts.Rows(),
		"pairs":   len(result),
		"elapsed": elapsed,
	}).Debug("Distances computed")

	return result, nil
}

// LoadPoints reads the input file. An empty file yields an empty point set
// when config.AllowEmpty is set.
func LoadPoints(config *Config, path string) (*math.Matrix, error) {
	pts, err := points.LoadFile(path, points.Dimension(config.Dimension))
	if errors.Is(err, points.ErrEmptyInput) && config.AllowEmpty {
		log.WithField("path", path).Warn("Input has no points")
		err = nil
	}
	if err != nil {
		return nil, err
	}

	metrics.PointsLoaded.Set(float64(pts.Rows()))
	return pts, nil
}

// ComputeFile loads the points stored at path and computes their distances.
func ComputeFile(config *Config, path string) (*math.Matrix, math.Vector, error) {
	pts, err := LoadPoints(config, path)
	if err != nil {
		return nil, nil, err
	}

	result, err := Compute(config, pts)
	if err != nil {
		return nil, nil, err
	}
	return pts, result, nil
}
