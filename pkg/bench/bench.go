package bench

import (
	"context"
	"errors"
	"fmt"
	goMath "math"
	"time"

	"github.com/marekgalovic/pdist/pkg/kernel"
	"github.com/marekgalovic/pdist/pkg/math"
	"github.com/marekgalovic/pdist/pkg/metrics"
	"github.com/marekgalovic/pdist/pkg/sysinfo"

	"github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrMismatch  error = errors.New("Kernel result does not match reference")
	ErrNoKernels error = errors.New("No kernels to benchmark")
)

type Config struct {
	Repeats   int
	Warmup    int
	Tolerance float64
}

func NewConfig() Config {
	return Config{
		Repeats:   5,
		Warmup:    1,
		Tolerance: 1e-9,
	}
}

type Runner struct {
	config    Config
	reference kernel.Kernel
	kernels   []kernel.Kernel
	host      func() sysinfo.Info
}

// NewRunner benchmarks kernels and verifies every result against the one
// computed by reference.
func NewRunner(config Config, reference kernel.Kernel, kernels ...kernel.Kernel) *Runner {
	if config.Repeats < 1 {
		config.Repeats = 1
	}
	if config.Warmup < 0 {
		config.Warmup = 0
	}

	return &Runner{
		config:    config,
		reference: reference,
		kernels:   kernels,
		host:      sysinfo.Collect,
	}
}

func timed(k kernel.Kernel, points *math.Matrix) (math.Vector, time.Duration) {
	startAt := time.Now()
	result := k.Compute(points)
	elapsed := time.Since(startAt)
	metrics.ObserveComputation(k.Name(), len(result), elapsed)
	return result, elapsed
}

// Run benchmarks all kernels on points. The context is checked between runs;
// a single computation is never interrupted.
func (this *Runner) Run(ctx context.Context, points *math.Matrix) (*Report, error) {
	if len(this.kernels) == 0 {
		return nil, ErrNoKernels
	}

	report := &Report{
		ID:        uuid.NewV4().String(),
		StartedAt: time.Now().UTC(),
		Points:    points.Rows(),
		Dimension: points.Cols(),
		Pairs:     kernel.PairCount(points.Rows()),
		Reference: this.reference.Name(),
		Host:      this.host(),
	}
	logger := log.WithFields(log.Fields{"run": report.ID, "points": report.Points, "dim": report.Dimension})

	expected, elapsed := timed(this.reference, points)
	report.ReferenceTime = elapsed
	logger.WithField("elapsed", elapsed).Debug("Reference computed")

	for _, k := range this.kernels {
		result, err := this.runKernel(ctx, k, points, expected)
		if err != nil {
			return nil, err
		}
		if result.Mean > 0 {
			result.Speedup = float64(report.ReferenceTime) / float64(result.Mean)
		}
		report.Results = append(report.Results, result)

		entry := logger.WithFields(log.Fields{
			"kernel": result.Kernel,
			"mean":   result.Mean,
			"min":    result.Min,
			"diff":   result.MaxAbsDiff,
		})
		if result.OK {
			entry.Info("Kernel benchmarked")
		} else {
			metrics.VerificationFailuresTotal.WithLabelValues(result.Kernel).Inc()
			entry.Warn("Kernel result does not match reference")
		}
	}

	return report, nil
}

func (this *Runner) runKernel(ctx context.Context, k kernel.Kernel, points *math.Matrix, expected math.Vector) (Result, error) {
	for i := 0; i < this.config.Warmup; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		k.Compute(points)
	}

	result := Result{Kernel: k.Name(), Min: time.Duration(goMath.MaxInt64)}
	var total time.Duration
	var last math.Vector
	for i := 0; i < this.config.Repeats; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		var elapsed time.Duration
		last, elapsed = timed(k, points)
		total += elapsed
		if elapsed < result.Min {
			result.Min = elapsed
		}
		if elapsed > result.Max {
			result.Max = elapsed
		}
		result.Runs++
	}
	result.Mean = total / time.Duration(result.Runs)
	if result.Mean > 0 {
		result.PairsPerSecond = float64(len(expected)) / result.Mean.Seconds()
	}

	result.MaxAbsDiff = verify(expected, last)
	result.OK = result.MaxAbsDiff <= this.config.Tolerance
	return result, nil
}

func verify(expected, actual math.Vector) float64 {
	if len(expected) != len(actual) {
		return goMath.Inf(1)
	}
	return math.MaxAbsDiff(expected, actual)
}

// Err returns ErrMismatch naming every kernel that failed verification.
func (this *Report) Err() error {
	mismatches := this.Mismatches()
	if len(mismatches) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrMismatch, mismatches)
}

func (this *Report) Mismatches() []string {
	names := make([]string, 0)
	for _, r := range this.Results {
		if !r.OK {
			names = append(names, r.Kernel)
		}
	}
	return names
}
