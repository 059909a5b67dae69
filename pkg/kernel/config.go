package kernel

import (
	"runtime"

	"github.com/marekgalovic/pdist/pkg/space"
)

// Options
type Option interface {
	apply(*kernelConfig)
}

type kernelOption struct {
	applyFunc func(*kernelConfig)
}

func (opt *kernelOption) apply(config *kernelConfig) {
	opt.applyFunc(config)
}

func WithMetric(value space.Metric) Option {
	return &kernelOption{func(config *kernelConfig) {
		config.metric = value
	}}
}

func Workers(value int) Option {
	return &kernelOption{func(config *kernelConfig) {
		config.workers = value
	}}
}

func WithSchedule(value Schedule) Option {
	return &kernelOption{func(config *kernelConfig) {
		config.schedule = value
	}}
}

func ChunkRows(value int) Option {
	return &kernelOption{func(config *kernelConfig) {
		config.chunkRows = value
	}}
}

// Threshold sets the pair count below which the parallel kernel runs on the
// calling goroutine.
func Threshold(value int) Option {
	return &kernelOption{func(config *kernelConfig) {
		config.threshold = value
	}}
}

type kernelConfig struct {
	metric    space.Metric
	workers   int
	schedule  Schedule
	chunkRows int
	threshold int
}

func newKernelConfig(options []Option) kernelConfig {
	config := kernelConfig{
		metric:    space.Euclidean,
		workers:   -1,
		schedule:  Balanced,
		chunkRows: -1,
		threshold: 4096,
	}
	for _, option := range options {
		option.apply(&config)
	}

	if config.workers < 1 {
		config.workers = runtime.GOMAXPROCS(0)
	}

	return config
}
