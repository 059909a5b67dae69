package pdist

import (
	"github.com/marekgalovic/pdist/pkg/bench"
	"github.com/marekgalovic/pdist/pkg/kernel"
	"github.com/marekgalovic/pdist/pkg/space"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "PDIST"

type Config struct {
	// Expected point dimension; 0 infers it from the input.
	Dimension  int    `envconfig:"DIMENSION"`
	Kernel     string `envconfig:"KERNEL"`
	Metric     string `envconfig:"METRIC"`
	Workers    int    `envconfig:"WORKERS"`
	Schedule   string `envconfig:"SCHEDULE"`
	ChunkRows  int    `envconfig:"CHUNK_ROWS"`
	Threshold  int    `envconfig:"PARALLEL_THRESHOLD"`
	AllowEmpty bool   `envconfig:"ALLOW_EMPTY"`

	Repeats   int     `envconfig:"REPEATS"`
	Warmup    int     `envconfig:"WARMUP"`
	Tolerance float64 `envconfig:"TOLERANCE"`

	LogLevel    string `envconfig:"LOG_LEVEL"`
	LogFormat   string `envconfig:"LOG_FORMAT"`
	MetricsFile string `envconfig:"METRICS_FILE"`
}

func NewConfig() *Config {
	benchConfig := bench.NewConfig()
	return &Config{
		Dimension:  3,
		Kernel:     "parallel",
		Metric:     space.Euclidean.String(),
		Schedule:   kernel.Balanced.String(),
		Threshold:  4096,
		AllowEmpty: true,
		Repeats:    benchConfig.Repeats,
		Warmup:     benchConfig.Warmup,
		Tolerance:  benchConfig.Tolerance,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// LoadConfig returns the defaults overridden by PDIST_* environment variables.
// Variables from envFiles are loaded first but never replace ones already set.
func LoadConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, err
		}
	}

	config := NewConfig()
	if err := envconfig.Process(EnvPrefix, config); err != nil {
		return nil, err
	}
	return config, nil
}

func (this *Config) KernelOptions() ([]kernel.Option, error) {
	metric, err := space.ParseMetric(this.Metric)
	if err != nil {
		return nil, err
	}
	schedule, err := kernel.ParseSchedule(this.Schedule)
	if err != nil {
		return nil, err
	}

	return []kernel.Option{
		kernel.WithMetric(metric),
		kernel.Workers(this.Workers),
		kernel.WithSchedule(schedule),
		kernel.ChunkRows(this.ChunkRows),
		kernel.Threshold(this.Threshold),
	}, nil
}

// NewKernel builds the named kernel for points of dimension dim.
func (this *Config) NewKernel(name string, dim int) (kernel.Kernel, error) {
	options, err := this.KernelOptions()
	if err != nil {
		return nil, err
	}
	return kernel.New(name, dim, options...)
}

func (this *Config) BenchConfig() bench.Config {
	return bench.Config{
		Repeats:   this.Repeats,
		Warmup:    this.Warmup,
		Tolerance: this.Tolerance,
	}
}
