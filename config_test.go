package pdist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/marekgalovic/pdist/pkg/kernel"
	"github.com/marekgalovic/pdist/pkg/space"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewConfigDefaults(t *testing.T) {
	config := NewConfig()
	assert.Equal(t, 3, config.Dimension)
	assert.Equal(t, "parallel", config.Kernel)
	assert.Equal(t, "euclidean", config.Metric)
	assert.Equal(t, "balanced", config.Schedule)
	assert.True(t, config.AllowEmpty)
	assert.Equal(t, 1e-9, config.Tolerance)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PDIST_WORKERS", "6")
	t.Setenv("PDIST_SCHEDULE", "striped")
	t.Setenv("PDIST_CHUNK_ROWS", "32")
	t.Setenv("PDIST_ALLOW_EMPTY", "false")
	t.Setenv("PDIST_TOLERANCE", "1e-6")

	config, err := LoadConfig()
	assert.Nil(t, err)
	assert.Equal(t, 6, config.Workers)
	assert.Equal(t, "striped", config.Schedule)
	assert.Equal(t, 32, config.ChunkRows)
	assert.False(t, config.AllowEmpty)
	assert.Equal(t, 1e-6, config.Tolerance)
	assert.Equal(t, "parallel", config.Kernel)
}

func TestLoadConfigInvalidEnv(t *testing.T) {
	t.Setenv("PDIST_WORKERS", "many")

	_, err := LoadConfig()
	assert.NotNil(t, err)
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	assert.Nil(t, os.WriteFile(path, []byte("PDIST_REPEATS=11\nPDIST_KERNEL=gonum\n"), 0644))
	t.Setenv("PDIST_KERNEL", "native")
	defer os.Unsetenv("PDIST_REPEATS")

	config, err := LoadConfig(path)
	assert.Nil(t, err)
	assert.Equal(t, 11, config.Repeats)
	assert.Equal(t, "native", config.Kernel)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.NotNil(t, err)
}

func TestConfigNewKernel(t *testing.T) {
	config := NewConfig()
	config.Metric = "manhattan"

	k, err := config.NewKernel("parallel", 3)
	assert.Nil(t, err)
	assert.Equal(t, "parallel/unrolled", k.Name())

	config.Schedule = "guided"
	_, err = config.NewKernel("parallel", 3)
	assert.ErrorIs(t, err, kernel.ErrUnknownSchedule)

	config.Schedule = "static"
	config.Metric = "chebyshev"
	_, err = config.NewKernel("parallel", 3)
	assert.ErrorIs(t, err, space.ErrUnknownMetric)
}

func TestBenchConfig(t *testing.T) {
	config := NewConfig()
	config.Repeats = 9
	assert.Equal(t, 9, config.BenchConfig().Repeats)
	assert.Equal(t, config.Tolerance, config.BenchConfig().Tolerance)
}

func TestConfigureLogging(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	assert.Nil(t, ConfigureLogging("debug", "json"))
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.NotNil(t, ConfigureLogging("loud", "text"))
	assert.NotNil(t, ConfigureLogging("info", "xml"))
	assert.Nil(t, ConfigureLogging("info", "text"))
}
