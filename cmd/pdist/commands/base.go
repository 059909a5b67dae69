package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/marekgalovic/pdist"
	"github.com/marekgalovic/pdist/pkg/metrics"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const configKey = "config"

var ErrNegativePoints error = errors.New("Number of points must not be negative")

// Setup loads the configuration and applies global flag overrides.
func Setup(c *cli.Context) error {
	envFiles := make([]string, 0)
	if c.IsSet("env-file") {
		envFiles = append(envFiles, c.String("env-file"))
	}

	config, err := pdist.LoadConfig(envFiles...)
	if err != nil {
		return err
	}

	if c.IsSet("log-level") {
		config.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		config.LogFormat = c.String("log-format")
	}
	if c.IsSet("metrics-file") {
		config.MetricsFile = c.String("metrics-file")
	}
	if c.IsSet("dim") {
		config.Dimension = c.Int("dim")
	}
	if c.IsSet("metric") {
		config.Metric = c.String("metric")
	}
	if c.IsSet("workers") {
		config.Workers = c.Int("workers")
	}
	if c.IsSet("schedule") {
		config.Schedule = c.String("schedule")
	}
	if c.IsSet("chunk-rows") {
		config.ChunkRows = c.Int("chunk-rows")
	}
	if c.IsSet("threshold") {
		config.Threshold = c.Int("threshold")
	}

	if err := pdist.ConfigureLogging(config.LogLevel, config.LogFormat); err != nil {
		return err
	}

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]interface{})
	}
	c.App.Metadata[configKey] = config
	return nil
}

// Teardown exports metrics when a metrics file is configured.
func Teardown(c *cli.Context) error {
	config := getConfig(c)
	if config == nil || config.MetricsFile == "" {
		return nil
	}

	if err := metrics.WriteTextfile(config.MetricsFile); err != nil {
		return err
	}
	log.WithField("path", config.MetricsFile).Debug("Metrics written")
	return nil
}

func getConfig(c *cli.Context) *pdist.Config {
	config, _ := c.App.Metadata[configKey].(*pdist.Config)
	return config
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// writeOutput runs write on the output named by path and closes it. The close
// error is returned when write succeeds.
func writeOutput(path string, write func(io.Writer) error) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if err := write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func numPoints(c *cli.Context) (int, error) {
	n := c.Int("points")
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativePoints, n)
	}
	return n, nil
}
