package commands

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/marekgalovic/pdist"
	"github.com/marekgalovic/pdist/pkg/bench"
	"github.com/marekgalovic/pdist/pkg/kernel"
	"github.com/marekgalovic/pdist/pkg/math"
	"github.com/marekgalovic/pdist/pkg/space"
	"github.com/marekgalovic/pdist/pkg/utils"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func benchPoints(c *cli.Context, config *pdist.Config) (*math.Matrix, error) {
	if c.NArg() > 0 {
		return pdist.LoadPoints(config, c.Args().First())
	}

	dim := config.Dimension
	if dim == 0 {
		dim = 3
	}
	n, err := numPoints(c)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(c.Int64("seed")))
	log.WithFields(log.Fields{"points": n, "dim": dim}).Info("Generating random points")
	return math.RandomUniformMatrix(rng, n, dim, -1, 1), nil
}

func Bench(c *cli.Context) error {
	config := getConfig(c)
	if c.IsSet("repeats") {
		config.Repeats = c.Int("repeats")
	}
	if c.IsSet("warmup") {
		config.Warmup = c.Int("warmup")
	}
	if c.IsSet("tolerance") {
		config.Tolerance = c.Float64("tolerance")
	}

	pts, err := benchPoints(c, config)
	if err != nil {
		return err
	}

	names := c.StringSlice("kernel")
	explicit := len(names) > 0
	if !explicit {
		names = kernel.Names()
	}
	kernels := make([]kernel.Kernel, 0, len(names))
	for _, name := range names {
		k, err := config.NewKernel(name, pts.Cols())
		if !explicit && errors.Is(err, space.ErrUnsupportedDimension) {
			log.WithField("kernel", name).Info("Skipping kernel for this dimension")
			continue
		} else if err != nil {
			return err
		}
		kernels = append(kernels, k)
	}
	reference, err := config.NewKernel(kernel.Reference, pts.Cols())
	if err != nil {
		return err
	}

	ctx, cancel := utils.InterruptContext(context.Background())
	defer cancel()

	report, err := bench.NewRunner(config.BenchConfig(), reference, kernels...).Run(ctx, pts)
	if err != nil {
		return err
	}

	switch c.String("format") {
	case "yaml":
		if err := report.RenderYAML(os.Stdout); err != nil {
			return err
		}
	case "table":
		report.RenderTable(os.Stdout)
	default:
		return fmt.Errorf("Unknown format %q", c.String("format"))
	}

	return report.Err()
}
