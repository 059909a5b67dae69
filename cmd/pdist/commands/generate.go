package commands

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/marekgalovic/pdist/pkg/math"
	"github.com/marekgalovic/pdist/pkg/points"

	"github.com/urfave/cli/v2"
)

func Generate(c *cli.Context) error {
	config := getConfig(c)
	dim := config.Dimension
	if dim == 0 {
		dim = points.DefaultDimension
	}
	n, err := numPoints(c)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(c.Int64("seed")))
	var m *math.Matrix
	switch c.String("distribution") {
	case "uniform":
		m = math.RandomUniformMatrix(rng, n, dim, c.Float64("low"), c.Float64("high"))
	case "normal":
		m = math.RandomNormalMatrix(rng, n, dim, c.Float64("mean"), c.Float64("stddev"))
	default:
		return fmt.Errorf("Unknown distribution %q", c.String("distribution"))
	}

	return writeOutput(c.String("output"), func(out io.Writer) error {
		return points.Write(out, m)
	})
}
