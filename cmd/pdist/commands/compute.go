package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/marekgalovic/pdist"
	"github.com/marekgalovic/pdist/pkg/kernel"
	"github.com/marekgalovic/pdist/pkg/math"
	"github.com/marekgalovic/pdist/pkg/points"

	"github.com/urfave/cli/v2"
)

func Compute(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("No input file provided")
	}
	config := getConfig(c)
	if c.IsSet("kernel") {
		config.Kernel = c.String("kernel")
	}

	pts, result, err := pdist.ComputeFile(config, c.Args().First())
	if err != nil {
		return err
	}

	n := pts.Rows()
	return writeOutput(c.String("output"), func(out io.Writer) error {
		switch {
		case c.Int("closest") > 0:
			return writePairs(out, kernel.ClosestPairs(result, n, c.Int("closest")))
		case c.Int("farthest") > 0:
			return writePairs(out, kernel.FarthestPairs(result, n, c.Int("farthest")))
		case c.Bool("square"):
			return writeSquare(out, result, n)
		}
		return points.WriteVector(out, result)
	})
}

func writeSquare(w io.Writer, result math.Vector, n int) error {
	square, err := kernel.SquareForm(result, n)
	if err != nil {
		return err
	}
	return points.Write(w, square)
}

func writePairs(w io.Writer, pairs []kernel.Pair) error {
	bw := bufio.NewWriter(w)
	for _, p := range pairs {
		if _, err := fmt.Fprintf(bw, "%d %d %v\n", p.I, p.J, p.Distance); err != nil {
			return err
		}
	}
	return bw.Flush()
}
