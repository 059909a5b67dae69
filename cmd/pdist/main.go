package main

import (
	"os"

	"github.com/marekgalovic/pdist/cmd/pdist/commands"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "pdist",
		Usage: "Compute and benchmark condensed pairwise distance vectors",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Usage: "Load PDIST_* variables from `FILE`"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: "log-format", Usage: "text or json"},
			&cli.StringFlag{Name: "metrics-file", Usage: "Write Prometheus metrics to `FILE` on exit"},
			&cli.IntFlag{Name: "dim", Aliases: []string{"d"}, Usage: "Point dimension, 0 infers it from the input"},
			&cli.StringFlag{Name: "metric", Aliases: []string{"m"}, Usage: "euclidean, manhattan or cosine"},
			&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "Parallel workers, 0 uses GOMAXPROCS"},
			&cli.StringFlag{Name: "schedule", Usage: "Parallel schedule: static, balanced or striped"},
			&cli.IntFlag{Name: "chunk-rows", Usage: "Rows per chunk for the striped schedule"},
			&cli.IntFlag{Name: "threshold", Usage: "Pair count below which the parallel kernel runs inline"},
		},
		Before: commands.Setup,
		After:  commands.Teardown,
		Commands: []*cli.Command{
			{
				Name:      "compute",
				Usage:     "Compute pairwise distances of the points in a file",
				ArgsUsage: "FILE",
				Action:    commands.Compute,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "kernel", Aliases: []string{"k"}, Usage: "Kernel to use"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output `FILE`, stdout by default"},
					&cli.BoolFlag{Name: "square", Usage: "Print the square distance matrix"},
					&cli.IntFlag{Name: "closest", Usage: "Print only the `K` closest pairs"},
					&cli.IntFlag{Name: "farthest", Usage: "Print only the `K` farthest pairs"},
				},
			},
			{
				Name:      "bench",
				Usage:     "Benchmark kernels on a file or on random points",
				ArgsUsage: "[FILE]",
				Action:    commands.Bench,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "kernel", Aliases: []string{"k"}, Usage: "Kernels to benchmark, all by default"},
					&cli.IntFlag{Name: "points", Aliases: []string{"n"}, Value: 2000, Usage: "Random points when no file is given"},
					&cli.Int64Flag{Name: "seed", Value: 1, Usage: "Random seed"},
					&cli.IntFlag{Name: "repeats", Aliases: []string{"r"}, Usage: "Timed runs per kernel"},
					&cli.IntFlag{Name: "warmup", Usage: "Untimed runs per kernel"},
					&cli.Float64Flag{Name: "tolerance", Usage: "Maximum absolute difference from the reference"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "table", Usage: "table or yaml"},
				},
			},
			{
				Name:   "generate",
				Usage:  "Write random points",
				Action: commands.Generate,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "points", Aliases: []string{"n"}, Value: 1000},
					&cli.Int64Flag{Name: "seed", Value: 1},
					&cli.Float64Flag{Name: "low", Value: -1},
					&cli.Float64Flag{Name: "high", Value: 1},
					&cli.StringFlag{Name: "distribution", Value: "uniform", Usage: "uniform over [low, high) or normal"},
					&cli.Float64Flag{Name: "mean", Value: 0},
					&cli.Float64Flag{Name: "stddev", Value: 1},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output `FILE`, stdout by default"},
				},
			},
			{
				Name:   "kernels",
				Usage:  "List available kernels",
				Action: commands.ListKernels,
			},
			{
				Name:   "sysinfo",
				Usage:  "Describe the host",
				Action: commands.SysInfo,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
