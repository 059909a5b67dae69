package kernel

import (
	"fmt"

	"github.com/marekgalovic/pdist/pkg/math"
	"github.com/marekgalovic/pdist/pkg/space"

	"golang.org/x/sync/errgroup"
)

type parallelKernel struct {
	space  space.Space
	config kernelConfig
}

// NewParallel returns a kernel splitting the rows of the upper triangle
// between workers. Each worker writes only the output slots of its own
// blocks, so no locking is needed beyond the final join.
func NewParallel(s space.Space, options ...Option) Kernel {
	return &parallelKernel{
		space:  s,
		config: newKernelConfig(options),
	}
}

func (this *parallelKernel) Name() string {
	return fmt.Sprintf("parallel/%s", this.space.Impl())
}

func (this *parallelKernel) Compute(points *math.Matrix) math.Vector {
	n := points.Rows()
	result := make(math.Vector, PairCount(n))
	if len(result) < this.config.threshold || this.config.workers == 1 {
		computeBlock(this.space, points, Block{0, n}, result)
		return result
	}

	plan := NewPlan(n, this.config.workers, this.config.schedule, this.config.chunkRows)

	var g errgroup.Group
	for _, blocks := range plan {
		if len(blocks) == 0 {
			continue
		}
		blocks := blocks
		g.Go(func() error {
			for _, b := range blocks {
				lo, hi := b.Slots(n)
				computeBlock(this.space, points, b, result[lo:hi:hi])
			}
			return nil
		})
	}
	g.Wait()

	return result
}
