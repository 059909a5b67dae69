package space

import (
	"errors"
	"fmt"
	"strings"

	"github.com/marekgalovic/pdist/pkg/math"
)

var (
	ErrUnsupportedDimension error = errors.New("Implementation does not support this dimension")
	ErrUnknownImpl          error = errors.New("Unknown space implementation")
	ErrUnknownMetric        error = errors.New("Unknown metric")
)

var metricNames = [...]string{
	"euclidean",
	"manhattan",
	"cosine",
}

type Metric int

const (
	Euclidean Metric = iota
	Manhattan
	Cosine
)

func (m Metric) String() string {
	return metricNames[m]
}

func ParseMetric(name string) (Metric, error) {
	for i, n := range metricNames {
		if strings.EqualFold(n, name) {
			return Metric(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
}

var implNames = [...]string{
	"auto",
	"native",
	"unrolled",
	"gonum",
}

type Impl int

const (
	Auto Impl = iota
	Native
	Unrolled
	Gonum
)

func (i Impl) String() string {
	return implNames[i]
}

func ParseImpl(name string) (Impl, error) {
	for i, n := range implNames {
		if strings.EqualFold(n, name) {
			return Impl(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownImpl, name)
}

type SpaceImpl interface {
	EuclideanDistance(math.Vector, math.Vector) float64
	ManhattanDistance(math.Vector, math.Vector) float64
	CosineDistance(math.Vector, math.Vector) float64
}

type Space interface {
	Distance(math.Vector, math.Vector) float64
	Metric() Metric
	Impl() Impl
}

type space struct {
	impl     SpaceImpl
	implKind Impl
}

func (this space) Impl() Impl { return this.implKind }

// resolveImpl picks the unrolled implementation for 3-D points and the
// native loop otherwise.
func resolveImpl(impl Impl, dim int) (Impl, error) {
	if impl < Auto || impl > Gonum {
		return 0, ErrUnknownImpl
	}
	if impl == Auto {
		if dim == unrolledDim {
			return Unrolled, nil
		}
		return Native, nil
	}
	if impl == Unrolled && dim != unrolledDim {
		return 0, fmt.Errorf("%w: %s requires %d, got %d", ErrUnsupportedDimension, impl, unrolledDim, dim)
	}
	return impl, nil
}

func newSpace(impl Impl, dim int) (space, error) {
	resolved, err := resolveImpl(impl, dim)
	if err != nil {
		return space{}, err
	}

	switch resolved {
	case Unrolled:
		return space{impl: unrolledSpaceImpl{}, implKind: Unrolled}, nil
	case Gonum:
		return space{impl: gonumSpaceImpl{}, implKind: Gonum}, nil
	default:
		return space{impl: nativeSpaceImpl{}, implKind: Native}, nil
	}
}

type euclideanSpace struct{ space }

type manhattanSpace struct{ space }

type cosineSpace struct{ space }

// New returns a space measuring metric between points of dimension dim.
func New(metric Metric, impl Impl, dim int) (Space, error) {
	s, err := newSpace(impl, dim)
	if err != nil {
		return nil, err
	}

	switch metric {
	case Euclidean:
		return &euclideanSpace{s}, nil
	case Manhattan:
		return &manhattanSpace{s}, nil
	case Cosine:
		return &cosineSpace{s}, nil
	}
	return nil, ErrUnknownMetric
}

func mustNew(metric Metric, dim int) Space {
	s, err := New(metric, Auto, dim)
	if err != nil {
		panic(err)
	}
	return s
}

func NewEuclidean(dim int) Space {
	return mustNew(Euclidean, dim)
}

func (this *euclideanSpace) Distance(a, b math.Vector) float64 {
	return this.impl.EuclideanDistance(a, b)
}

func (this *euclideanSpace) Metric() Metric { return Euclidean }

func NewManhattan(dim int) Space {
	return mustNew(Manhattan, dim)
}

func (this *manhattanSpace) Distance(a, b math.Vector) float64 {
	return this.impl.ManhattanDistance(a, b)
}

func (this *manhattanSpace) Metric() Metric { return Manhattan }

func NewCosine(dim int) Space {
	return mustNew(Cosine, dim)
}

func (this *cosineSpace) Distance(a, b math.Vector) float64 {
	return this.impl.CosineDistance(a, b)
}

func (this *cosineSpace) Metric() Metric { return Cosine }
