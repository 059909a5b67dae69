package kernel

import (
	"errors"
	"fmt"
	"sort"

	"github.com/marekgalovic/pdist/pkg/space"
)

var (
	ErrUnknownKernel error = errors.New("Unknown kernel")
)

// Reference is the kernel other kernels are verified against.
const Reference = "native"

type factory func(dim int, config kernelConfig, options []Option) (Kernel, error)

func sequentialFactory(impl space.Impl) factory {
	return func(dim int, config kernelConfig, _ []Option) (Kernel, error) {
		s, err := space.New(config.metric, impl, dim)
		if err != nil {
			return nil, err
		}
		return NewSequential(s), nil
	}
}

var registry = map[string]factory{
	"native":   sequentialFactory(space.Native),
	"unrolled": sequentialFactory(space.Unrolled),
	"gonum":    sequentialFactory(space.Gonum),
	"parallel": func(dim int, config kernelConfig, options []Option) (Kernel, error) {
		s, err := space.New(config.metric, space.Auto, dim)
		if err != nil {
			return nil, err
		}
		return NewParallel(s, options...), nil
	},
}

// Names lists registered kernel names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named kernel for points of dimension dim.
func New(name string, dim int, options ...Option) (Kernel, error) {
	f, exists := registry[name]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
	}

	return f(dim, newKernelConfig(options), options)
}
