package points

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/marekgalovic/pdist/pkg/math"
)

var (
	ErrMalformedInput error = errors.New("Malformed input")
	ErrEmptyInput     error = errors.New("Input has no points")
)

const DefaultDimension = 3

const maxLineSize = 16 * 1024 * 1024

// Options
type Option interface {
	apply(*loadConfig)
}

type loadOption struct {
	applyFunc func(*loadConfig)
}

func (opt *loadOption) apply(config *loadConfig) {
	opt.applyFunc(config)
}

// Dimension sets the expected number of columns. Zero infers it from the
// first row.
func Dimension(value int) Option {
	return &loadOption{func(config *loadConfig) {
		config.dimension = value
	}}
}

func Comment(value string) Option {
	return &loadOption{func(config *loadConfig) {
		config.comment = value
	}}
}

type loadConfig struct {
	dimension int
	comment   string
}

func newLoadConfig(options []Option) loadConfig {
	config := loadConfig{
		dimension: DefaultDimension,
		comment:   "#",
	}
	for _, option := range options {
		option.apply(&config)
	}
	return config
}

// Load parses one point per line, coordinates separated by whitespace.
// Everything after the comment marker is ignored and blank lines are skipped. When no points are found the returned
// matrix has zero rows and the error is ErrEmptyInput.
func Load(r io.Reader, options ...Option) (*math.Matrix, error) {
	config := newLoadConfig(options)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	dim := config.dimension
	data := make([]float64, 0)
	rows := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if config.comment != "" {
			if idx := strings.Index(line, config.comment); idx >= 0 {
				line = line[:idx]
			}
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if dim == 0 {
			dim = len(fields)
		}
		if len(fields) != dim {
			return nil, fmt.Errorf("%w: line %d: expected %d columns, got %d", ErrMalformedInput, lineNo, dim, len(fields))
		}

		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not a number", ErrMalformedInput, lineNo, field)
			}
			if !math.IsFinite(v) {
				return nil, fmt.Errorf("%w: line %d: %q is not finite", ErrMalformedInput, lineNo, field)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := scanner.Err(); errors.Is(err, bufio.ErrTooLong) {
		return nil, fmt.Errorf("%w: line %d: longer than %d bytes", ErrMalformedInput, lineNo+1, maxLineSize)
	} else if err != nil {
		return nil, err
	}

	m := math.NewMatrix(rows, dim)
	copy(m.Raw(), data)
	if rows == 0 {
		return m, ErrEmptyInput
	}
	return m, nil
}

func LoadFile(path string, options ...Option) (*math.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Load(f, options...)
	if err != nil && m == nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, err
}
