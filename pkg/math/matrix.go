package math

import (
	"errors"
)

var (
	ErrRaggedRows error = errors.New("Rows have different lengths")
)

// Matrix is a dense row-major matrix of float64 values. Rows returned by Row
// share storage with the matrix and must not be modified.
type Matrix struct {
	rows int
	cols int
	data []float64
}

func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

func MatrixFromRows(rows []Vector) (*Matrix, error) {
	if len(rows) == 0 {
		return NewMatrix(0, 0), nil
	}

	cols := len(rows[0])
	m := NewMatrix(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, ErrRaggedRows
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

func MustMatrixFromRows(rows []Vector) *Matrix {
	m, err := MatrixFromRows(rows)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Matrix) Rows() int { return m.rows }

func (m *Matrix) Cols() int { return m.cols }

func (m *Matrix) Row(i int) Vector {
	return m.data[i*m.cols : (i+1)*m.cols : (i+1)*m.cols]
}

func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.cols+j]
}

func (m *Matrix) Set(i, j int, v float64) {
	m.data[i*m.cols+j] = v
}

// Raw exposes the backing row-major storage.
func (m *Matrix) Raw() []float64 { return m.data }
