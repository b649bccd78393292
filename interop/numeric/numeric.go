// Package numeric turns all-numeric tables into gorgonia tensors and gonum
// matrices.
package numeric

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"

	"frames/table"
)

var (
	ErrNoData     = errors.New("table has no cells")
	ErrNotNumeric = errors.New("column is not numeric")
)

// Tensor packs a numeric table into a rows x columns float64 tensor, row
// major.
func Tensor(t *table.Table) (*tensor.Dense, error) {
	if err := check(t); err != nil {
		return nil, err
	}
	rows, cols := t.Dims()

	b := make([]float64, rows*cols)
	b = b[:0]
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			b = append(b, toFloat(t.Value(i, j)))
		}
	}
	return tensor.New(tensor.WithShape(rows, cols), tensor.WithBacking(b)), nil
}

// Matrix exposes a numeric table as a gonum matrix without copying it.
func Matrix(t *table.Table) (mat.Matrix, error) {
	if err := check(t); err != nil {
		return nil, err
	}
	return matrix{t}, nil
}

type matrix struct {
	t *table.Table
}

func (m matrix) Dims() (int, int) {
	return m.t.Dims()
}

func (m matrix) At(i, j int) float64 {
	return toFloat(m.t.Value(i, j))
}

func (m matrix) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// check fails unless every cell of t is a present Int or Float value.
func check(t *table.Table) error {
	nrow, ncol := t.Dims()
	if nrow == 0 || ncol == 0 {
		return errors.Wrapf(ErrNoData, "%dx%d", nrow, ncol)
	}
	for j, f := range t.Schema() {
		if !f.Kind.Numeric() {
			return errors.Wrapf(ErrNotNumeric, "%q is %s", f.Name, f.Kind)
		}
		for i := 0; i < nrow; i++ {
			if t.Value(i, j) == nil {
				return errors.Wrapf(ErrNotNumeric, "%q row %d is missing", f.Name, i)
			}
		}
	}
	return nil
}

func toFloat(v interface{}) float64 {
	switch val := v.(type) {
	case int:
		return float64(val)
	case float64:
		return val
	}
	return 0
}
