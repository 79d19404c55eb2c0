package tensor

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ToDense copies a two-dimensional tensor, leaf or view, into a gonum dense
// matrix. Elements are widened to float64.
func (t *Tensor) ToDense() (*mat.Dense, error) {
	if len(t.shape) != 2 {
		return nil, errors.Wrapf(ErrShape, "ToDense needs a 2-dimensional tensor, got shape %v", t.shape)
	}
	rows, cols := t.shape[0], t.shape[1]
	if rows == 0 || cols == 0 {
		return nil, errors.Wrapf(ErrShape, "gonum matrices cannot have zero-length dimensions, got shape %v", t.shape)
	}

	data := make([]float64, 0, t.size)
	for v := range t.Values() {
		data = append(data, float64(v))
	}
	return mat.NewDense(rows, cols, data), nil
}

// FromMatrix copies a gonum matrix into a new two-dimensional tensor.
// Elements are narrowed to float32.
func FromMatrix(m mat.Matrix) *Tensor {
	rows, cols := m.Dims()
	t := MustZeros(rows, cols)
	data := t.storage.data
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = float32(m.At(i, j))
		}
	}
	return t
}
