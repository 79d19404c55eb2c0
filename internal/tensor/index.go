package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// normalizeAxis maps an axis in [-dims, dims) to [0, dims).
func (t *Tensor) normalizeAxis(axis int) (int, error) {
	dims := len(t.shape)
	if axis < -dims || axis >= dims {
		return 0, axisError(axis, dims)
	}
	if axis < 0 {
		axis += dims
	}
	return axis, nil
}

// coords validates caller indices and returns non-negative full-rank
// coordinates. When exactly one index is given to a tensor of rank other
// than 1, it is a flat row-major index into the whole tensor.
// The input slice is never modified.
func (t *Tensor) coords(indices []int) ([]int, error) {
	dims := len(t.shape)
	if len(indices) == 1 && dims != 1 {
		return t.unravel(indices[0])
	}

	if len(indices) > dims {
		return nil, errors.Wrapf(ErrArgumentCount,
			"too many indices supplied: tensor is %d-dimensional but %d were indexed", dims, len(indices))
	}
	if len(indices) < dims {
		return nil, errors.Wrapf(ErrArgumentCount,
			"not enough indices supplied: tensor is %d-dimensional but %d were indexed", dims, len(indices))
	}

	out := make([]int, dims)
	for i, idx := range indices {
		size := t.shape[i]
		if idx < -size || idx >= size {
			return nil, indexError(i, idx, size)
		}
		if idx < 0 {
			idx += size
		}
		out[i] = idx
	}
	return out, nil
}

// unravel converts a flat index in [-size, size) into coordinates.
func (t *Tensor) unravel(flat int) ([]int, error) {
	if flat < -t.size || flat >= t.size {
		return nil, flatIndexError(flat, t.size)
	}
	if flat < 0 {
		flat += t.size
	}
	return t.shape.Unravel(flat), nil
}

// Get returns the element at the given indices.
//
// Negative indices count from the end of their axis. A single index on a
// tensor with more than one axis is treated as a flat row-major index.
func (t *Tensor) Get(indices ...int) (float32, error) {
	c, err := t.coords(indices)
	if err != nil {
		return 0, err
	}
	return t.get(c), nil
}

// Set stores value at the given indices, using the same rules as Get.
// Writing through a view writes the underlying leaf.
func (t *Tensor) Set(value float32, indices ...int) error {
	c, err := t.coords(indices)
	if err != nil {
		return err
	}
	t.set(value, c)
	return nil
}

// At returns the element at the given indices.
// Panics if the indices are invalid.
//
// Example:
//
//	t := tensor.MustZeros(3, 4)
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor) At(indices ...int) float32 {
	v, err := t.Get(indices...)
	if err != nil {
		panic(fmt.Sprintf("At: %v", err))
	}
	return v
}

// SetAt stores value at the given indices and returns the tensor for chaining.
// Panics if the indices are invalid.
func (t *Tensor) SetAt(value float32, indices ...int) *Tensor {
	if err := t.Set(value, indices...); err != nil {
		panic(fmt.Sprintf("SetAt: %v", err))
	}
	return t
}
