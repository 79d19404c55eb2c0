package tensor

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Number is the set of element types accepted by FromSlice.
type Number interface {
	constraints.Integer | constraints.Float
}

// Empty returns a one-dimensional tensor with zero elements.
func Empty() *Tensor {
	shape := Shape{0}
	return newLeaf(shape, newStorage(shape))
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t, err := tensor.Zeros(3, 4)
func Zeros(shape ...int) (*Tensor, error) {
	s := Shape(shape).Clone()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return newLeaf(s, newStorage(s)), nil
}

// MustZeros is like Zeros but panics on an invalid shape.
func MustZeros(shape ...int) *Tensor {
	t, err := Zeros(shape...)
	if err != nil {
		panic(err)
	}
	return t
}

// ZerosLike creates a zero-filled tensor with the shape of t.
func ZerosLike(t *Tensor) *Tensor {
	return MustZeros(t.shape...)
}

// Ones creates a tensor filled with ones.
func Ones(shape ...int) (*Tensor, error) {
	return Full(1, shape...)
}

// OnesLike creates a tensor of ones with the shape of t.
func OnesLike(t *Tensor) *Tensor {
	out, _ := Full(1, t.shape...)
	return out
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t, err := tensor.Full(3.14, 3, 3)
func Full(value float32, shape ...int) (*Tensor, error) {
	t, err := Zeros(shape...)
	if err != nil {
		return nil, err
	}
	data := t.storage.data
	for i := range data {
		data[i] = value
	}
	return t, nil
}

// Rand creates a tensor with values drawn uniformly from [0, 1) using g.
//
// Example:
//
//	t, err := tensor.Rand(tensor.NewGenerator(7), 10, 10)
func Rand(g *Generator, shape ...int) (*Tensor, error) {
	t, err := Zeros(shape...)
	if err != nil {
		return nil, err
	}
	data := t.storage.data
	for i := range data {
		data[i] = g.Uniform()
	}
	return t, nil
}

// RandLike creates a uniform random tensor with the shape of t.
func RandLike(g *Generator, t *Tensor) *Tensor {
	out, _ := Rand(g, t.shape...)
	return out
}

// Randn creates a tensor with values drawn from the standard normal
// distribution using g.
func Randn(g *Generator, shape ...int) (*Tensor, error) {
	t, err := Zeros(shape...)
	if err != nil {
		return nil, err
	}
	data := t.storage.data
	for i := range data {
		data[i] = g.Normal()
	}
	return t, nil
}

// RandnLike creates a standard normal random tensor with the shape of t.
func RandnLike(g *Generator, t *Tensor) *Tensor {
	out, _ := Randn(g, t.shape...)
	return out
}

// Arange returns a 1-D tensor of evenly spaced values start, start+step, ...
// in the half-open interval [start, stop).
//
// If the sign of stop-start differs from the sign of step the result is
// empty. A zero step is an error.
//
// Example:
//
//	t, _ := tensor.Arange(8, 0, -2) // [8, 6, 4, 2]
func Arange(start, stop, step float32) (*Tensor, error) {
	if step == 0 {
		return nil, errors.Wrapf(ErrShape, "arange step must be non-zero, got start=%v stop=%v step=%v", start, stop, step)
	}
	n := math.Ceil(float64((stop - start) / step))
	if !(n > 0) {
		return Empty(), nil
	}
	if n > math.MaxInt32 {
		return nil, errors.Wrapf(ErrShape, "arange of %v elements is too large", n)
	}

	t := MustZeros(int(n))
	data := t.storage.data
	for i := range data {
		data[i] = start + step*float32(i)
	}
	return t, nil
}

// ArangeN returns the integers [0, stop) as a 1-D tensor.
func ArangeN(stop int) *Tensor {
	return ArangeInt(0, stop)
}

// ArangeInt returns the integers [start, stop) as a 1-D tensor.
func ArangeInt(start, stop int) *Tensor {
	if stop <= start {
		return Empty()
	}
	t := MustZeros(stop - start)
	data := t.storage.data
	for i := range data {
		data[i] = float32(start + i)
	}
	return t
}

// FromSlice creates a tensor of the given shape from flat row-major data.
// The values are converted to float32 and copied.
//
// Example:
//
//	t, err := tensor.FromSlice([]int{1, 2, 3, 4, 5, 6}, 2, 3)
func FromSlice[T Number](data []T, shape ...int) (*Tensor, error) {
	s := Shape(shape).Clone()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.NumElements() != len(data) {
		return nil, errors.Wrapf(ErrShape, "shape %v requires %d elements, but got %d", s, s.NumElements(), len(data))
	}

	buf := make([]float32, len(data))
	for i, v := range data {
		buf[i] = float32(v)
	}
	return newLeaf(s, wrapStorage(s, buf)), nil
}
