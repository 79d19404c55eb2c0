package tensor

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has at least one axis and no negative extents.
// Zero extents are allowed. The product of the non-zero extents must fit in an
// int so that sizes and strides cannot wrap.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return errors.Wrap(ErrShape, "tensor must have at least one dimension")
	}
	n := 1
	for _, dim := range s {
		if dim < 0 {
			return errors.Wrapf(ErrShape, "cannot create tensor of shape %v with negative dimensions", s)
		}
		if dim == 0 {
			continue
		}
		if n > math.MaxInt/dim {
			return errors.Wrapf(ErrShape, "shape %v has too many elements", s)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// FlatIndex converts valid, non-negative coordinates into a row-major linear index.
func (s Shape) FlatIndex(coords []int) int {
	flat := 0
	for i, c := range coords {
		flat = flat*s[i] + c
	}
	return flat
}

// Unravel is the inverse of FlatIndex. The flat index must be in [0, NumElements()).
func (s Shape) Unravel(flat int) []int {
	coords := make([]int, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		coords[i] = flat % s[i]
		flat /= s[i]
	}
	return coords
}

// String renders the shape as a tuple, e.g. (2, 3).
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, dim := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(dim))
	}
	b.WriteByte(')')
	return b.String()
}
