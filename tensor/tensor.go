// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndview/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// Type aliases for public API

// Tensor is a dense row-major float32 tensor, either a leaf owning its
// buffer or a zero-copy view onto a parent.
//
// Example:
//
//	x, _ := tensor.From([][]int{{1, 2, 3}, {4, 5, 6}})
//	tt, _ := x.T()            // shape (3, 2), shares x's buffer
//	v, _ := tt.Get(2, 1)      // 6
type Tensor = tensor.Tensor

// Shape represents the extents of a tensor's axes.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Generator is a seeded source for Rand and Randn.
// A nil *Generator draws from the process-wide source.
type Generator = tensor.Generator

// PrintOptions controls Tensor.Format.
type PrintOptions = tensor.PrintOptions

// IndexError describes an out-of-range axis or index.
// It matches ErrIndexOutOfBounds with errors.Is.
type IndexError = tensor.IndexError

// Number is the constraint accepted by FromSlice.
type Number = tensor.Number

// Errors returned by tensor operations. Match them with errors.Is.
var (
	ErrArgumentCount    = tensor.ErrArgumentCount
	ErrIndexOutOfBounds = tensor.ErrIndexOutOfBounds
	ErrShape            = tensor.ErrShape
	ErrEmptyReduction   = tensor.ErrEmptyReduction
	ErrNilInput         = tensor.ErrNilInput
)

// NewGenerator returns a generator with a deterministic stream for seed.
func NewGenerator(seed uint64) *Generator {
	return tensor.NewGenerator(seed)
}

// DefaultPrintOptions returns the options used by Tensor.String.
func DefaultPrintOptions() PrintOptions {
	return tensor.DefaultPrintOptions()
}

// Creation functions

// Empty returns a new tensor of shape (0).
func Empty() *Tensor {
	return tensor.Empty()
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x, err := tensor.Zeros(2, 3)
func Zeros(shape ...int) (*Tensor, error) {
	return tensor.Zeros(shape...)
}

// MustZeros is like Zeros but panics on an invalid shape.
func MustZeros(shape ...int) *Tensor {
	return tensor.MustZeros(shape...)
}

// ZerosLike creates a zero tensor with the shape of t.
func ZerosLike(t *Tensor) *Tensor {
	return tensor.ZerosLike(t)
}

// Ones creates a tensor filled with ones.
func Ones(shape ...int) (*Tensor, error) {
	return tensor.Ones(shape...)
}

// OnesLike creates a tensor of ones with the shape of t.
func OnesLike(t *Tensor) *Tensor {
	return tensor.OnesLike(t)
}

// Full creates a tensor filled with value.
//
// Example:
//
//	x, err := tensor.Full(3.14, 2, 3)
func Full(value float32, shape ...int) (*Tensor, error) {
	return tensor.Full(value, shape...)
}

// Rand creates a tensor of values drawn uniformly from [0, 1).
//
// Example:
//
//	x, err := tensor.Rand(tensor.NewGenerator(42), 2, 3)
func Rand(g *Generator, shape ...int) (*Tensor, error) {
	return tensor.Rand(g, shape...)
}

// RandLike is Rand with the shape of t.
func RandLike(g *Generator, t *Tensor) *Tensor {
	return tensor.RandLike(g, t)
}

// Randn creates a tensor of values drawn from the standard normal N(0, 1).
func Randn(g *Generator, shape ...int) (*Tensor, error) {
	return tensor.Randn(g, shape...)
}

// RandnLike is Randn with the shape of t.
func RandnLike(g *Generator, t *Tensor) *Tensor {
	return tensor.RandnLike(g, t)
}

// Arange creates a 1D tensor with values start, start+step, ... up to but
// excluding stop.
//
// Example:
//
//	x, err := tensor.Arange(0, 1, 0.25) // [0.0, 0.25, 0.5, 0.75]
func Arange(start, stop, step float32) (*Tensor, error) {
	return tensor.Arange(start, stop, step)
}

// ArangeN creates the 1D tensor [0, 1, ..., stop-1].
func ArangeN(stop int) *Tensor {
	return tensor.ArangeN(stop)
}

// ArangeInt creates the 1D tensor [start, start+1, ..., stop-1].
func ArangeInt(start, stop int) *Tensor {
	return tensor.ArangeInt(start, stop)
}

// From builds a tensor from a scalar or from nested slices and arrays of
// numbers and bools. Nested sequences must be rectangular.
//
// Example:
//
//	x, err := tensor.From([][]any{{1, 2.5}, {true, 'a'}})
func From(value any) (*Tensor, error) {
	return tensor.From(value)
}

// FromSlice creates a tensor from a flat Go slice and a shape.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, 2, 3)
func FromSlice[T Number](data []T, shape ...int) (*Tensor, error) {
	return tensor.FromSlice(data, shape...)
}

// FromMatrix copies a gonum matrix into a new 2D tensor.
func FromMatrix(m mat.Matrix) *Tensor {
	return tensor.FromMatrix(m)
}
