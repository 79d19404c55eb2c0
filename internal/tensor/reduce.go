package tensor

import (
	"math"

	"github.com/pkg/errors"
)

// ReduceInit folds fn over the elements in row-major order, starting from
// init. The first argument of fn is the accumulator. An empty tensor
// returns init.
//
// Example:
//
//	prod := t.ReduceInit(func(acc, x float32) float32 { return acc * x }, 1)
func (t *Tensor) ReduceInit(fn func(acc, x float32) float32, init float32) float32 {
	acc := init
	for v := range t.Values() {
		acc = fn(acc, v)
	}
	return acc
}

// Reduce folds fn over the elements in row-major order, seeded with the first
// element. Reducing an empty tensor returns ErrEmptyReduction; use ReduceInit
// to supply a default.
func (t *Tensor) Reduce(fn func(acc, x float32) float32) (float32, error) {
	if t.size == 0 {
		return 0, errors.Wrap(ErrEmptyReduction, "cannot reduce an empty tensor without an initial value")
	}
	var acc float32
	first := true
	for v := range t.Values() {
		if first {
			acc, first = v, false
			continue
		}
		acc = fn(acc, v)
	}
	return acc, nil
}

// Min returns the smallest element. NaN propagates: if any element is NaN
// the result is NaN.
func (t *Tensor) Min() (float32, error) {
	if t.size == 0 {
		return 0, errors.Wrap(ErrEmptyReduction, "cannot perform min on an empty tensor")
	}
	return t.Reduce(func(a, b float32) float32 { return min(a, b) })
}

// Max returns the largest element. NaN propagates: if any element is NaN
// the result is NaN.
func (t *Tensor) Max() (float32, error) {
	if t.size == 0 {
		return 0, errors.Wrap(ErrEmptyReduction, "cannot perform max on an empty tensor")
	}
	return t.Reduce(func(a, b float32) float32 { return max(a, b) })
}

// ArgMin returns the flat index of the first minimum. A NaN counts as the
// minimum, so the index of the first NaN is returned if there is one.
func (t *Tensor) ArgMin() (int, error) {
	return t.argExtreme("argmin", func(v, best float32) bool { return v < best })
}

// ArgMax returns the flat index of the first maximum. A NaN counts as the
// maximum, so the index of the first NaN is returned if there is one.
func (t *Tensor) ArgMax() (int, error) {
	return t.argExtreme("argmax", func(v, best float32) bool { return v > best })
}

func (t *Tensor) argExtreme(name string, better func(v, best float32) bool) (int, error) {
	if t.size == 0 {
		return 0, errors.Wrapf(ErrEmptyReduction, "cannot perform %s on an empty tensor", name)
	}
	bestIndex := -1
	var best float32
	for i, v := range t.All() {
		if isNaN(v) {
			return i, nil
		}
		if bestIndex < 0 || better(v, best) {
			best, bestIndex = v, i
		}
	}
	return bestIndex, nil
}

// NaNMin returns the smallest element ignoring NaN. If every element is NaN
// the result is NaN.
func (t *Tensor) NaNMin() (float32, error) {
	return t.Reduce(skipNaN(func(a, b float32) float32 { return min(a, b) }))
}

// NaNMax returns the largest element ignoring NaN. If every element is NaN
// the result is NaN.
func (t *Tensor) NaNMax() (float32, error) {
	return t.Reduce(skipNaN(func(a, b float32) float32 { return max(a, b) }))
}

func skipNaN(fn func(a, b float32) float32) func(a, b float32) float32 {
	return func(a, b float32) float32 {
		if isNaN(b) {
			return a
		}
		if isNaN(a) {
			return b
		}
		return fn(a, b)
	}
}

// Sum returns the sum of all elements; 0 for an empty tensor.
func (t *Tensor) Sum() float32 {
	return t.ReduceInit(func(acc, x float32) float32 { return acc + x }, 0)
}

// Mean returns the arithmetic mean of all elements.
func (t *Tensor) Mean() (float32, error) {
	if t.size == 0 {
		return 0, errors.Wrap(ErrEmptyReduction, "cannot perform mean on an empty tensor")
	}
	return t.Sum() / float32(t.size), nil
}

// Apply returns a new tensor of the same shape with fn applied to every
// element. The receiver is not modified.
func (t *Tensor) Apply(fn func(x float32) float32) *Tensor {
	return t.ApplyIndexed(func(_ int, x float32) float32 { return fn(x) })
}

// ApplyIndexed is like Apply, but fn also receives the element's flat
// row-major index.
func (t *Tensor) ApplyIndexed(fn func(i int, x float32) float32) *Tensor {
	shape := t.shape.Clone()
	buf := make([]float32, t.size)
	for i, v := range t.All() {
		buf[i] = fn(i, v)
	}
	return newLeaf(shape, wrapStorage(shape, buf))
}

// Abs returns the element-wise absolute value.
func (t *Tensor) Abs() *Tensor {
	return t.Apply(func(x float32) float32 {
		return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
	})
}

// NaNToNum returns a copy with NaN and infinities replaced by finite values.
//
// The optional replacements are, in order:
//
//	()                     NaN -> 0,   +Inf -> MaxFloat32, -Inf -> -MaxFloat32
//	(nan)                  NaN -> nan, +Inf -> MaxFloat32, -Inf -> -MaxFloat32
//	(nan, inf)             NaN -> nan, +Inf -> inf,        -Inf -> -inf
//	(nan, posInf, negInf)  NaN -> nan, +Inf -> posInf,     -Inf -> negInf
func (t *Tensor) NaNToNum(replacements ...float32) (*Tensor, error) {
	nan, posInf, negInf := float32(0), float32(math.MaxFloat32), float32(-math.MaxFloat32)
	switch len(replacements) {
	case 0:
	case 1:
		nan = replacements[0]
	case 2:
		nan, posInf, negInf = replacements[0], replacements[1], -replacements[1]
	case 3:
		nan, posInf, negInf = replacements[0], replacements[1], replacements[2]
	default:
		return nil, errors.Wrapf(ErrArgumentCount, "NaNToNum takes at most 3 replacement values, got %d", len(replacements))
	}

	return t.Apply(func(x float32) float32 {
		switch {
		case isNaN(x):
			return nan
		case math.IsInf(float64(x), 1):
			return posInf
		case math.IsInf(float64(x), -1):
			return negInf
		default:
			return x
		}
	}), nil
}

func isNaN(f float32) bool {
	return f != f
}
