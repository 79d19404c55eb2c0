package tensor

import "iter"

// eachIndex calls fn with every coordinate tuple in row-major order together
// with its flat index. The coords slice is reused between calls.
// Iteration stops when fn returns false.
func (t *Tensor) eachIndex(fn func(flat int, coords []int) bool) {
	if t.size == 0 {
		return
	}
	dims := len(t.shape)
	coords := make([]int, dims)
	for flat := 0; ; flat++ {
		if !fn(flat, coords) {
			return
		}
		i := dims - 1
		for i >= 0 {
			coords[i]++
			if coords[i] < t.shape[i] {
				break
			}
			coords[i] = 0
			i--
		}
		if i < 0 {
			return
		}
	}
}

// Indices returns an iterator over every valid coordinate tuple in row-major
// order. Each yielded slice is a fresh copy.
func (t *Tensor) Indices() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		t.eachIndex(func(_ int, coords []int) bool {
			c := make([]int, len(coords))
			copy(c, coords)
			return yield(c)
		})
	}
}

// All returns an iterator over (flat index, value) pairs in row-major order.
func (t *Tensor) All() iter.Seq2[int, float32] {
	return func(yield func(int, float32) bool) {
		t.eachIndex(func(flat int, coords []int) bool {
			return yield(flat, t.get(coords))
		})
	}
}

// Values returns an iterator over the elements in row-major order.
func (t *Tensor) Values() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		t.eachIndex(func(_ int, coords []int) bool {
			return yield(t.get(coords))
		})
	}
}
