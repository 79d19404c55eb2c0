package tensor

import (
	"sort"

	"github.com/pkg/errors"
)

// Delete hides the given coordinates along axis.
//
// The result is a view: nothing is copied, and the remaining elements keep
// their relative order. Negative axis and indices are supported. Deleting an
// index twice is an error.
//
// Example:
//
//	t, _ := tensor.From([][]int{{1, 2, 3}, {4, 5, 6}})
//	d, _ := t.Delete(1, 1) // [[1, 3], [4, 6]]
func (t *Tensor) Delete(axis int, indices ...int) (*Tensor, error) {
	axis, err := t.normalizeAxis(axis)
	if err != nil {
		return nil, err
	}

	size := t.shape[axis]
	deleted := make([]int, len(indices))
	for i, idx := range indices {
		if idx < -size || idx >= size {
			return nil, indexError(axis, idx, size)
		}
		if idx < 0 {
			idx += size
		}
		deleted[i] = idx
	}
	sort.Ints(deleted)
	for i := 1; i < len(deleted); i++ {
		if deleted[i] == deleted[i-1] {
			return nil, errors.Wrapf(ErrShape,
				"index %d deleted twice in axis %d: each index can only be deleted once", deleted[i], axis)
		}
	}

	// shifted[j] is the first visible coordinate that lies past the j-th hole.
	for j := range deleted {
		deleted[j] -= j
	}

	shape := t.shape.Clone()
	shape[axis] -= len(deleted)
	return newView(shape, &view{
		kind:    deletionView,
		parent:  t,
		axis:    axis,
		shifted: deleted,
	}), nil
}

// underlying maps a visible coordinate on the deletion axis to the parent's
// coordinate: the c-th smallest coordinate that was not deleted.
func (v *view) underlying(c int) int {
	skipped := sort.Search(len(v.shifted), func(j int) bool {
		return v.shifted[j] > c
	})
	return c + skipped
}

// PermuteDims reorders the axes. perm[i] is the position that axis i moves
// to, so a tensor of shape (5, 6, 3) permuted by (1, 2, 0) has shape (3, 5, 6).
// perm must name every axis exactly once; negative entries are allowed.
func (t *Tensor) PermuteDims(perm ...int) (*Tensor, error) {
	dims := len(t.shape)
	if len(perm) != dims {
		return nil, errors.Wrapf(ErrArgumentCount,
			"%d permutation dims provided to tensor with %d dims", len(perm), dims)
	}

	normalized := make([]int, dims)
	present := make([]bool, dims)
	for i, p := range perm {
		a, err := t.normalizeAxis(p)
		if err != nil {
			return nil, err
		}
		if present[a] {
			return nil, errors.Wrapf(ErrShape, "dimension %d repeated in permutation %v", a, perm)
		}
		present[a] = true
		normalized[i] = a
	}
	return t.permuted(normalized), nil
}

// permuted builds a permutation view from an already validated permutation.
func (t *Tensor) permuted(perm []int) *Tensor {
	shape := make(Shape, len(perm))
	for i, p := range perm {
		shape[p] = t.shape[i]
	}
	return newView(shape, &view{
		kind:   permutationView,
		parent: t,
		perm:   perm,
	})
}

// identityPerm returns [0, 1, ..., n-1].
func identityPerm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

// SwapAxes exchanges two axes, so that for a = b.SwapAxes(1, 3),
// a.At(w, x, y, z) == b.At(w, z, y, x). Swapping an axis with itself returns
// the receiver.
func (t *Tensor) SwapAxes(axis1, axis2 int) (*Tensor, error) {
	a, err := t.normalizeAxis(axis1)
	if err != nil {
		return nil, err
	}
	b, err := t.normalizeAxis(axis2)
	if err != nil {
		return nil, err
	}
	if a == b {
		return t, nil
	}

	perm := identityPerm(len(t.shape))
	perm[a], perm[b] = b, a
	return t.permuted(perm), nil
}

// MoveAxis moves axis source to position destination, keeping the other axes
// in their original order. Moving an axis onto itself returns the receiver.
func (t *Tensor) MoveAxis(source, destination int) (*Tensor, error) {
	src, err := t.normalizeAxis(source)
	if err != nil {
		return nil, err
	}
	dst, err := t.normalizeAxis(destination)
	if err != nil {
		return nil, err
	}
	if src == dst {
		return t, nil
	}

	perm := identityPerm(len(t.shape))
	switch {
	case src < dst:
		for i := src + 1; i <= dst; i++ {
			perm[i] = i - 1
		}
	default:
		for i := dst; i < src; i++ {
			perm[i] = i + 1
		}
	}
	perm[src] = dst
	return t.permuted(perm), nil
}

// T swaps the last two axes, the matrix transpose for stacks of matrices.
// A one-dimensional tensor of length n becomes an (n, 1) column.
func (t *Tensor) T() (*Tensor, error) {
	if len(t.shape) == 1 {
		return t.Unsqueeze(1)
	}
	return t.SwapAxes(-1, -2)
}

// Unsqueeze inserts axes of extent one. Positions are given in terms of the
// resulting rank dims+len(axes) and may be negative. Repeated positions are
// inserted one after another, so on a 2-D tensor of shape (x, y),
// Unsqueeze(2, 2) gives (x, y, 1, 1) while Unsqueeze(3, 3) fails because the
// second axis would land at position 4.
func (t *Tensor) Unsqueeze(axes ...int) (*Tensor, error) {
	rank := len(t.shape) + len(axes)
	inserted := make([]int, len(axes))
	for i, a := range axes {
		if a < -rank || a >= rank {
			return nil, axisError(a, rank)
		}
		if a < 0 {
			a += rank
		}
		inserted[i] = a
	}
	sort.Ints(inserted)
	for i := 1; i < len(inserted); i++ {
		inserted[i] = max(inserted[i-1]+1, inserted[i])
	}
	if n := len(inserted); n > 0 && inserted[n-1] >= rank {
		return nil, axisError(inserted[n-1], rank)
	}

	shape := make(Shape, rank)
	next, src := 0, 0
	for i := range shape {
		if next < len(inserted) && inserted[next] == i {
			shape[i] = 1
			next++
			continue
		}
		shape[i] = t.shape[src]
		src++
	}
	return newView(shape, &view{
		kind:     insertionView,
		parent:   t,
		inserted: inserted,
	}), nil
}
