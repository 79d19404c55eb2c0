// Package tensor implements dense row-major float32 tensors with zero-copy views.
//
// A Tensor is either a leaf that owns its buffer, or a view that remaps its
// coordinates onto a parent tensor. Views are produced by Delete, PermuteDims,
// SwapAxes, MoveAxis, T and Unsqueeze; they never copy data, so writes through
// a view are visible through the leaf and every other view sharing it.
//
// Tensors are not safe for concurrent use.
package tensor

// viewKind tags the coordinate remap a view applies.
type viewKind uint8

const (
	deletionView viewKind = iota
	permutationView
	insertionView
)

// String returns a human-readable view kind name.
func (k viewKind) String() string {
	switch k {
	case deletionView:
		return "deletion"
	case permutationView:
		return "permutation"
	case insertionView:
		return "insertion"
	default:
		return "unknown"
	}
}

// view holds the parent and remap parameters of a view tensor.
// Only the fields used by kind are set.
type view struct {
	kind   viewKind
	parent *Tensor

	axis    int   // deletionView: axis with hidden coordinates
	shifted []int // deletionView: sorted deleted coordinates d[j] minus j

	perm []int // permutationView: perm[i] is the new position of parent axis i

	inserted []int // insertionView: sorted unit-axis positions in the view's rank
}

// Tensor is a dense float32 tensor, backed by its own storage or by a parent.
//
// Example:
//
//	t, _ := tensor.From([][]int{{1, 2, 3}, {4, 5, 6}})
//	v, _ := t.Get(1, 0) // 4
//	tt, _ := t.T()      // shape (3, 2), shares t's buffer
type Tensor struct {
	shape Shape
	size  int

	storage *storage // non-nil for leaves
	view    *view    // non-nil for views
}

func newLeaf(shape Shape, st *storage) *Tensor {
	return &Tensor{
		shape:   shape,
		size:    shape.NumElements(),
		storage: st,
	}
}

func newView(shape Shape, v *view) *Tensor {
	return &Tensor{
		shape: shape,
		size:  shape.NumElements(),
		view:  v,
	}
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape.Clone()
}

// Dims returns the number of axes.
func (t *Tensor) Dims() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.size
}

// Dim returns the extent of a single axis. Negative axes count from the end.
func (t *Tensor) Dim(axis int) (int, error) {
	a, err := t.normalizeAxis(axis)
	if err != nil {
		return 0, err
	}
	return t.shape[a], nil
}

// IsView reports whether the tensor reads its elements through a parent.
func (t *Tensor) IsView() bool {
	return t.view != nil
}

// Base returns the parent of a view, or nil for a leaf.
func (t *Tensor) Base() *Tensor {
	if t.view == nil {
		return nil
	}
	return t.view.parent
}

// resolve walks the view chain down to the leaf and returns the buffer and
// position addressed by coords. coords must be full-rank and non-negative;
// it is never modified.
func (t *Tensor) resolve(coords []int) (*storage, int) {
	cur := t
	for cur.view != nil {
		coords = cur.view.remap(coords)
		cur = cur.view.parent
	}
	return cur.storage, cur.storage.offset(coords)
}

// remap rewrites view coordinates into parent coordinates.
func (v *view) remap(coords []int) []int {
	switch v.kind {
	case deletionView:
		out := make([]int, len(coords))
		copy(out, coords)
		out[v.axis] = v.underlying(coords[v.axis])
		return out
	case permutationView:
		out := make([]int, len(v.perm))
		for i, p := range v.perm {
			out[i] = coords[p]
		}
		return out
	case insertionView:
		out := make([]int, 0, len(coords)-len(v.inserted))
		next := 0
		for i, c := range coords {
			if next < len(v.inserted) && v.inserted[next] == i {
				next++
				continue
			}
			out = append(out, c)
		}
		return out
	default:
		panic("unknown view kind " + v.kind.String())
	}
}

// get reads an element at validated coordinates.
func (t *Tensor) get(coords []int) float32 {
	st, off := t.resolve(coords)
	return st.data[off]
}

// set writes an element at validated coordinates.
func (t *Tensor) set(value float32, coords []int) {
	st, off := t.resolve(coords)
	st.data[off] = value
}

// Clone materializes the tensor into a new leaf with the same shape.
// The result shares nothing with the receiver.
func (t *Tensor) Clone() *Tensor {
	return newLeaf(t.shape.Clone(), wrapStorage(t.shape, t.Data()))
}

// Data returns the elements flattened in row-major order.
// The slice is a copy; modifying it does not affect the tensor.
func (t *Tensor) Data() []float32 {
	out := make([]float32, 0, t.size)
	for _, v := range t.All() {
		out = append(out, v)
	}
	return out
}

// Ints returns the elements flattened in row-major order, truncated toward zero.
// NaN converts to 0.
func (t *Tensor) Ints() []int {
	out := make([]int, 0, t.size)
	for _, v := range t.All() {
		if v != v {
			out = append(out, 0)
			continue
		}
		out = append(out, int(v))
	}
	return out
}
