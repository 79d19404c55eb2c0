package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustFrom builds a tensor from nested slices, failing the test on error.
func mustFrom(t *testing.T, value any) *Tensor {
	t.Helper()
	out, err := From(value)
	require.NoError(t, err)
	return out
}

func TestGet(t *testing.T) {
	x := mustFrom(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {10, 11, 12}})

	_, err := x.Get(0, 1, 0)
	require.ErrorIs(t, err, ErrArgumentCount, "too many indices")

	_, err = x.Get()
	require.ErrorIs(t, err, ErrArgumentCount, "not enough indices")

	_, err = x.Get(2, 3)
	require.ErrorIs(t, err, ErrIndexOutOfBounds, "positive index out of bounds")

	_, err = x.Get(-5, 2)
	require.ErrorIs(t, err, ErrIndexOutOfBounds, "negative index out of bounds")

	var idxErr *IndexError
	require.ErrorAs(t, err, &idxErr)
	assert.Equal(t, 0, idxErr.Axis)
	assert.Equal(t, -5, idxErr.Index)
	assert.Equal(t, 4, idxErr.Size)

	v, err := x.Get(-3, -2)
	require.NoError(t, err)
	assert.Equal(t, float32(5), v)

	v, err = x.Get(1, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(4), v)
}

func TestGetFlatIndex(t *testing.T) {
	x := mustFrom(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	v, err := x.Get(4)
	require.NoError(t, err)
	assert.Equal(t, float32(5), v)

	v, err = x.Get(-1)
	require.NoError(t, err)
	assert.Equal(t, float32(6), v)

	_, err = x.Get(6)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = x.Get(-7)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestFlatAndMultiIndexAgree(t *testing.T) {
	x, err := Rand(NewGenerator(1), 3, 4, 2)
	require.NoError(t, err)

	flat := 0
	for idx := range x.Indices() {
		a, err := x.Get(idx...)
		require.NoError(t, err)
		b, err := x.Get(flat)
		require.NoError(t, err)
		assert.Equal(t, a, b, "coords %v vs flat %d", idx, flat)
		flat++
	}
	assert.Equal(t, x.NumElements(), flat)
}

func TestNegativeIndexEquivalence(t *testing.T) {
	r := mustFrom(t, [][][]int{
		{{0, 1, 2}, {3, 4, 5}},
		{{6, 7, 8}, {9, 10, 11}},
	})
	shape := r.Shape()
	for idx := range r.Indices() {
		neg := make([]int, len(idx))
		for i, c := range idx {
			neg[i] = c - shape[i]
		}
		assert.Equal(t, r.At(idx...), r.At(neg...))
	}
}

func TestSet(t *testing.T) {
	x := MustZeros(2, 3)

	require.NoError(t, x.Set(7, 1, -1))
	assert.Equal(t, float32(7), x.At(1, 2))

	require.NoError(t, x.Set(3, 1))
	assert.Equal(t, float32(3), x.At(0, 1))

	err := x.Set(1, 2, 0)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
	assert.Equal(t, []float32{0, 3, 0, 0, 0, 7}, x.Data(), "failed Set must not write")
}

func TestAtPanics(t *testing.T) {
	x := MustZeros(2, 2)
	assert.Panics(t, func() { x.At(5, 5) })
	assert.Panics(t, func() { x.SetAt(1, 0, 0, 0) })
	assert.NotPanics(t, func() { x.SetAt(1, 0, 0).SetAt(2, 1, 1) })
	assert.Equal(t, []float32{1, 0, 0, 2}, x.Data())
}

func TestDimsAndSize(t *testing.T) {
	tests := []struct {
		shape []int
		dims  int
		size  int
	}{
		{[]int{3}, 1, 3},
		{[]int{3, 4}, 2, 12},
		{[]int{3, 4, 5}, 3, 60},
	}
	for _, tt := range tests {
		x := MustZeros(tt.shape...)
		assert.Equal(t, tt.dims, x.Dims())
		assert.Equal(t, tt.size, x.NumElements())
		assert.Equal(t, Shape(tt.shape), x.Shape())

		last, err := x.Dim(-1)
		require.NoError(t, err)
		assert.Equal(t, tt.shape[len(tt.shape)-1], last)
	}

	_, err := MustZeros(3, 4).Dim(2)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestShapeIsCopied(t *testing.T) {
	x := MustZeros(2, 3)
	s := x.Shape()
	s[0] = 100
	assert.Equal(t, Shape{2, 3}, x.Shape())
}

func TestCloneDetaches(t *testing.T) {
	x := mustFrom(t, [][]int{{1, 2}, {3, 4}})
	tt, err := x.T()
	require.NoError(t, err)

	c := tt.Clone()
	assert.False(t, c.IsView())
	assert.True(t, c.Equal(tt))

	c.SetAt(100, 0, 0)
	assert.Equal(t, float32(1), x.At(0, 0))
}

func TestDataAndInts(t *testing.T) {
	x := mustFrom(t, []float64{1.9, -1.9, 0.5})
	assert.Equal(t, []int{1, -1, 0}, x.Ints())

	data := x.Data()
	data[0] = 42
	assert.Equal(t, float32(1.9), x.At(0), "Data must return a copy")
}

func TestIterators(t *testing.T) {
	x := mustFrom(t, [][]int{{1, 2}, {3, 4}, {5, 6}})

	var idx [][]int
	for c := range x.Indices() {
		idx = append(idx, c)
	}
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}, idx)

	var flats []int
	var values []float32
	for i, v := range x.All() {
		flats = append(flats, i)
		values = append(values, v)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, flats)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, values)

	count := 0
	for range x.Values() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)

	for range Empty().Indices() {
		t.Fatal("empty tensor must not yield indices")
	}
}
