package tensor

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMixedTypes(t *testing.T) {
	array := []any{
		[]float32{1, 2, 3},
		[]bool{true, false, false},
		[]any{3, 3.14, 'a'},
		[3]int{10, 11, 12},
	}
	x, err := From(array)
	require.NoError(t, err)
	assert.Equal(t, Shape{4, 3}, x.Shape())
	assert.Equal(t, float32(97), x.At(2, 2))
	assert.Equal(t, float32(2), x.At(0, 1))
	assert.Equal(t, float32(1), x.At(1, 0))
	assert.Equal(t, float32(3.14), x.At(2, 1))
	assert.Equal(t, float32(10), x.At(3, 0))
}

func TestFromErrors(t *testing.T) {
	base := func() []any {
		return []any{
			[]float32{1, 2, 3},
			[]bool{true, false, false},
			[]any{3, 3.14, 'a'},
			[]int{10, 11, 12},
		}
	}

	tests := []struct {
		name    string
		replace any
		msg     string
	}{
		{"ragged", make([]int, 4), "ragged"},
		{"primitive instead of list", 0, "inconsistent dimensions"},
		{"unsupported instead of list", big.NewInt(0), "non primitive"},
		{"unsupported element", []any{0, 1, big.NewInt(0)}, "non primitive"},
		{"string element", []any{0, 1, "two"}, "non primitive"},
		{"nil element", []any{0, 1, nil}, "non primitive"},
		{"list instead of primitive", []any{0, 1, []int{2}}, "inconsistent dimensions"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			array := base()
			array[3] = tt.replace
			_, err := From(array)
			require.ErrorIs(t, err, ErrShape)
			assert.NotErrorIs(t, err, ErrNilInput)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestFromNil(t *testing.T) {
	_, err := From(nil)
	require.ErrorIs(t, err, ErrNilInput)

	var p *[]int
	_, err = From(p)
	require.ErrorIs(t, err, ErrNilInput)
}

func TestFromShapes(t *testing.T) {
	tests := []struct {
		name  string
		value any
		shape Shape
		data  []float32
	}{
		{"scalar", 7, Shape{1}, []float32{7}},
		{"vector", []int{1, 2, 3}, Shape{3}, []float32{1, 2, 3}},
		{"matrix", [][]int{{1, 2, 3}, {4, 5, 6}}, Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6}},
		{"cube", [][][]int8{{{1}, {2}}, {{3}, {4}}}, Shape{2, 2, 1}, []float32{1, 2, 3, 4}},
		{"runes", []rune("ab"), Shape{2}, []float32{97, 98}},
		{"bytes", []byte{0, 255}, Shape{2}, []float32{0, 255}},
		{"empty rows", [][]int{{}, {}}, Shape{2, 0}, []float32{}},
		{"nil rows", [][]float64{nil, nil}, Shape{2, 0}, []float32{}},
		{"pointer to slice", &[]float64{1.5}, Shape{1}, []float32{1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := From(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, x.Shape())
			assert.Equal(t, tt.data, x.Data())
		})
	}
}

func TestFromEmpty(t *testing.T) {
	x, err := From([]int{})
	require.NoError(t, err)
	assert.True(t, x.Equal(Empty()))

	x, err = From([]any(nil))
	require.NoError(t, err)
	assert.True(t, x.Equal(Empty()))
}

func TestFromEmptyRowAfterFull(t *testing.T) {
	_, err := From([][]int{{1}, {}})
	require.ErrorIs(t, err, ErrShape)
	assert.Contains(t, err.Error(), "ragged")
}

func TestFromTopLevelUnsupported(t *testing.T) {
	_, err := From("text")
	require.ErrorIs(t, err, ErrShape)

	_, err = From(map[string]int{"a": 1})
	require.ErrorIs(t, err, ErrShape)
}
