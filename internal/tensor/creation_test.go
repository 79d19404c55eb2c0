package tensor

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerosOnesFull(t *testing.T) {
	z, err := Zeros(2, 3)
	require.NoError(t, err)
	assert.Equal(t, make([]float32, 6), z.Data())

	o, err := Ones(3)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 1, 1}, o.Data())

	f, err := Full(2.5, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []float32{2.5, 2.5, 2.5, 2.5}, f.Data())

	assert.True(t, ZerosLike(f).Equal(MustZeros(2, 2)))
	assert.Equal(t, Shape{2, 2}, OnesLike(f).Shape())
	assert.Equal(t, float32(1), OnesLike(f).At(1, 1))
}

func TestNegativeShape(t *testing.T) {
	_, err := Zeros(2, -1)
	require.ErrorIs(t, err, ErrShape)
	_, err = Ones(-3)
	require.ErrorIs(t, err, ErrShape)
	_, err = Rand(nil, 1, -1)
	require.ErrorIs(t, err, ErrShape)
	_, err = Randn(nil, -2)
	require.ErrorIs(t, err, ErrShape)
	_, err = Zeros()
	require.ErrorIs(t, err, ErrShape)

	assert.Panics(t, func() { MustZeros(-1) })
}

func TestEmpty(t *testing.T) {
	e := Empty()
	assert.Equal(t, Shape{0}, e.Shape())
	assert.Equal(t, 1, e.Dims())
	assert.Equal(t, 0, e.NumElements())
	assert.NotSame(t, e, Empty())
}

func TestRand(t *testing.T) {
	x, err := Rand(NewGenerator(42), 100, 50)
	require.NoError(t, err)
	assert.Equal(t, Shape{100, 50}, x.Shape())

	for v := range x.Values() {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.Less(t, v, float32(1))
	}

	mean, err := x.Mean()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, mean, 0.05)
}

func TestRandn(t *testing.T) {
	x, err := Randn(NewGenerator(42), 100, 50)
	require.NoError(t, err)

	mean, err := x.Mean()
	require.NoError(t, err)
	assert.InDelta(t, 0, mean, 0.1)

	variance := x.Apply(func(v float32) float32 { return (v - mean) * (v - mean) }).Sum() / float32(x.NumElements())
	assert.InDelta(t, 1, math.Sqrt(float64(variance)), 0.1)
}

func TestRandIsReproducible(t *testing.T) {
	a, err := Randn(NewGenerator(7), 4, 4)
	require.NoError(t, err)
	b, err := Randn(NewGenerator(7), 4, 4)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	c, err := Randn(NewGenerator(8), 4, 4)
	require.NoError(t, err)
	assert.False(t, a.Equal(c))

	g := NewGeneratorFromSource(rand.NewPCG(1, 2))
	u := RandLike(g, a)
	n := RandnLike(g, a)
	assert.Equal(t, a.Shape(), u.Shape())
	assert.Equal(t, a.Shape(), n.Shape())
}

// constSource always returns the largest uint64, which maps to the float64
// closest to 1 and rounds to 1 when narrowed.
type constSource struct{}

func (constSource) Uint64() uint64 { return math.MaxUint64 }

func TestUniformStaysBelowOne(t *testing.T) {
	g := NewGeneratorFromSource(constSource{})
	assert.Less(t, g.Uniform(), float32(1))
}

func TestNilGenerator(t *testing.T) {
	var g *Generator
	x, err := Rand(g, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, x.NumElements())
}

func TestArange(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, step float32
		want              []float32
	}{
		{"ascending", 0, 5, 1, []float32{0, 1, 2, 3, 4}},
		{"descending", 8, 0, -2, []float32{8, 6, 4, 2}},
		{"wrong sign", 8, 0, 2, []float32{}},
		{"fractional", 0, 1, 0.25, []float32{0, 0.25, 0.5, 0.75}},
		{"partial last step", 0, 5, 2, []float32{0, 2, 4}},
		{"empty interval", 3, 3, 1, []float32{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := Arange(tt.start, tt.stop, tt.step)
			require.NoError(t, err)
			assert.Equal(t, 1, x.Dims())
			assert.Equal(t, tt.want, x.Data())
		})
	}

	_, err := Arange(0, 1, 0)
	require.ErrorIs(t, err, ErrShape)
}

func TestArangeInt(t *testing.T) {
	assert.True(t, ArangeN(5).Equal(mustFrom(t, []int{0, 1, 2, 3, 4})))
	assert.Equal(t, []float32{-2, -1, 0}, ArangeInt(-2, 1).Data())
	assert.True(t, ArangeInt(3, 1).Equal(Empty()))
	assert.True(t, ArangeN(0).Equal(Empty()))
}

func TestFromSlice(t *testing.T) {
	x, err := FromSlice([]int{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, float32(6), x.At(1, 2))

	y, err := FromSlice([]float64{0.5, 1.5}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 1.5}, y.Data())

	u, err := FromSlice([]uint8{255}, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, float32(255), u.At(0, 0))

	_, err = FromSlice([]int{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, ErrShape)
	_, err = FromSlice([]int{}, -1)
	require.ErrorIs(t, err, ErrShape)

	data := []float32{1, 2}
	z, err := FromSlice(data, 2)
	require.NoError(t, err)
	data[0] = 9
	assert.Equal(t, float32(1), z.At(0), "FromSlice must copy")
}
