package tensor

// storage is the element buffer of a leaf tensor. It is the only type that
// owns float data; views reach it by walking their parent chain.
type storage struct {
	data   []float32 // Row-major elements, len == shape.NumElements()
	stride []int     // Row-major strides ("skips") of the owning leaf
}

// newStorage allocates a zeroed buffer for an already validated shape.
func newStorage(shape Shape) *storage {
	return &storage{
		data:   make([]float32, shape.NumElements()),
		stride: shape.ComputeStrides(),
	}
}

// wrapStorage adopts data as the buffer of shape. len(data) must match the shape.
func wrapStorage(shape Shape, data []float32) *storage {
	return &storage{
		data:   data,
		stride: shape.ComputeStrides(),
	}
}

// offset maps full-rank, non-negative coordinates to a buffer position.
func (s *storage) offset(coords []int) int {
	off := 0
	for i, c := range coords {
		off += c * s.stride[i]
	}
	return off
}
