package tensor

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Equal reports whether t and other have the same shape and the same
// elements in the same positions.
//
// Unlike ==, NaN equals NaN, and 0 and -0 are equal.
func (t *Tensor) Equal(other *Tensor) bool {
	if t == other {
		return true
	}
	if other == nil || t == nil || !t.shape.Equal(other.shape) {
		return false
	}
	equal := true
	t.eachIndex(func(_ int, coords []int) bool {
		a, b := t.get(coords), other.get(coords)
		equal = a == b || (isNaN(a) && isNaN(b))
		return equal
	})
	return equal
}

// Hash returns a hash consistent with Equal: equal tensors hash equally.
func (t *Tensor) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, dim := range t.shape {
		binary.LittleEndian.PutUint64(buf[:], uint64(dim))
		h.Write(buf[:])
	}
	for v := range t.Values() {
		binary.LittleEndian.PutUint32(buf[:4], canonicalBits(v))
		h.Write(buf[:4])
	}
	return h.Sum64()
}

// canonicalBits folds every NaN onto one pattern and -0 onto +0.
func canonicalBits(v float32) uint32 {
	switch {
	case isNaN(v):
		return 0x7fc00000
	case v == 0:
		return 0
	default:
		return math.Float32bits(v)
	}
}
