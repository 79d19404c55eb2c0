package tensor

import (
	"reflect"

	"github.com/pkg/errors"
)

// nested is a normalized form of the argument to From: either a sequence of
// children or a terminal. Terminals that are not primitive values are kept as
// invalid so that the fill pass can report them at the right position.
type nested struct {
	seq   []nested
	isSeq bool
	value float32
	valid bool
}

// From creates a tensor from an arbitrarily nested slice or array of
// primitive values.
//
// Numbers, bools (1 or 0) and runes are converted to float32. Nesting may mix
// element types, e.g. []any{[]float64{1, 2}, []bool{true, false}}, but the
// result must be rectangular: every list at a given depth must have the same
// length and all primitives must sit at the same depth. A single primitive
// yields a one-element tensor and an empty list yields Empty.
//
// Example:
//
//	t, err := tensor.From([][]int{{1, 2, 3}, {4, 5, 6}}) // shape (2, 3)
func From(value any) (*Tensor, error) {
	rv := reflect.ValueOf(value)
	if value == nil || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
		return nil, errors.WithStack(ErrNilInput)
	}

	root := normalize(rv)
	if !root.isSeq {
		if !root.valid {
			return nil, errors.Wrapf(ErrShape, "cannot create tensor from non primitive type %T", value)
		}
		root = nested{isSeq: true, seq: []nested{root}}
	}
	if len(root.seq) == 0 {
		return Empty(), nil
	}

	// The rank is the depth of the first-child chain. An empty list ends it.
	dims := 1
	head := root.seq[0]
	for head.isSeq {
		dims++
		if len(head.seq) == 0 {
			break
		}
		head = head.seq[0]
	}

	// Candidate shape from the first-child lengths; fill verifies it.
	shape := make(Shape, dims)
	shape[0] = len(root.seq)
	head = root
	for i := 1; i < dims; i++ {
		head = head.seq[0]
		shape[i] = len(head.seq)
	}

	if err := shape.Validate(); err != nil {
		return nil, err
	}
	st := newStorage(shape)
	if err := fill(st, shape, root, 0, 0); err != nil {
		return nil, err
	}
	return newLeaf(shape, st), nil
}

// fill copies n into st starting at buffer position index for the given axis,
// checking that n matches the inferred shape.
func fill(st *storage, shape Shape, n nested, index, axis int) error {
	dims := len(shape)
	if len(n.seq) != shape[axis] {
		return errors.Wrapf(ErrShape,
			"tensors cannot be created from ragged lists: at axis %d size is %d, but found list of length %d",
			axis, shape[axis], len(n.seq))
	}

	for i, child := range n.seq {
		if axis == dims-1 {
			if child.isSeq {
				return errors.Wrapf(ErrShape,
					"inconsistent dimensions: expected %d dimensions, but found list at depth %d", dims, dims)
			}
			if !child.valid {
				return errors.Wrap(ErrShape, "cannot create tensors from non primitive types")
			}
			st.data[index+i] = child.value
			continue
		}

		switch {
		case child.isSeq:
			if err := fill(st, shape, child, index+i*st.stride[axis], axis+1); err != nil {
				return err
			}
		case !child.valid:
			return errors.Wrap(ErrShape, "cannot create tensors from non primitive types")
		default:
			return errors.Wrapf(ErrShape,
				"inconsistent dimensions: expected %d dimensions, but found primitive value in list at depth %d",
				dims, axis)
		}
	}
	return nil
}

// normalize converts v into nested sequences of float32 terminals.
func normalize(v reflect.Value) nested {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return nested{}
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return nested{}
	}

	if f, ok := primitive(v); ok {
		return nested{value: f, valid: true}
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		n := nested{isSeq: true, seq: make([]nested, v.Len())}
		for i := range n.seq {
			n.seq[i] = normalize(v.Index(i))
		}
		return n
	default:
		return nested{}
	}
}

// primitive widens a numeric or boolean value to float32.
func primitive(v reflect.Value) (float32, bool) {
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return 1, true
		}
		return 0, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float32(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float32(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return float32(v.Float()), true
	default:
		return 0, false
	}
}
