package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds. Callers branch on these with errors.Is.
var (
	ErrArgumentCount    = errors.New("wrong number of arguments")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrShape            = errors.New("invalid shape")
	ErrEmptyReduction   = errors.New("reduction of an empty tensor")
	ErrNilInput         = errors.New("cannot create tensor from nil")
)

// IndexError describes a coordinate, axis or flat index outside its valid range.
type IndexError struct {
	What  string // "index", "axis" or "flat index"
	Axis  int    // Axis the index applies to, -1 when not axis-specific
	Index int    // Offending value as supplied by the caller
	Size  int    // Extent (or rank, or element count) it was checked against
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	switch {
	case e.What == "axis":
		return fmt.Sprintf("axis %d out of bounds for tensor with %d dimensions", e.Index, e.Size)
	case e.Axis < 0:
		return fmt.Sprintf("%s %d out of bounds for tensor of size %d", e.What, e.Index, e.Size)
	default:
		return fmt.Sprintf("%s %d is out of bounds for axis %d with size %d", e.What, e.Index, e.Axis, e.Size)
	}
}

// Is reports whether target is ErrIndexOutOfBounds.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfBounds
}

func indexError(axis, index, size int) error {
	return &IndexError{What: "index", Axis: axis, Index: index, Size: size}
}

func axisError(axis, dims int) error {
	return &IndexError{What: "axis", Axis: -1, Index: axis, Size: dims}
}

func flatIndexError(index, size int) error {
	return &IndexError{What: "flat index", Axis: -1, Index: index, Size: size}
}
