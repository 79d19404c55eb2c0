package serialization

import (
	"fmt"
	"sort"
	"strings"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize    = 100 * 1024 * 1024 // 100MB
	MaxTensorCount   = 100_000
	MaxTensorNameLen = 4096
)

// span is the byte range of one tensor inside the data section.
type span struct {
	name       string
	start, end int64
}

// validateSpans checks for negative, out-of-bounds and overlapping byte ranges.
func validateSpans(spans []span, dataSize int64) error {
	if len(spans) > MaxTensorCount {
		return &ValidationError{
			Kind:    ErrTooManyTensors,
			Details: fmt.Sprintf("got %d, max %d", len(spans), MaxTensorCount),
		}
	}

	// Empty spans hold no bytes and cannot overlap anything.
	sorted := make([]span, 0, len(spans))
	for _, s := range spans {
		if s.start < 0 || s.end < s.start {
			return &ValidationError{
				Kind:    ErrNegativeOffset,
				Tensor:  s.name,
				Details: fmt.Sprintf("data_offsets [%d, %d]", s.start, s.end),
			}
		}
		if s.end > dataSize {
			return &ValidationError{
				Kind:    ErrOutOfBounds,
				Tensor:  s.name,
				Details: fmt.Sprintf("end %d > data_size %d", s.end, dataSize),
			}
		}
		if s.end > s.start {
			sorted = append(sorted, s)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].start < sorted[j].start
	})

	for i, s := range sorted {
		if i < len(sorted)-1 {
			next := sorted[i+1]
			if s.end > next.start {
				return &ValidationError{
					Kind:    ErrOffsetOverlap,
					Tensor:  s.name,
					Tensor2: next.name,
					Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap", s.start, s.end, next.start, next.end),
				}
			}
		}
	}
	return nil
}

// ValidateTensorName rejects empty, oversized and path-like names.
func ValidateTensorName(name string) error {
	switch {
	case name == "":
		return &ValidationError{Kind: ErrInvalidTensorName, Details: "empty name"}
	case len(name) > MaxTensorNameLen:
		return &ValidationError{
			Kind:    ErrInvalidTensorName,
			Tensor:  name[:32] + "...",
			Details: fmt.Sprintf("length %d > max %d", len(name), MaxTensorNameLen),
		}
	case name == "__metadata__":
		return &ValidationError{Kind: ErrInvalidTensorName, Tensor: name, Details: "reserved key"}
	case strings.Contains(name, ".."):
		return &ValidationError{Kind: ErrInvalidTensorName, Tensor: name, Details: "contains '..'"}
	case strings.ContainsAny(name, "/\\"):
		return &ValidationError{Kind: ErrInvalidTensorName, Tensor: name, Details: "contains path separator (/ or \\)"}
	case strings.Contains(name, "\x00"):
		return &ValidationError{Kind: ErrInvalidTensorName, Tensor: name, Details: "contains null byte"}
	}
	return nil
}
