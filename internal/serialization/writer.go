package serialization

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"os"
	"sort"

	"github.com/born-ml/ndview/internal/tensor"
	"github.com/pkg/errors"
)

// WriterOptions configures Write.
type WriterOptions struct {
	DType DType // F32 (default) or F16
}

// DefaultWriterOptions returns options that write lossless F32 data.
func DefaultWriterOptions() WriterOptions {
	return WriterOptions{DType: F32}
}

// tensorHeader represents a tensor in the SafeTensors header.
type tensorHeader struct {
	DType       DType    `json:"dtype"`
	Shape       []int64  `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"`
}

// WriteFile writes tensors to a SafeTensors file at path using default options.
func WriteFile(path string, tensors map[string]*tensor.Tensor, metadata map[string]string) error {
	//nolint:gosec // G304: File path comes from user input, which is expected for saving
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	if err := Write(file, tensors, metadata, DefaultWriterOptions()); err != nil {
		_ = file.Close() // Best effort close on error
		return err
	}
	return errors.Wrap(file.Close(), "failed to close file")
}

// Write encodes tensors in SafeTensors format.
//
// Tensors are written in alphabetical order by name. Views are materialised
// in row-major order. The data checksum is added to a copy of metadata.
func Write(w io.Writer, tensors map[string]*tensor.Tensor, metadata map[string]string, opts WriterOptions) error {
	if opts.DType == "" {
		opts.DType = F32
	}
	if opts.DType != F32 && opts.DType != F16 {
		return errors.Wrapf(ErrUnsupportedDType, "cannot write %q", opts.DType)
	}
	if len(tensors) > MaxTensorCount {
		return &ValidationError{Kind: ErrTooManyTensors, Details: "refusing to write"}
	}

	names := make([]string, 0, len(tensors))
	for name, t := range tensors {
		if err := ValidateTensorName(name); err != nil {
			return err
		}
		if t == nil {
			return errors.Wrapf(ErrInvalidHeader, "tensor %q is nil", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	header := make(map[string]any, len(names)+1)
	var data []byte
	for _, name := range names {
		t := tensors[name]
		start := int64(len(data))
		for v := range t.Values() {
			data = appendEncoded(data, opts.DType, v)
		}

		shape := t.Shape()
		dims := make([]int64, len(shape))
		for i, d := range shape {
			dims[i] = int64(d)
		}
		header[name] = tensorHeader{
			DType:       opts.DType,
			Shape:       dims,
			DataOffsets: [2]int64{start, int64(len(data))},
		}
	}

	meta := make(map[string]string, len(metadata)+1)
	for k, v := range metadata {
		meta[k] = v
	}
	meta[checksumKey] = ComputeChecksum(data)
	header["__metadata__"] = meta

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return errors.Wrap(err, "failed to marshal header")
	}
	// Pad the header with spaces so the data section is 8-byte aligned.
	for (8+len(headerJSON))%8 != 0 {
		headerJSON = append(headerJSON, ' ')
	}

	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return errors.Wrap(err, "failed to write header size")
	}
	if _, err := w.Write(headerJSON); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "failed to write tensor data")
	}
	return nil
}
