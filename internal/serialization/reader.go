package serialization

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"math"
	"os"
	"sort"

	"github.com/born-ml/ndview/internal/tensor"
	"github.com/pkg/errors"
)

// TensorInfo describes a tensor entry in a SafeTensors header.
type TensorInfo struct {
	DType       DType    `json:"dtype"`
	Shape       []int    `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"` // [start, end] relative to the data section
}

// Header is the parsed JSON header of a SafeTensors file.
type Header struct {
	Metadata map[string]string
	Tensors  map[string]TensorInfo
}

// UnmarshalJSON splits the __metadata__ entry from the tensor entries.
func (h *Header) UnmarshalJSON(data []byte) error {
	var rawMap map[string]json.RawMessage
	if err := json.Unmarshal(data, &rawMap); err != nil {
		return err
	}

	if metadataRaw, ok := rawMap["__metadata__"]; ok {
		if err := json.Unmarshal(metadataRaw, &h.Metadata); err != nil {
			return errors.Wrap(err, "failed to unmarshal metadata")
		}
	}

	h.Tensors = make(map[string]TensorInfo, len(rawMap))
	for key, value := range rawMap {
		if key == "__metadata__" {
			continue
		}
		var info TensorInfo
		if err := json.Unmarshal(value, &info); err != nil {
			return errors.Wrapf(err, "failed to unmarshal tensor %s", key)
		}
		h.Tensors[key] = info
	}
	return nil
}

// File is a fully decoded SafeTensors file.
type File struct {
	Header  Header
	Tensors map[string]*tensor.Tensor
}

// Names returns the tensor names in alphabetical order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Tensors))
	for name := range f.Tensors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReadFile reads and decodes the SafeTensors file at path.
func ReadFile(path string) (*File, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for loading
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer func() {
		_ = file.Close() // Best effort close
	}()
	return Read(file)
}

// Read decodes a SafeTensors stream. Every tensor becomes a float32 leaf;
// scalars (shape []) are returned with shape (1).
func Read(r io.Reader) (*File, error) {
	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, errors.Wrap(err, "failed to read header size")
	}
	if headerSize > MaxHeaderSize {
		return nil, errors.Wrapf(ErrHeaderTooLarge, "%d bytes", headerSize)
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, errors.Wrap(err, "failed to read header")
	}
	var header Header
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, errors.Wrapf(ErrInvalidHeader, "failed to parse header JSON: %v", err)
	}

	spans := make([]span, 0, len(header.Tensors))
	var dataSize int64
	for name, info := range header.Tensors {
		if err := ValidateTensorName(name); err != nil {
			return nil, err
		}
		if err := checkEntry(name, info); err != nil {
			return nil, err
		}
		spans = append(spans, span{name: name, start: info.DataOffsets[0], end: info.DataOffsets[1]})
		dataSize = max(dataSize, info.DataOffsets[1])
	}

	if err := validateSpans(spans, dataSize); err != nil {
		return nil, err
	}
	// dataSize comes from the header; read no more than the stream holds.
	data, err := io.ReadAll(io.LimitReader(r, dataSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read tensor data")
	}
	if int64(len(data)) != dataSize {
		return nil, errors.Wrapf(io.ErrUnexpectedEOF, "tensor data: got %d of %d bytes", len(data), dataSize)
	}
	if sum, ok := header.Metadata[checksumKey]; ok {
		if err := ValidateChecksum(data, sum); err != nil {
			return nil, err
		}
	}

	f := &File{Header: header, Tensors: make(map[string]*tensor.Tensor, len(header.Tensors))}
	for name, info := range header.Tensors {
		values, err := decode(info.DType, data[info.DataOffsets[0]:info.DataOffsets[1]])
		if err != nil {
			return nil, errors.WithMessagef(err, "tensor %s", name)
		}
		shape := info.Shape
		if len(shape) == 0 {
			shape = []int{1}
		}
		t, err := tensor.FromSlice(values, shape...)
		if err != nil {
			return nil, errors.WithMessagef(err, "tensor %s", name)
		}
		f.Tensors[name] = t
	}
	return f, nil
}

// checkEntry validates the dtype and that the byte range matches the shape.
func checkEntry(name string, info TensorInfo) error {
	size := info.DType.Size()
	if size == 0 {
		return errors.Wrapf(ErrUnsupportedDType, "tensor %s has dtype %q", name, info.DType)
	}
	start, end := info.DataOffsets[0], info.DataOffsets[1]
	if start < 0 || end < start {
		return &ValidationError{Kind: ErrNegativeOffset, Tensor: name, Details: "bad data_offsets"}
	}
	elements := int64(1)
	for _, d := range info.Shape {
		if d < 0 {
			return errors.Wrapf(ErrInvalidHeader, "tensor %s has negative extent in shape %v", name, info.Shape)
		}
		if d != 0 && elements > math.MaxInt64/int64(d) {
			return errors.Wrapf(ErrInvalidHeader, "tensor %s: shape %v has too many elements", name, info.Shape)
		}
		elements *= int64(d)
	}
	if elements > math.MaxInt64/int64(size) {
		return errors.Wrapf(ErrInvalidHeader, "tensor %s: shape %v is too large for dtype %s", name, info.Shape, info.DType)
	}
	if want := elements * int64(size); end-start != want {
		return errors.Wrapf(ErrInvalidHeader, "tensor %s: shape %v needs %d bytes, data_offsets span %d",
			name, info.Shape, want, end-start)
	}
	return nil
}
