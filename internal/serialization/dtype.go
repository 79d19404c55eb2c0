package serialization

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// DType is a SafeTensors element type.
type DType string

// Supported SafeTensors dtypes.
const (
	F16  DType = "F16"
	BF16 DType = "BF16"
	F32  DType = "F32"
	F64  DType = "F64"
	I32  DType = "I32"
	I64  DType = "I64"
	U8   DType = "U8"
	Bool DType = "BOOL"
)

// Size returns the element size in bytes, or 0 for an unknown dtype.
func (d DType) Size() int {
	switch d {
	case U8, Bool:
		return 1
	case F16, BF16:
		return 2
	case F32, I32:
		return 4
	case F64, I64:
		return 8
	default:
		return 0
	}
}

// decode converts little-endian raw bytes of dtype d into float32 values.
func decode(d DType, raw []byte) ([]float32, error) {
	size := d.Size()
	if size == 0 {
		return nil, errors.Wrapf(ErrUnsupportedDType, "%q", d)
	}
	out := make([]float32, len(raw)/size)
	le := binary.LittleEndian
	for i := range out {
		b := raw[i*size : (i+1)*size]
		switch d {
		case F16:
			out[i] = float16.Frombits(le.Uint16(b)).Float32()
		case BF16:
			out[i] = math.Float32frombits(uint32(le.Uint16(b)) << 16)
		case F32:
			out[i] = math.Float32frombits(le.Uint32(b))
		case F64:
			out[i] = float32(math.Float64frombits(le.Uint64(b)))
		case I32:
			out[i] = float32(int32(le.Uint32(b)))
		case I64:
			out[i] = float32(int64(le.Uint64(b)))
		case U8:
			out[i] = float32(b[0])
		case Bool:
			if b[0] != 0 {
				out[i] = 1
			}
		}
	}
	return out, nil
}

// appendEncoded appends v in dtype d. Only F32 and F16 are written.
func appendEncoded(buf []byte, d DType, v float32) []byte {
	if d == F16 {
		return binary.LittleEndian.AppendUint16(buf, float16.Fromfloat32(v).Bits())
	}
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
}
