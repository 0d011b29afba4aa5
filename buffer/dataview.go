package buffer

import (
	"encoding/binary"
	"math"

	"github.com/wippyai/webidl-runtime/errors"
)

// DataView is an offset/length window into an ArrayBuffer exposing raw
// multi-byte reads and writes with caller-chosen endianness. It holds a
// non-owning reference; detachment of the buffer is re-checked on every
// access, never cached.
type DataView struct {
	buf        *ArrayBuffer
	byteOffset int
	byteLength int
}

// NewDataView creates a view over buf covering [byteOffset,
// byteOffset+byteLength). Bounds are validated against the buffer's byte
// length at this moment; a later detach invalidates accesses, not the
// view object itself.
func NewDataView(buf *ArrayBuffer, byteOffset, byteLength int) (*DataView, error) {
	if buf.detached {
		return nil, errors.Detached(errors.PhaseConstruct)
	}
	// Subtraction form so byteOffset+byteLength cannot wrap for huge inputs.
	if byteOffset < 0 || byteLength < 0 || byteOffset > len(buf.data) || byteLength > len(buf.data)-byteOffset {
		return nil, errors.OutOfBounds(byteOffset, byteLength, len(buf.data))
	}
	return &DataView{buf: buf, byteOffset: byteOffset, byteLength: byteLength}, nil
}

// ByteOffset returns the view's offset into its buffer.
func (v *DataView) ByteOffset() int { return v.byteOffset }

// ByteLength returns the view's length in bytes.
func (v *DataView) ByteLength() int { return v.byteLength }

// window re-derives the addressed byte range, failing on detach first and
// bounds second.
func (v *DataView) window(phase errors.Phase, offset, size int) ([]byte, error) {
	if v.buf.detached {
		return nil, errors.Detached(phase)
	}
	// offset > byteLength-size also catches size > byteLength, and cannot
	// wrap the way offset+size does for offsets near the int maximum.
	if offset < 0 || offset > v.byteLength-size {
		return nil, errors.New(phase, errors.KindIndexOutOfBounds).
			Detail("%d-byte access at offset %d exceeds view length %d", size, offset, v.byteLength).
			Build()
	}
	base := v.byteOffset + offset
	return v.buf.data[base : base+size], nil
}

func byteOrder(littleEndian bool) binary.ByteOrder {
	if littleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// GetUint8 reads the byte at offset.
func (v *DataView) GetUint8(offset int) (uint8, error) {
	w, err := v.window(errors.PhaseAccess, offset, 1)
	if err != nil {
		return 0, err
	}
	return w[0], nil
}

// SetUint8 writes the byte at offset.
func (v *DataView) SetUint8(offset int, val uint8) error {
	w, err := v.window(errors.PhaseMutate, offset, 1)
	if err != nil {
		return err
	}
	w[0] = val
	return nil
}

// GetInt8 reads the signed byte at offset.
func (v *DataView) GetInt8(offset int) (int8, error) {
	u, err := v.GetUint8(offset)
	return int8(u), err
}

// SetInt8 writes the signed byte at offset.
func (v *DataView) SetInt8(offset int, val int8) error {
	return v.SetUint8(offset, uint8(val))
}

// GetUint16 reads a 16-bit unsigned integer at offset.
func (v *DataView) GetUint16(offset int, littleEndian bool) (uint16, error) {
	w, err := v.window(errors.PhaseAccess, offset, 2)
	if err != nil {
		return 0, err
	}
	return byteOrder(littleEndian).Uint16(w), nil
}

// SetUint16 writes a 16-bit unsigned integer at offset.
func (v *DataView) SetUint16(offset int, val uint16, littleEndian bool) error {
	w, err := v.window(errors.PhaseMutate, offset, 2)
	if err != nil {
		return err
	}
	byteOrder(littleEndian).PutUint16(w, val)
	return nil
}

// GetInt16 reads a 16-bit signed integer at offset.
func (v *DataView) GetInt16(offset int, littleEndian bool) (int16, error) {
	u, err := v.GetUint16(offset, littleEndian)
	return int16(u), err
}

// SetInt16 writes a 16-bit signed integer at offset.
func (v *DataView) SetInt16(offset int, val int16, littleEndian bool) error {
	return v.SetUint16(offset, uint16(val), littleEndian)
}

// GetUint32 reads a 32-bit unsigned integer at offset.
func (v *DataView) GetUint32(offset int, littleEndian bool) (uint32, error) {
	w, err := v.window(errors.PhaseAccess, offset, 4)
	if err != nil {
		return 0, err
	}
	return byteOrder(littleEndian).Uint32(w), nil
}

// SetUint32 writes a 32-bit unsigned integer at offset.
func (v *DataView) SetUint32(offset int, val uint32, littleEndian bool) error {
	w, err := v.window(errors.PhaseMutate, offset, 4)
	if err != nil {
		return err
	}
	byteOrder(littleEndian).PutUint32(w, val)
	return nil
}

// GetInt32 reads a 32-bit signed integer at offset.
func (v *DataView) GetInt32(offset int, littleEndian bool) (int32, error) {
	u, err := v.GetUint32(offset, littleEndian)
	return int32(u), err
}

// SetInt32 writes a 32-bit signed integer at offset.
func (v *DataView) SetInt32(offset int, val int32, littleEndian bool) error {
	return v.SetUint32(offset, uint32(val), littleEndian)
}

// GetUint64 reads a 64-bit unsigned integer at offset.
func (v *DataView) GetUint64(offset int, littleEndian bool) (uint64, error) {
	w, err := v.window(errors.PhaseAccess, offset, 8)
	if err != nil {
		return 0, err
	}
	return byteOrder(littleEndian).Uint64(w), nil
}

// SetUint64 writes a 64-bit unsigned integer at offset.
func (v *DataView) SetUint64(offset int, val uint64, littleEndian bool) error {
	w, err := v.window(errors.PhaseMutate, offset, 8)
	if err != nil {
		return err
	}
	byteOrder(littleEndian).PutUint64(w, val)
	return nil
}

// GetInt64 reads a 64-bit signed integer at offset.
func (v *DataView) GetInt64(offset int, littleEndian bool) (int64, error) {
	u, err := v.GetUint64(offset, littleEndian)
	return int64(u), err
}

// SetInt64 writes a 64-bit signed integer at offset.
func (v *DataView) SetInt64(offset int, val int64, littleEndian bool) error {
	return v.SetUint64(offset, uint64(val), littleEndian)
}

// GetFloat32 reads a 32-bit float at offset.
func (v *DataView) GetFloat32(offset int, littleEndian bool) (float32, error) {
	u, err := v.GetUint32(offset, littleEndian)
	return math.Float32frombits(u), err
}

// SetFloat32 writes a 32-bit float at offset.
func (v *DataView) SetFloat32(offset int, val float32, littleEndian bool) error {
	return v.SetUint32(offset, math.Float32bits(val), littleEndian)
}

// GetFloat64 reads a 64-bit float at offset.
func (v *DataView) GetFloat64(offset int, littleEndian bool) (float64, error) {
	u, err := v.GetUint64(offset, littleEndian)
	return math.Float64frombits(u), err
}

// SetFloat64 writes a 64-bit float at offset.
func (v *DataView) SetFloat64(offset int, val float64, littleEndian bool) error {
	return v.SetUint64(offset, math.Float64bits(val), littleEndian)
}
