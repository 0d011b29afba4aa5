package buffer

import (
	"unsafe"

	"github.com/wippyai/webidl-runtime/errors"
)

// Scalar enumerates the fixed-size machine types a TypedArray can view.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// TypedArray is an element-typed window into an ArrayBuffer. Elements use
// native byte order; every access re-checks that the buffer is still
// attached before touching memory.
type TypedArray[T Scalar] struct {
	buf        *ArrayBuffer
	byteOffset int
	length     int
}

// NewTypedArray creates a view of length elements of T starting at
// byteOffset. byteOffset must be a multiple of T's size and the addressed
// range must fit the buffer's byte length as measured now.
func NewTypedArray[T Scalar](buf *ArrayBuffer, byteOffset, length int) (*TypedArray[T], error) {
	elemSize := int(unsafe.Sizeof(*new(T)))
	if buf.detached {
		return nil, errors.Detached(errors.PhaseConstruct)
	}
	if byteOffset < 0 || length < 0 {
		return nil, errors.OutOfBounds(byteOffset, length*elemSize, len(buf.data))
	}
	if byteOffset%elemSize != 0 {
		return nil, errors.InvalidOffset(byteOffset, elemSize)
	}
	// Division form so length*elemSize cannot wrap for huge lengths.
	if byteOffset > len(buf.data) || length > (len(buf.data)-byteOffset)/elemSize {
		return nil, errors.New(errors.PhaseConstruct, errors.KindOutOfBounds).
			Detail("%d elements of %d bytes at offset %d exceed buffer length %d", length, elemSize, byteOffset, len(buf.data)).
			Build()
	}
	return &TypedArray[T]{buf: buf, byteOffset: byteOffset, length: length}, nil
}

// Len returns the element count.
func (t *TypedArray[T]) Len() int { return t.length }

// ByteOffset returns the view's offset into its buffer.
func (t *TypedArray[T]) ByteOffset() int { return t.byteOffset }

// ByteLength returns the view's span in bytes.
func (t *TypedArray[T]) ByteLength() int {
	return t.length * int(unsafe.Sizeof(*new(T)))
}

// Get reads element i.
func (t *TypedArray[T]) Get(i int) (T, error) {
	var zero T
	if t.buf.detached {
		return zero, errors.Detached(errors.PhaseAccess)
	}
	if i < 0 || i >= t.length {
		return zero, errors.IndexOutOfBounds(errors.PhaseAccess, i, t.length)
	}
	off := t.byteOffset + i*int(unsafe.Sizeof(zero))
	return *(*T)(unsafe.Pointer(&t.buf.data[off])), nil
}

// Set writes element i.
func (t *TypedArray[T]) Set(i int, val T) error {
	if t.buf.detached {
		return errors.Detached(errors.PhaseMutate)
	}
	if i < 0 || i >= t.length {
		return errors.IndexOutOfBounds(errors.PhaseMutate, i, t.length)
	}
	off := t.byteOffset + i*int(unsafe.Sizeof(val))
	*(*T)(unsafe.Pointer(&t.buf.data[off])) = val
	return nil
}

// AsSlice returns the viewed elements as a slice aliasing the buffer's
// memory directly; no copy is made. Valid because the buffer's backing
// memory never moves while attached. The slice must not be retained past
// a detach of the buffer.
func (t *TypedArray[T]) AsSlice() ([]T, error) {
	if t.buf.detached {
		return nil, errors.Detached(errors.PhaseAccess)
	}
	if t.length == 0 {
		return nil, nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&t.buf.data[t.byteOffset])), t.length), nil
}
