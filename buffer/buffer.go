package buffer

import (
	"math"

	"github.com/wippyai/webidl-runtime/errors"
)

// MaxByteLength caps a single buffer allocation. Requests beyond it fail
// with an allocation error instead of being handed to the Go allocator.
// math.MaxInt32 keeps the constant representable as int on 32-bit targets.
const MaxByteLength = math.MaxInt32

// ArrayBuffer is a single contiguous, heap-allocated byte region. Its
// backing memory is never reallocated or moved while live, which is what
// makes the zero-copy views in this package valid; it is released exactly
// once, by whichever of Detach or Close runs first.
//
// Views hold non-owning references. Any number of DataViews and
// TypedArrays may alias one buffer; writes through one alias are
// immediately visible through the others.
type ArrayBuffer struct {
	data     []byte
	detached bool
}

// New allocates a zero-initialized buffer of byteLength bytes.
func New(byteLength int) (*ArrayBuffer, error) {
	if byteLength < 0 || byteLength > MaxByteLength {
		return nil, errors.AllocationFailed(byteLength)
	}
	return &ArrayBuffer{data: make([]byte, byteLength)}, nil
}

// ByteLength returns the buffer's size, or 0 once detached.
func (b *ArrayBuffer) ByteLength() int {
	if b.detached {
		return 0
	}
	return len(b.data)
}

// Detached reports whether the buffer has been detached.
func (b *ArrayBuffer) Detached() bool {
	return b.detached
}

// Detach releases the buffer's memory early and marks it permanently
// empty. Every outstanding view becomes unusable at its next access.
// Detaching an already-detached buffer is a no-op.
func (b *ArrayBuffer) Detach() {
	if b.detached {
		return
	}
	b.release()
	b.detached = true
	bufLogger().Debug("buffer detached")
}

// Close tears the buffer down. If the buffer was already detached the
// memory is not released a second time. A closed buffer behaves exactly
// like a detached one.
func (b *ArrayBuffer) Close() {
	if b.detached {
		return
	}
	b.release()
	b.detached = true
}

// release is the single point where backing memory is given up; it is
// reachable once per buffer, from either Detach or Close.
func (b *ArrayBuffer) release() {
	b.data = nil
}

// Bytes returns the whole buffer as an aliasing slice. The slice stays
// valid only while the buffer is not detached.
func (b *ArrayBuffer) Bytes() ([]byte, error) {
	if b.detached {
		return nil, errors.Detached(errors.PhaseAccess)
	}
	return b.data, nil
}
