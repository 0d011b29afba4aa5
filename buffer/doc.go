// Package buffer implements the runtime layer's memory model: an owned
// byte buffer (ArrayBuffer), a raw byte-level window (DataView) and an
// element-typed window (TypedArray), tied together by the detach protocol.
//
// # Ownership
//
// An ArrayBuffer owns its bytes. Views never do; they alias. The buffer's
// backing memory has a stable address for its whole attached lifetime,
// which is the invariant that makes TypedArray.AsSlice a safe zero-copy
// projection.
//
// # Detach
//
// Detach releases the buffer's memory early and is the only way to
// invalidate it before teardown:
//
//	buf, _ := buffer.New(1024)
//	ta, _ := buffer.NewTypedArray[uint32](buf, 0, 256)
//	buf.Detach()
//	_, err := ta.Get(0) // fails: detached
//
// Views re-check detachment on every access rather than caching validity
// at construction; a stale check would reintroduce exactly the
// use-after-free class this design exists to close. Memory is released
// once, by whichever of Detach or Close runs first.
//
// # Aliasing
//
// Any number of views may overlap the same buffer. Writes are
// last-writer-wins at the byte level with no internal locking; the
// package is single-goroutine by contract, like the rest of the library.
package buffer
