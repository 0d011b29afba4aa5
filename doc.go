// Package webidlruntime provides the host-side runtime layer for a
// WebIDL-style type system: the value storage that sits between a
// dynamically-typed script value and statically-typed native code.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	webidlruntime/       Root package with the dynamic-value boundary contract
//	├── collection/      Hybrid inline/heap ordered collections (array, map, set)
//	├── buffer/          Owned byte buffers, data views and typed array views
//	├── codec/           msgpack snapshot encoding for collections and buffers
//	├── errors/          Structured error types for debugging
//	└── cmd/inspect      CLI and interactive TUI buffer inspector
//
// # Collections
//
// The collection package implements the ordered containers a bindings layer
// needs: an observable array with mutation hooks, an insertion-ordered map,
// and a unique-value set. All three keep their first four elements inline
// (no heap allocation) and promote once, permanently, to heap storage when
// a fifth element arrives:
//
//	arr := collection.NewArray[int32](nil)
//	arr.Append(1)
//	arr.Append(2)
//	v, ok := arr.Get(0) // 1, true
//
// # Buffers and Views
//
// The buffer package models ArrayBuffer, DataView and TypedArray. Views
// alias buffer memory without copying; detaching a buffer invalidates every
// view over it, checked on each access:
//
//	buf, _ := buffer.New(16)
//	ta, _ := buffer.NewTypedArray[uint32](buf, 0, 4)
//	ta.Set(0, 42)
//	buf.Detach()
//	_, err := ta.Get(0) // DetachedBuffer
//
// # Error Handling
//
// Every fallible operation returns a structured *errors.Error carrying a
// phase (construct, access, mutate, ...) and a kind (index_out_of_bounds,
// detached, readonly, ...), matchable with errors.Is.
//
// The core is single-threaded by contract: no operation suspends, and
// instances share no state with each other.
package webidlruntime
