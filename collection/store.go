package collection

import "slices"

// inlineCap is the number of elements a collection holds before its first
// heap allocation. Most bindings-layer collections never outgrow it.
const inlineCap = 4

// smallStore is the backing store selector shared by all collection
// policies: elements live in a fixed inline array until the fifth element
// arrives, at which point they are copied once into a growable heap slice.
//
// The heap slice is the discriminant. heap == nil means the inline prefix
// inline[:n] is authoritative; once promote runs, heap is never reset to
// nil and inline/n are dead, even if removals bring the size back under
// inlineCap. One-way promotion avoids churn at the boundary.
type smallStore[T any] struct {
	inline [inlineCap]T
	n      int
	heap   []T
}

// IsInline reports whether elements still live in the inline array.
func (s *smallStore[T]) IsInline() bool {
	return s.heap == nil
}

// Len returns the current logical length.
func (s *smallStore[T]) Len() int {
	if s.heap != nil {
		return len(s.heap)
	}
	return s.n
}

// live returns the authoritative element slice. Callers must not retain
// it across mutations; promotion moves the backing memory.
func (s *smallStore[T]) live() []T {
	if s.heap != nil {
		return s.heap
	}
	return s.inline[:s.n]
}

// promote copies the inline prefix into a fresh heap slice with room for
// at least capHint elements. The inline region is zeroed so vacated slots
// do not pin referents.
func (s *smallStore[T]) promote(capHint int) {
	if capHint < 2*inlineCap {
		capHint = 2 * inlineCap
	}
	h := make([]T, s.n, capHint)
	copy(h, s.inline[:s.n])
	clear(s.inline[:])
	s.n = 0
	s.heap = h
	storeLogger().Debug("collection promoted to heap storage")
}

// Get returns the element at i. The caller bounds-checks first.
func (s *smallStore[T]) Get(i int) T {
	return s.live()[i]
}

// Set overwrites the element at i. The caller bounds-checks first.
func (s *smallStore[T]) Set(i int, v T) {
	s.live()[i] = v
}

// Append adds v at the end, promoting when the inline array is full.
func (s *smallStore[T]) Append(v T) {
	if s.heap == nil {
		if s.n < inlineCap {
			s.inline[s.n] = v
			s.n++
			return
		}
		s.promote(s.n + 1)
	}
	s.heap = append(s.heap, v)
}

// Insert places v at index i, shifting later elements right. The caller
// guarantees 0 <= i <= Len().
func (s *smallStore[T]) Insert(i int, v T) {
	if s.heap == nil {
		if s.n < inlineCap {
			copy(s.inline[i+1:s.n+1], s.inline[i:s.n])
			s.inline[i] = v
			s.n++
			return
		}
		s.promote(s.n + 1)
	}
	s.heap = append(s.heap, v)
	copy(s.heap[i+1:], s.heap[i:len(s.heap)-1])
	s.heap[i] = v
}

// RemoveAt deletes and returns the element at index i, shifting later
// elements left. The caller guarantees 0 <= i < Len(). The vacated slot
// is zeroed.
func (s *smallStore[T]) RemoveAt(i int) T {
	var zero T
	if s.heap == nil {
		old := s.inline[i]
		copy(s.inline[i:s.n-1], s.inline[i+1:s.n])
		s.n--
		s.inline[s.n] = zero
		return old
	}
	old := s.heap[i]
	copy(s.heap[i:], s.heap[i+1:])
	s.heap[len(s.heap)-1] = zero
	s.heap = s.heap[:len(s.heap)-1]
	return old
}

// Clear removes all elements. A promoted store stays promoted.
func (s *smallStore[T]) Clear() {
	if s.heap != nil {
		clear(s.heap)
		s.heap = s.heap[:0]
		return
	}
	clear(s.inline[:s.n])
	s.n = 0
}

// EnsureCapacity reserves room for at least c elements, taking the same
// promotion path early when c exceeds the inline capacity.
func (s *smallStore[T]) EnsureCapacity(c int) {
	if s.heap == nil {
		if c <= inlineCap {
			return
		}
		s.promote(c)
		return
	}
	if extra := c - len(s.heap); extra > 0 {
		s.heap = slices.Grow(s.heap, extra)
	}
}
