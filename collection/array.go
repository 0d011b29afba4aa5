package collection

import (
	"iter"

	"github.com/wippyai/webidl-runtime/errors"
)

// Hooks receives notifications after an Array mutation commits. Hooks run
// synchronously on the mutating goroutine and observe post-mutation state
// only. Mutating the same array from inside a hook is unsupported and its
// behavior is undefined.
type Hooks[T any] interface {
	// SetIndexedValue is called after an element is written at index,
	// whether by Set, Append or Insert.
	SetIndexedValue(index int, value T)

	// DeleteIndexedValue is called after the element at index is removed,
	// with the value it held.
	DeleteIndexedValue(index int, old T)
}

// Array is the indexed collection policy: ordinary array semantics,
// duplicates allowed, optional mutation hooks. The zero value is not
// usable; construct with NewArray.
type Array[T any] struct {
	store smallStore[T]
	hooks Hooks[T]
}

// NewArray creates an empty array. hooks may be nil.
func NewArray[T any](hooks Hooks[T]) *Array[T] {
	return &Array[T]{hooks: hooks}
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return a.store.Len()
}

// Get returns the element at index i, or false if i is out of range.
func (a *Array[T]) Get(i int) (T, bool) {
	if i < 0 || i >= a.store.Len() {
		var zero T
		return zero, false
	}
	return a.store.Get(i), true
}

// Set overwrites the element at index i.
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= a.store.Len() {
		return errors.IndexOutOfBounds(errors.PhaseMutate, i, a.store.Len())
	}
	a.store.Set(i, v)
	if a.hooks != nil {
		a.hooks.SetIndexedValue(i, v)
	}
	return nil
}

// Append adds v at the end.
func (a *Array[T]) Append(v T) {
	a.store.Append(v)
	if a.hooks != nil {
		a.hooks.SetIndexedValue(a.store.Len()-1, v)
	}
}

// Insert places v at index i, shifting later elements right. i == Len()
// is an append.
func (a *Array[T]) Insert(i int, v T) error {
	if i < 0 || i > a.store.Len() {
		return errors.IndexOutOfBounds(errors.PhaseMutate, i, a.store.Len())
	}
	a.store.Insert(i, v)
	if a.hooks != nil {
		a.hooks.SetIndexedValue(i, v)
	}
	return nil
}

// Remove deletes and returns the element at index i.
func (a *Array[T]) Remove(i int) (T, error) {
	if i < 0 || i >= a.store.Len() {
		var zero T
		return zero, errors.IndexOutOfBounds(errors.PhaseMutate, i, a.store.Len())
	}
	old := a.store.RemoveAt(i)
	if a.hooks != nil {
		a.hooks.DeleteIndexedValue(i, old)
	}
	return old, nil
}

// Pop removes and returns the last element, or false when empty.
func (a *Array[T]) Pop() (T, bool) {
	n := a.store.Len()
	if n == 0 {
		var zero T
		return zero, false
	}
	old := a.store.RemoveAt(n - 1)
	if a.hooks != nil {
		a.hooks.DeleteIndexedValue(n-1, old)
	}
	return old, true
}

// Clear removes every element, deleting from the highest index down so
// hooks observe a deterministic sequence.
func (a *Array[T]) Clear() {
	for i := a.store.Len() - 1; i >= 0; i-- {
		old := a.store.RemoveAt(i)
		if a.hooks != nil {
			a.hooks.DeleteIndexedValue(i, old)
		}
	}
}

// EnsureCapacity reserves room for at least c elements. Requesting more
// than the inline capacity promotes immediately.
func (a *Array[T]) EnsureCapacity(c int) {
	a.store.EnsureCapacity(c)
}

// IsInline reports whether elements still live in inline storage.
func (a *Array[T]) IsInline() bool {
	return a.store.IsInline()
}

// All iterates elements in index order. The array must not be mutated
// during iteration.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.store.live() {
			if !yield(i, v) {
				return
			}
		}
	}
}
