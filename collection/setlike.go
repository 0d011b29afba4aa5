package collection

import (
	"iter"

	"github.com/wippyai/webidl-runtime/errors"
)

// Setlike is the unique-value collection policy: insertion-ordered set
// semantics. It shares the keyed engine, storing members as keys with
// empty values.
type Setlike[K comparable] struct {
	m Maplike[K, struct{}]
}

// NewSetlike creates an empty mutable set.
func NewSetlike[K comparable]() *Setlike[K] {
	return &Setlike[K]{}
}

// NewReadonlySetlike creates a set pre-populated with values that rejects
// all further mutation. Duplicates collapse to the first occurrence.
func NewReadonlySetlike[K comparable](values ...K) *Setlike[K] {
	s := &Setlike[K]{}
	for _, v := range values {
		s.m.set(v, struct{}{})
	}
	s.m.readonly = true
	return s
}

// Len returns the number of members.
func (s *Setlike[K]) Len() int {
	return s.m.Len()
}

// IsInline reports whether members still live in inline storage.
func (s *Setlike[K]) IsInline() bool {
	return s.m.IsInline()
}

// Has reports whether value is a member.
func (s *Setlike[K]) Has(value K) bool {
	return s.m.Has(value)
}

// Add inserts value at the end; adding an existing member is a no-op that
// keeps its original position.
func (s *Setlike[K]) Add(value K) error {
	if s.m.readonly {
		return errors.Readonly("add")
	}
	s.m.set(value, struct{}{})
	return nil
}

// Delete removes value, reporting whether it was a member.
func (s *Setlike[K]) Delete(value K) (bool, error) {
	if s.m.readonly {
		return false, errors.Readonly("delete")
	}
	return s.m.Delete(value)
}

// Clear removes every member. A promoted set stays promoted.
func (s *Setlike[K]) Clear() error {
	if s.m.readonly {
		return errors.Readonly("clear")
	}
	return s.m.Clear()
}

// Values iterates members in insertion order.
func (s *Setlike[K]) Values() iter.Seq[K] {
	return s.m.Keys()
}

// Entries iterates members as key/value pairs where both sides are the
// member, mirroring the script-visible entries() of a set.
func (s *Setlike[K]) Entries() iter.Seq2[K, K] {
	return func(yield func(K, K) bool) {
		for v := range s.m.Keys() {
			if !yield(v, v) {
				return
			}
		}
	}
}
