package collection

import (
	webidlruntime "github.com/wippyai/webidl-runtime"
	"github.com/wippyai/webidl-runtime/errors"
)

// ArrayFromValue builds an Array from an array-like host value, converting
// each element with conv. Capacity is reserved up front so conversion of a
// long value promotes at most once.
func ArrayFromValue[T any](v webidlruntime.Value, conv func(webidlruntime.Value) (T, error), hooks Hooks[T]) (*Array[T], error) {
	if v.Kind() != webidlruntime.KindArrayLike {
		return nil, errors.New(errors.PhaseConstruct, errors.KindInvalidData).
			Detail("expected array-like value, got %s", v.Kind()).
			Build()
	}
	a := NewArray[T](hooks)
	n := v.Len()
	a.EnsureCapacity(n)
	for i := 0; i < n; i++ {
		ev, ok := v.Index(i)
		if !ok {
			return nil, errors.IndexOutOfBounds(errors.PhaseConstruct, i, n)
		}
		elem, err := conv(ev)
		if err != nil {
			return nil, errors.New(errors.PhaseConstruct, errors.KindInvalidData).
				Detail("element %d", i).
				Cause(err).
				Build()
		}
		a.Append(elem)
	}
	return a, nil
}

// SetlikeFromValue builds a Setlike from an array-like host value,
// collapsing duplicates in first-occurrence order.
func SetlikeFromValue[K comparable](v webidlruntime.Value, conv func(webidlruntime.Value) (K, error)) (*Setlike[K], error) {
	if v.Kind() != webidlruntime.KindArrayLike {
		return nil, errors.New(errors.PhaseConstruct, errors.KindInvalidData).
			Detail("expected array-like value, got %s", v.Kind()).
			Build()
	}
	s := NewSetlike[K]()
	n := v.Len()
	for i := 0; i < n; i++ {
		ev, ok := v.Index(i)
		if !ok {
			return nil, errors.IndexOutOfBounds(errors.PhaseConstruct, i, n)
		}
		member, err := conv(ev)
		if err != nil {
			return nil, errors.New(errors.PhaseConstruct, errors.KindInvalidData).
				Detail("element %d", i).
				Cause(err).
				Build()
		}
		if err := s.Add(member); err != nil {
			return nil, err
		}
	}
	return s, nil
}
