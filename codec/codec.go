package codec

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/wippyai/webidl-runtime/buffer"
	"github.com/wippyai/webidl-runtime/collection"
	"github.com/wippyai/webidl-runtime/errors"
)

// EncodeArray snapshots an array's elements, in index order, as a msgpack
// array.
func EncodeArray[T any](a *collection.Array[T]) ([]byte, error) {
	vals := make([]T, 0, a.Len())
	for _, v := range a.All() {
		vals = append(vals, v)
	}
	data, err := msgpack.Marshal(vals)
	if err != nil {
		return nil, encodeErr(err)
	}
	return data, nil
}

// DecodeArray rebuilds an array from a snapshot. hooks may be nil; when
// set, it fires for each restored element, as if the elements were
// appended one by one.
func DecodeArray[T any](data []byte, hooks collection.Hooks[T]) (*collection.Array[T], error) {
	var vals []T
	if err := msgpack.Unmarshal(data, &vals); err != nil {
		return nil, decodeErr(err)
	}
	a := collection.NewArray[T](hooks)
	a.EnsureCapacity(len(vals))
	for _, v := range vals {
		a.Append(v)
	}
	return a, nil
}

// EncodeMap snapshots a map as a msgpack array of key/value pairs. A pair
// list rather than a msgpack map: map encodings do not guarantee entry
// order, and insertion order is part of the collection's contract.
func EncodeMap[K comparable, V any](m *collection.Maplike[K, V]) ([]byte, error) {
	entries := make([]collection.Entry[K, V], 0, m.Len())
	for k, v := range m.Entries() {
		entries = append(entries, collection.Entry[K, V]{Key: k, Value: v})
	}
	data, err := msgpack.Marshal(entries)
	if err != nil {
		return nil, encodeErr(err)
	}
	return data, nil
}

// DecodeMap rebuilds a mutable map from a snapshot, preserving entry
// order.
func DecodeMap[K comparable, V any](data []byte) (*collection.Maplike[K, V], error) {
	entries, err := decodeEntries[K, V](data)
	if err != nil {
		return nil, err
	}
	m := collection.NewMaplike[K, V]()
	for _, e := range entries {
		if err := m.Set(e.Key, e.Value); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// DecodeReadonlyMap rebuilds a read-only map from a snapshot.
func DecodeReadonlyMap[K comparable, V any](data []byte) (*collection.Maplike[K, V], error) {
	entries, err := decodeEntries[K, V](data)
	if err != nil {
		return nil, err
	}
	return collection.NewReadonlyMaplike(entries...), nil
}

func decodeEntries[K comparable, V any](data []byte) ([]collection.Entry[K, V], error) {
	var entries []collection.Entry[K, V]
	if err := msgpack.Unmarshal(data, &entries); err != nil {
		return nil, decodeErr(err)
	}
	return entries, nil
}

// EncodeSet snapshots a set's members in insertion order.
func EncodeSet[K comparable](s *collection.Setlike[K]) ([]byte, error) {
	vals := make([]K, 0, s.Len())
	for v := range s.Values() {
		vals = append(vals, v)
	}
	data, err := msgpack.Marshal(vals)
	if err != nil {
		return nil, encodeErr(err)
	}
	return data, nil
}

// DecodeSet rebuilds a mutable set from a snapshot.
func DecodeSet[K comparable](data []byte) (*collection.Setlike[K], error) {
	vals, err := decodeMembers[K](data)
	if err != nil {
		return nil, err
	}
	s := collection.NewSetlike[K]()
	for _, v := range vals {
		if err := s.Add(v); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// DecodeReadonlySet rebuilds a read-only set from a snapshot.
func DecodeReadonlySet[K comparable](data []byte) (*collection.Setlike[K], error) {
	vals, err := decodeMembers[K](data)
	if err != nil {
		return nil, err
	}
	return collection.NewReadonlySetlike(vals...), nil
}

func decodeMembers[K comparable](data []byte) ([]K, error) {
	var vals []K
	if err := msgpack.Unmarshal(data, &vals); err != nil {
		return nil, decodeErr(err)
	}
	return vals, nil
}

// EncodeBuffer snapshots a buffer's bytes as msgpack bin. Encoding a
// detached buffer fails; there is nothing left to snapshot.
func EncodeBuffer(b *buffer.ArrayBuffer) ([]byte, error) {
	raw, err := b.Bytes()
	if err != nil {
		return nil, err
	}
	data, err := msgpack.Marshal(raw)
	if err != nil {
		return nil, encodeErr(err)
	}
	return data, nil
}

// DecodeBuffer rebuilds a fresh, attached buffer from a snapshot.
func DecodeBuffer(data []byte) (*buffer.ArrayBuffer, error) {
	var raw []byte
	if err := msgpack.Unmarshal(data, &raw); err != nil {
		return nil, decodeErr(err)
	}
	b, err := buffer.New(len(raw))
	if err != nil {
		return nil, err
	}
	dst, err := b.Bytes()
	if err != nil {
		return nil, err
	}
	copy(dst, raw)
	return b, nil
}

func encodeErr(cause error) *errors.Error {
	return errors.New(errors.PhaseEncode, errors.KindInvalidData).Cause(cause).Build()
}

func decodeErr(cause error) *errors.Error {
	return errors.New(errors.PhaseDecode, errors.KindInvalidData).Cause(cause).Build()
}
