package buffer

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/wippyai/webidl-runtime/errors"
)

func TestNewTypedArray_Validation(t *testing.T) {
	buf, _ := New(16)

	tests := []struct {
		name       string
		byteOffset int
		length     int
		wantKind   errors.Kind
	}{
		{"fits exactly", 0, 4, ""},
		{"offset misaligned", 2, 1, errors.KindInvalidOffset},
		{"negative offset", -4, 1, errors.KindOutOfBounds},
		{"negative length", 0, -1, errors.KindOutOfBounds},
		{"range exceeds buffer", 8, 3, errors.KindOutOfBounds},
		{"tail window", 8, 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTypedArray[uint32](buf, tt.byteOffset, tt.length)
			if tt.wantKind == "" {
				if err != nil {
					t.Fatalf("NewTypedArray: %v", err)
				}
				return
			}
			if !stderrors.Is(err, &errors.Error{Kind: tt.wantKind}) {
				t.Fatalf("NewTypedArray: %v, want kind %s", err, tt.wantKind)
			}
		})
	}
}

func TestNewTypedArray_HugeLength(t *testing.T) {
	buf, _ := New(16)

	// Lengths whose byte size wraps the int range must fail construction
	// with out_of_bounds; admitting them would turn a later Get into a
	// runtime index panic.
	lengths := []int{
		math.MaxInt/8 + 1, // length*8 wraps negative
		math.MaxInt/4 + 1, // wraps to a small positive value for 8-byte elements
		math.MaxInt,
	}
	for _, length := range lengths {
		ta, err := NewTypedArray[uint64](buf, 0, length)
		if !stderrors.Is(err, errors.ErrOutOfBounds) {
			t.Fatalf("NewTypedArray(length=%d): %v, want out_of_bounds", length, err)
		}
		if ta != nil {
			t.Fatalf("NewTypedArray(length=%d) returned a view over a 16-byte buffer", length)
		}
	}

	// Offset and length that individually fit but jointly exceed the
	// buffer must fail the same way.
	if _, err := NewTypedArray[uint64](buf, 16, 1); !stderrors.Is(err, errors.ErrOutOfBounds) {
		t.Fatalf("NewTypedArray(offset=16, length=1): %v, want out_of_bounds", err)
	}
	if _, err := NewTypedArray[uint64](buf, math.MaxInt - 7, 0); !stderrors.Is(err, errors.ErrOutOfBounds) {
		t.Fatalf("NewTypedArray(offset=MaxInt-7): %v, want out_of_bounds", err)
	}
}

func TestNewTypedArray_DetachedBuffer(t *testing.T) {
	buf, _ := New(16)
	buf.Detach()
	if _, err := NewTypedArray[uint32](buf, 0, 4); !stderrors.Is(err, errors.ErrDetached) {
		t.Fatalf("construction on detached buffer: %v, want detached", err)
	}
}

func TestTypedArray_GetSet(t *testing.T) {
	buf, _ := New(16)
	ta, err := NewTypedArray[uint32](buf, 0, 4)
	if err != nil {
		t.Fatalf("NewTypedArray: %v", err)
	}

	if err := ta.Set(0, 42); err != nil {
		t.Fatalf("Set(0): %v", err)
	}
	if err := ta.Set(3, 7); err != nil {
		t.Fatalf("Set(3): %v", err)
	}
	if v, err := ta.Get(0); err != nil || v != 42 {
		t.Fatalf("Get(0) = %d, %v", v, err)
	}
	if v, err := ta.Get(3); err != nil || v != 7 {
		t.Fatalf("Get(3) = %d, %v", v, err)
	}

	if _, err := ta.Get(4); !stderrors.Is(err, errors.ErrIndexOutOfBounds) {
		t.Fatalf("Get(4): %v, want index_out_of_bounds", err)
	}
	if err := ta.Set(-1, 0); !stderrors.Is(err, errors.ErrIndexOutOfBounds) {
		t.Fatalf("Set(-1): %v, want index_out_of_bounds", err)
	}
}

func TestTypedArray_DetachInvalidation(t *testing.T) {
	buf, _ := New(1024)
	ta, _ := NewTypedArray[uint32](buf, 0, 256)

	other, _ := New(1024)
	otherView, _ := NewTypedArray[uint32](other, 0, 256)
	otherView.Set(5, 99)

	buf.Detach()

	if _, err := ta.Get(0); !stderrors.Is(err, errors.ErrDetached) {
		t.Fatalf("Get after detach: %v, want detached", err)
	}
	if err := ta.Set(0, 1); !stderrors.Is(err, errors.ErrDetached) {
		t.Fatalf("Set after detach: %v, want detached", err)
	}
	if _, err := ta.AsSlice(); !stderrors.Is(err, errors.ErrDetached) {
		t.Fatalf("AsSlice after detach: %v, want detached", err)
	}

	// A view over a different live buffer is unaffected.
	if v, err := otherView.Get(5); err != nil || v != 99 {
		t.Fatalf("independent view: Get(5) = %d, %v", v, err)
	}
}

func TestTypedArray_AsSliceAliases(t *testing.T) {
	buf, _ := New(1024)
	ta, _ := NewTypedArray[uint32](buf, 0, 256)

	s, err := ta.AsSlice()
	if err != nil {
		t.Fatalf("AsSlice: %v", err)
	}
	if len(s) != 256 {
		t.Fatalf("len(AsSlice()) = %d, want 256", len(s))
	}

	// A write through the slice is visible through the element API and
	// the other way round: same backing memory, no copy.
	s[100] = 0xDEAD
	if v, err := ta.Get(100); err != nil || v != 0xDEAD {
		t.Fatalf("Get(100) = %#x, %v, want 0xDEAD", v, err)
	}
	ta.Set(101, 0xBEEF)
	if s[101] != 0xBEEF {
		t.Fatalf("slice[101] = %#x, want 0xBEEF", s[101])
	}
}

func TestTypedArray_EmptySlice(t *testing.T) {
	buf, _ := New(16)
	ta, _ := NewTypedArray[uint64](buf, 16, 0)
	s, err := ta.AsSlice()
	if err != nil {
		t.Fatalf("AsSlice on empty view: %v", err)
	}
	if len(s) != 0 {
		t.Fatalf("len = %d, want 0", len(s))
	}
}

func TestTypedArray_OffsetWindow(t *testing.T) {
	buf, _ := New(16)
	raw, _ := buf.Bytes()

	ta, err := NewTypedArray[uint16](buf, 4, 2)
	if err != nil {
		t.Fatalf("NewTypedArray: %v", err)
	}
	if err := ta.Set(1, 0x0102); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Element 1 of a u16 view at byte offset 4 lives at bytes 6..7.
	if raw[6] == 0 && raw[7] == 0 {
		t.Fatal("write did not land in the expected byte range")
	}
	if raw[0] != 0 || raw[5] != 0 || raw[8] != 0 {
		t.Fatal("write leaked outside the view's byte range")
	}
}

// Scenario: 16-byte buffer, 4-element u32 view, writes, then detach.
func TestTypedArray_WriteThenDetach(t *testing.T) {
	buf, err := New(16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ta, err := NewTypedArray[uint32](buf, 0, 4)
	if err != nil {
		t.Fatalf("NewTypedArray: %v", err)
	}

	if err := ta.Set(0, 42); err != nil {
		t.Fatalf("Set(0): %v", err)
	}
	if err := ta.Set(3, 7); err != nil {
		t.Fatalf("Set(3): %v", err)
	}

	buf.Detach()

	if _, err := ta.Get(0); !stderrors.Is(err, errors.ErrDetached) {
		t.Fatalf("Get(0) after detach: %v, want detached", err)
	}
}
