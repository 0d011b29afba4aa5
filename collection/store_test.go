package collection

import "testing"

func TestSmallStore_InlineAppend(t *testing.T) {
	var s smallStore[int]

	for i := 0; i < inlineCap; i++ {
		s.Append(i * 10)
		if !s.IsInline() {
			t.Fatalf("promoted after %d elements, want inline up to %d", i+1, inlineCap)
		}
	}
	if s.Len() != inlineCap {
		t.Fatalf("Len() = %d, want %d", s.Len(), inlineCap)
	}
	for i := 0; i < inlineCap; i++ {
		if got := s.Get(i); got != i*10 {
			t.Fatalf("Get(%d) = %d, want %d", i, got, i*10)
		}
	}
}

func TestSmallStore_PromotionIsOneWay(t *testing.T) {
	var s smallStore[int]

	for i := 0; i < inlineCap+1; i++ {
		s.Append(i)
	}
	if s.IsInline() {
		t.Fatal("expected promotion after exceeding inline capacity")
	}
	if s.Len() != inlineCap+1 {
		t.Fatalf("Len() = %d, want %d", s.Len(), inlineCap+1)
	}
	// Elements must survive promotion in order.
	for i := 0; i < inlineCap+1; i++ {
		if got := s.Get(i); got != i {
			t.Fatalf("Get(%d) = %d, want %d", i, got, i)
		}
	}

	// Removals below the inline threshold must not demote.
	for s.Len() > 1 {
		s.RemoveAt(s.Len() - 1)
	}
	if s.IsInline() {
		t.Fatal("store demoted to inline after removals")
	}
	s.Clear()
	if s.IsInline() {
		t.Fatal("store demoted to inline after Clear")
	}
}

func TestSmallStore_InsertShifts(t *testing.T) {
	tests := []struct {
		name    string
		seed    []int
		insertI int
		insertV int
		want    []int
	}{
		{"front inline", []int{2, 3}, 0, 1, []int{1, 2, 3}},
		{"middle inline", []int{1, 3}, 1, 2, []int{1, 2, 3}},
		{"end inline", []int{1, 2}, 2, 3, []int{1, 2, 3}},
		{"insert causing promotion", []int{1, 2, 3, 4}, 2, 99, []int{1, 2, 99, 3, 4}},
		{"front after promotion", []int{1, 2, 3, 4, 5}, 0, 0, []int{0, 1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s smallStore[int]
			for _, v := range tt.seed {
				s.Append(v)
			}
			s.Insert(tt.insertI, tt.insertV)
			if s.Len() != len(tt.want) {
				t.Fatalf("Len() = %d, want %d", s.Len(), len(tt.want))
			}
			for i, want := range tt.want {
				if got := s.Get(i); got != want {
					t.Fatalf("Get(%d) = %d, want %d", i, got, want)
				}
			}
		})
	}
}

func TestSmallStore_RemoveAt(t *testing.T) {
	var s smallStore[string]
	for _, v := range []string{"a", "b", "c"} {
		s.Append(v)
	}

	if got := s.RemoveAt(1); got != "b" {
		t.Fatalf("RemoveAt(1) = %q, want %q", got, "b")
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if s.Get(0) != "a" || s.Get(1) != "c" {
		t.Fatalf("unexpected contents after remove: %q, %q", s.Get(0), s.Get(1))
	}
	// The vacated inline slot must not pin the removed string.
	if s.inline[2] != "" {
		t.Fatalf("vacated slot holds %q, want zero value", s.inline[2])
	}
}

func TestSmallStore_EnsureCapacity(t *testing.T) {
	var s smallStore[int]

	s.EnsureCapacity(inlineCap)
	if !s.IsInline() {
		t.Fatal("reserving within inline capacity should not promote")
	}

	s.Append(7)
	s.EnsureCapacity(100)
	if s.IsInline() {
		t.Fatal("reserving beyond inline capacity should promote early")
	}
	if s.Len() != 1 || s.Get(0) != 7 {
		t.Fatal("promotion during reserve lost elements")
	}
	if cap(s.heap) < 100 {
		t.Fatalf("cap = %d, want >= 100", cap(s.heap))
	}
}
