package span

import "testing"

func TestMergeCoversBothRanges(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{"disjoint", New(1, 0, 3), New(1, 7, 9), Span{Src: 1, Start: 0, End: 9}},
		{"overlapping", New(1, 2, 6), New(1, 4, 8), Span{Src: 1, Start: 2, End: 8}},
		{"contained", New(1, 0, 10), New(1, 3, 4), Span{Src: 1, Start: 0, End: 10}},
		{"reversed-args", New(1, 7, 9), New(1, 0, 3), Span{Src: 1, Start: 0, End: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Merge(tt.b)
			if got != tt.expected {
				t.Fatalf("merge wrong. expected=%v, got=%v", tt.expected, got)
			}
		})
	}
}

func TestMergeAcrossSourcesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when merging spans from different sources")
		}
	}()

	New(1, 0, 3).Merge(New(2, 0, 3))
}

func TestLenAndEmpty(t *testing.T) {
	s := New(1, 4, 9)
	if s.Len() != 5 {
		t.Fatalf("expected length 5, got %d", s.Len())
	}
	if s.IsEmpty() {
		t.Fatalf("expected non-empty span")
	}

	empty := New(1, 4, 4)
	if !empty.IsEmpty() {
		t.Fatalf("expected empty span")
	}
}

func TestRangeProjection(t *testing.T) {
	offset, length := New(1, 4, 9).Range()
	if offset != 4 || length != 5 {
		t.Fatalf("expected (4, 5), got (%d, %d)", offset, length)
	}
}

func TestSpannedMapPreservesSpan(t *testing.T) {
	s := NewSpanned(21, New(1, 2, 4))

	doubled := Map(s, func(v int) int { return v * 2 })
	if doubled.Inner != 42 {
		t.Fatalf("expected mapped value 42, got %d", doubled.Inner)
	}
	if doubled.Span != s.Span {
		t.Fatalf("map must preserve the span: expected=%v, got=%v", s.Span, doubled.Span)
	}
}

func TestSpannedWithSpan(t *testing.T) {
	s := NewSpanned("x", New(1, 0, 1))
	moved := s.WithSpan(New(1, 5, 6))

	if moved.Inner != "x" {
		t.Fatalf("WithSpan must not change the value")
	}
	if moved.Span != New(1, 5, 6) {
		t.Fatalf("expected replaced span, got %v", moved.Span)
	}
}

func TestSpannedEquality(t *testing.T) {
	a := NewSpanned("x", New(1, 0, 1))
	b := NewSpanned("x", New(1, 0, 1))
	c := NewSpanned("x", New(1, 0, 2))

	if a != b {
		t.Fatalf("equal value and span must compare equal")
	}
	if a == c {
		t.Fatalf("differing spans must not compare equal")
	}
}
