package source

import "testing"

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		other    Span
		expected Span
	}{
		{
			name:     "extends end",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 15, End: 30},
			expected: Span{File: 1, Start: 10, End: 30},
		},
		{
			name:     "extends start",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 2, End: 12},
			expected: Span{File: 1, Start: 2, End: 20},
		},
		{
			name:     "contained span is a no-op",
			span:     Span{File: 1, Start: 0, End: 20},
			other:    Span{File: 1, Start: 5, End: 10},
			expected: Span{File: 1, Start: 0, End: 20},
		},
		{
			name:     "different files leave span untouched",
			span:     Span{File: 1, Start: 0, End: 5},
			other:    Span{File: 2, Start: 0, End: 100},
			expected: Span{File: 1, Start: 0, End: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Cover(tt.other); got != tt.expected {
				t.Fatalf("Cover() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpanEmptyAndLen(t *testing.T) {
	s := Span{File: 0, Start: 5, End: 5}
	if !s.Empty() {
		t.Fatal("expected span to be empty")
	}
	if s.Len() != 0 {
		t.Fatalf("expected len 0, got %d", s.Len())
	}

	s2 := Span{File: 0, Start: 5, End: 9}
	if s2.Empty() {
		t.Fatal("expected span to be non-empty")
	}
	if s2.Len() != 4 {
		t.Fatalf("expected len 4, got %d", s2.Len())
	}
}
