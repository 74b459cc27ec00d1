package utils

import "testing"

func TestStringHelper_NormalizeWhitespace(t *testing.T) {
	s := NewStringHelper()

	if got := s.NormalizeWhitespace("a \t b\n\nc"); got != "a b c" {
		t.Errorf("NormalizeWhitespace = %q, want %q", got, "a b c")
	}
}

func TestStringHelper_Truncate(t *testing.T) {
	s := NewStringHelper()

	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"Shorter than max", "abc", 5, "abc"},
		{"Exactly max", "abcde", 5, "abcde"},
		{"Cut without ellipsis", "abcdefgh", 5, "abcde"},
		{"Multibyte safe", "céad míle fáilte", 4, "céad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Truncate(tt.input, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}
}

func TestStringHelper_TruncateString(t *testing.T) {
	s := NewStringHelper()

	if got := s.TruncateString("abcdefgh", 5); got != "abcde..." {
		t.Errorf("TruncateString = %q, want %q", got, "abcde...")
	}
}
