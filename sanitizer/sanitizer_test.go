package sanitizer

import "testing"

func TestLowerCaseSanitize(t *testing.T) {
	s := NewLowerCase()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"whitespace only", "  ", ""},
		{"leading whitespace", " a", "a"},
		{"trailing whitespace", "b ", "b"},
		{"surrounding whitespace", " c ", "c"},
		{"mixed case", "AbC", "abc"},
		{"already lower", "abc", "abc"},
		{"non-ascii", "ĄbĆ", "ąbć"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCaseSensitiveSanitize(t *testing.T) {
	s := NewCaseSensitive()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"whitespace only", "  ", ""},
		{"surrounding whitespace", " AbC ", "AbC"},
		{"case preserved", "AbC", "AbC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizersAreIdempotent(t *testing.T) {
	samples := []string{"", "  ", " AbC ", "abc", "HELLO world", " ĄbĆ "}

	for _, s := range []Sanitizer{NewLowerCase(), NewCaseSensitive()} {
		for _, sample := range samples {
			once := s.Sanitize(sample)
			twice := s.Sanitize(once)
			if once != twice {
				t.Errorf("%T not idempotent for %q: %q != %q", s, sample, once, twice)
			}
		}
	}
}
