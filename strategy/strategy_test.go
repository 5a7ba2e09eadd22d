package strategy

import (
	"reflect"
	"testing"
)

func TestExactWordExpandToken(t *testing.T) {
	s := NewExactWord()

	tests := []struct {
		name  string
		token string
		want  []string
	}{
		{"empty token", "", []string{}},
		{"single character", "a", []string{"a"}},
		{"word", "cat", []string{"cat"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ExpandToken(tt.token)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExpandToken(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestPrefixExpandToken(t *testing.T) {
	s := NewPrefix()

	tests := []struct {
		name  string
		token string
		want  []string
	}{
		{"empty token", "", []string{}},
		{"single character", "a", []string{"a"}},
		{"word", "cat", []string{"c", "ca", "cat"}},
		{"multi-byte runes", "мир", []string{"м", "ми", "мир"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ExpandToken(tt.token)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExpandToken(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestPrefixExpandTokenKeyCount(t *testing.T) {
	// A token of n characters expands to exactly n keys, each a prefix of
	// the token in increasing length order.
	s := NewPrefix()
	token := "search"

	got := s.ExpandToken(token)
	if len(got) != len(token) {
		t.Fatalf("ExpandToken(%q) produced %d keys, want %d", token, len(got), len(token))
	}
	for i, key := range got {
		if key != token[:i+1] {
			t.Errorf("key %d = %q, want %q", i, key, token[:i+1])
		}
	}
}

func TestAllSubstringsExpandToken(t *testing.T) {
	s := NewAllSubstrings()

	tests := []struct {
		name  string
		token string
		want  []string
	}{
		{"empty token", "", []string{}},
		{"single character", "a", []string{"a"}},
		{"word", "cat", []string{"c", "ca", "cat", "a", "at", "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ExpandToken(tt.token)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExpandToken(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestAllSubstringsExpandTokenKeyCount(t *testing.T) {
	// A token of n characters expands to n*(n+1)/2 keys.
	s := NewAllSubstrings()

	for _, token := range []string{"a", "ab", "cat", "search", "repeated"} {
		n := len(token)
		got := s.ExpandToken(token)
		if want := n * (n + 1) / 2; len(got) != want {
			t.Errorf("ExpandToken(%q) produced %d keys, want %d", token, len(got), want)
		}
	}
}
