// Package tokenizer splits sanitized text into word tokens. Decorating
// tokenizers wrap an inner tokenizer to post-process its output.
package tokenizer

import "regexp"

// Tokenizer splits a sanitized string into an ordered sequence of non-empty
// word tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// defaultSeparator matches runs of characters that are not letters (Latin or
// Cyrillic), digits, hyphens or apostrophes.
var defaultSeparator = regexp.MustCompile(`(?i)[^a-zа-яё0-9\-']+`)

// Simple splits strings on separator character runs and returns all
// non-empty substrings in order.
type Simple struct {
	separator *regexp.Regexp
}

// NewSimple creates a tokenizer using the default separator pattern.
func NewSimple() *Simple {
	return &Simple{separator: defaultSeparator}
}

// NewSimpleWithSeparator creates a tokenizer splitting on a custom separator
// pattern, for callers that need a different alphabet.
func NewSimpleWithSeparator(separator *regexp.Regexp) *Simple {
	return &Simple{separator: separator}
}

func (t *Simple) Tokenize(text string) []string {
	parts := t.separator.Split(text, -1)
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}
