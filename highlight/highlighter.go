// Package highlight wraps query token matches inside free text with a
// delimiter tag. It re-derives match boundaries from the same expansion
// strategy and sanitizer used for indexing, so highlighting and search stay
// consistent.
package highlight

import (
	"strings"

	"github.com/memsearch/memsearch/sanitizer"
	"github.com/memsearch/memsearch/strategy"
)

// TokenHighlighter highlights token occurrences within text by wrapping
// them with a tag pair, e.g. <mark>...</mark>.
//
// The index strategy and sanitizer must be the same instances (or at least
// the same configuration) used for indexing, or highlighting will silently
// mismatch. Only the exact-word and prefix strategies are supported; the
// all-substrings strategy does not produce usable highlight boundaries.
type TokenHighlighter struct {
	indexStrategy strategy.IndexStrategy
	sanitizer     sanitizer.Sanitizer
	wrapperTag    string
}

// NewTokenHighlighter creates a highlighter. Nil strategy and sanitizer
// default to prefix expansion and lower-casing, matching the Search
// defaults; an empty wrapper tag defaults to "mark".
func NewTokenHighlighter(indexStrategy strategy.IndexStrategy, s sanitizer.Sanitizer, wrapperTag string) *TokenHighlighter {
	if indexStrategy == nil {
		indexStrategy = strategy.NewPrefix()
	}
	if s == nil {
		s = sanitizer.NewLowerCase()
	}
	if wrapperTag == "" {
		wrapperTag = "mark"
	}
	return &TokenHighlighter{
		indexStrategy: indexStrategy,
		sanitizer:     s,
		wrapperTag:    wrapperTag,
	}
}

// Highlight wraps every word matching one of the query tokens, e.g.
// Highlight("john wayne", []string{"wa"}) returns "john <mark>wa</mark>yne".
//
// The text is scanned one character at a time while two buffers accumulate
// the literal and sanitized forms of the current word; a space resets both.
// A word position matches when the sanitized buffer is an expanded key AND
// itself one of the sanitized query tokens recorded for that key — the
// second condition guards against a key that only matches as a prefix
// continuation of a different token. The first satisfied match per word is
// wrapped; the rest of the word passes through verbatim so wrapped content
// is never re-matched.
func (h *TokenHighlighter) Highlight(text string, tokens []string) string {
	// Map every expanded key back to the sanitized token(s) that produced it.
	tokenDictionary := make(map[string][]string)
	for _, raw := range tokens {
		token := h.sanitizer.Sanitize(raw)
		for _, expanded := range h.indexStrategy.ExpandToken(token) {
			tokenDictionary[expanded] = append(tokenDictionary[expanded], token)
		}
	}

	var out strings.Builder
	out.Grow(len(text))

	var word []rune // literal characters of the current word not yet written
	var sanitizedWord strings.Builder
	wrapped := false

	flushWord := func() {
		if len(word) > 0 {
			out.WriteString(string(word))
			word = word[:0]
		}
	}

	for _, r := range text {
		if r == ' ' {
			flushWord()
			out.WriteRune(' ')
			sanitizedWord.Reset()
			wrapped = false
			continue
		}

		word = append(word, r)
		sanitizedWord.WriteString(h.sanitizer.Sanitize(string(r)))

		if wrapped {
			continue
		}
		key := sanitizedWord.String()
		if containsToken(tokenDictionary[key], key) {
			out.WriteString(h.wrapText(string(word)))
			word = word[:0]
			wrapped = true
		}
	}
	flushWord()

	return out.String()
}

func (h *TokenHighlighter) wrapText(text string) string {
	return "<" + h.wrapperTag + ">" + text + "</" + h.wrapperTag + ">"
}

func containsToken(tokens []string, token string) bool {
	for _, t := range tokens {
		if t == token {
			return true
		}
	}
	return false
}
