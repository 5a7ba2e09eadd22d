package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/memsearch/memsearch/sanitizer"
	"github.com/memsearch/memsearch/strategy"
)

func TestHighlightPrefixMatches(t *testing.T) {
	h := NewTokenHighlighter(nil, nil, "")

	tests := []struct {
		name   string
		text   string
		tokens []string
		want   string
	}{
		{"empty text and tokens", "", []string{}, ""},
		{"prefix inside word", "john wayne", []string{"wa"}, "john <mark>wa</mark>yne"},
		{"full word", "john wayne", []string{"john"}, "<mark>john</mark> wayne"},
		{"both words", "john wayne", []string{"jo", "way"}, "<mark>jo</mark>hn <mark>way</mark>ne"},
		{"no matching token", "john wayne", []string{"zz"}, "john wayne"},
		{"query case folded", "john wayne", []string{"WAY"}, "john <mark>way</mark>ne"},
		{"text case preserved", "John Wayne", []string{"wa"}, "John <mark>Wa</mark>yne"},
		{"repeated word", "node and node", []string{"node"}, "<mark>node</mark> and <mark>node</mark>"},
		{"no tokens", "john wayne", []string{}, "john wayne"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Highlight(tt.text, tt.tokens))
		})
	}
}

func TestHighlightDoesNotDoubleWrap(t *testing.T) {
	// Two tokens matching different prefixes of the same word: only the
	// first satisfied match is wrapped, the rest of the word passes through
	// untouched.
	h := NewTokenHighlighter(nil, nil, "")

	got := h.Highlight("john wayne", []string{"w", "wa"})
	assert.Equal(t, "john <mark>w</mark>ayne", got)
}

func TestHighlightExactWordStrategy(t *testing.T) {
	h := NewTokenHighlighter(strategy.NewExactWord(), nil, "")

	assert.Equal(t, "<mark>john</mark> wayne", h.Highlight("john wayne", []string{"john"}))
	assert.Equal(t, "john wayne", h.Highlight("john wayne", []string{"zz"}))
}

func TestHighlightCustomWrapperTag(t *testing.T) {
	h := NewTokenHighlighter(nil, nil, "em")

	assert.Equal(t, "john <em>wa</em>yne", h.Highlight("john wayne", []string{"wa"}))
}

func TestHighlightCaseSensitiveSanitizer(t *testing.T) {
	h := NewTokenHighlighter(nil, sanitizer.NewCaseSensitive(), "")

	assert.Equal(t, "John Wayne", h.Highlight("John Wayne", []string{"wa"}))
	assert.Equal(t, "John <mark>Wa</mark>yne", h.Highlight("John Wayne", []string{"Wa"}))
}
