package tokenizer

import "github.com/kljensen/snowball/english"

// StemFunc rewrites a single token to its stem.
type StemFunc func(token string) string

// Stemming decorates an inner tokenizer and maps each of its tokens through
// a stem function, preserving order and count.
type Stemming struct {
	stem  StemFunc
	inner Tokenizer
}

// NewStemming creates a stemming tokenizer around inner.
func NewStemming(stem StemFunc, inner Tokenizer) *Stemming {
	return &Stemming{stem: stem, inner: inner}
}

// NewSnowballStemming creates a stemming tokenizer backed by the snowball
// English (Porter2) stemmer.
func NewSnowballStemming(inner Tokenizer) *Stemming {
	return NewStemming(func(token string) string {
		return english.Stem(token, false)
	}, inner)
}

func (t *Stemming) Tokenize(text string) []string {
	tokens := t.inner.Tokenize(text)
	stemmed := make([]string, len(tokens))
	for i, token := range tokens {
		stemmed[i] = t.stem(token)
	}
	return stemmed
}
