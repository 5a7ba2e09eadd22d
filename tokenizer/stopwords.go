package tokenizer

// englishStopWords is a set of common English words that add little search
// value on their own.
var englishStopWords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "all": {}, "also": {}, "am": {},
	"an": {}, "and": {}, "any": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "because": {}, "been": {}, "but": {}, "by": {}, "can": {},
	"come": {}, "could": {}, "did": {}, "do": {}, "for": {}, "from": {},
	"get": {}, "had": {}, "has": {}, "have": {}, "he": {}, "her": {},
	"him": {}, "his": {}, "how": {}, "i": {}, "if": {}, "in": {},
	"into": {}, "is": {}, "it": {}, "its": {}, "just": {}, "me": {},
	"my": {}, "no": {}, "not": {}, "of": {}, "on": {}, "or": {},
	"other": {}, "our": {}, "out": {}, "over": {}, "she": {}, "so": {},
	"some": {}, "than": {}, "that": {}, "the": {}, "their": {}, "them": {},
	"then": {}, "there": {}, "these": {}, "they": {}, "this": {}, "to": {},
	"up": {}, "was": {}, "we": {}, "were": {}, "what": {}, "when": {},
	"which": {}, "who": {}, "will": {}, "with": {}, "would": {}, "you": {},
	"your": {},
}

// StopWords decorates an inner tokenizer and drops stop words from its
// output, keeping the order of the surviving tokens.
type StopWords struct {
	inner Tokenizer
	words map[string]struct{}
}

// NewStopWords creates a stop-word filtering tokenizer using the built-in
// English stop word set.
func NewStopWords(inner Tokenizer) *StopWords {
	return &StopWords{inner: inner, words: englishStopWords}
}

// NewStopWordsWithSet creates a stop-word filtering tokenizer with a custom
// word set.
func NewStopWordsWithSet(inner Tokenizer, words []string) *StopWords {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return &StopWords{inner: inner, words: set}
}

func (t *StopWords) Tokenize(text string) []string {
	tokens := t.inner.Tokenize(text)
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, stop := t.words[token]; !stop {
			kept = append(kept, token)
		}
	}
	return kept
}
