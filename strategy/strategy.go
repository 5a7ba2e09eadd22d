// Package strategy defines token expansion policies. An index strategy
// expands one token into the set of index keys it is stored under, which
// determines what kind of partial matching the index supports.
package strategy

// IndexStrategy expands a token into index keys. For highlighting, the keys
// of the exact and prefix strategies are derivable from a growing prefix of
// the token in document order.
type IndexStrategy interface {
	ExpandToken(token string) []string
}

// ExactWord indexes tokens as-is, supporting exact word matches only.
type ExactWord struct{}

func NewExactWord() *ExactWord {
	return &ExactWord{}
}

func (s *ExactWord) ExpandToken(token string) []string {
	if token == "" {
		return []string{}
	}
	return []string{token}
}

// Prefix indexes every prefix of a token (e.g. "cat" is indexed as "c",
// "ca" and "cat"), supporting prefix search lookups.
type Prefix struct{}

func NewPrefix() *Prefix {
	return &Prefix{}
}

func (s *Prefix) ExpandToken(token string) []string {
	runes := []rune(token)
	expanded := make([]string, len(runes))
	for i := range runes {
		expanded[i] = string(runes[:i+1])
	}
	return expanded
}

// AllSubstrings indexes every contiguous substring of a token (e.g. "cat"
// is indexed as "c", "ca", "cat", "a", "at" and "t"). A token of n
// characters produces n*(n+1)/2 keys; duplicates are not removed, indexing
// the same (key, uid) pair twice is idempotent by contract.
type AllSubstrings struct{}

func NewAllSubstrings() *AllSubstrings {
	return &AllSubstrings{}
}

func (s *AllSubstrings) ExpandToken(token string) []string {
	runes := []rune(token)
	expanded := make([]string, 0, len(runes)*(len(runes)+1)/2)
	for i := range runes {
		for j := i + 1; j <= len(runes); j++ {
			expanded = append(expanded, string(runes[i:j]))
		}
	}
	return expanded
}
