// Package sanitizer normalizes raw text before tokenization. The same
// sanitizer instance must be applied to indexed field values, query text and
// highlighter input so token matching stays symmetric.
package sanitizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Sanitizer normalizes a raw string. Implementations must accept empty input
// and return the empty string, never fail, and be idempotent.
type Sanitizer interface {
	Sanitize(text string) string
}

// CaseSensitive trims surrounding whitespace and preserves case, enforcing
// case-sensitive text matches.
type CaseSensitive struct{}

// NewCaseSensitive creates a case-preserving sanitizer.
func NewCaseSensitive() *CaseSensitive {
	return &CaseSensitive{}
}

func (s *CaseSensitive) Sanitize(text string) string {
	return strings.TrimSpace(text)
}

// LowerCase converts text to a locale-friendly lower-case form and trims
// surrounding whitespace.
type LowerCase struct {
	caser cases.Caser
}

// NewLowerCase creates a lower-casing sanitizer using an undetermined-locale
// caser, which handles case folding beyond ASCII.
func NewLowerCase() *LowerCase {
	return &LowerCase{caser: cases.Lower(language.Und)}
}

func (s *LowerCase) Sanitize(text string) string {
	return strings.TrimSpace(s.caser.String(text))
}
