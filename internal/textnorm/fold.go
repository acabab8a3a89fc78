// Package textnorm provides the folding used when survey answers are compared
// against fixed phrase lists. Form answers arrive with inconsistent casing and
// with Portuguese diacritics in either composed or decomposed form, so plain
// lowercase comparison is not enough.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldChain = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Fold returns a canonical comparison key for s: surrounding whitespace
// trimmed, combining marks stripped, lowercased. Two answers that differ only
// in case, diacritics, or Unicode normalization fold to the same key.
func Fold(s string) string {
	folded, _, err := transform.String(foldChain, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// Set is a fold-keyed membership set built from a fixed phrase list.
type Set map[string]struct{}

// NewSet folds each phrase and returns the resulting set.
func NewSet(phrases []string) Set {
	s := make(Set, len(phrases))
	for _, p := range phrases {
		s[Fold(p)] = struct{}{}
	}
	return s
}

// Contains reports whether v folds to a member of the set.
func (s Set) Contains(v string) bool {
	_, ok := s[Fold(v)]
	return ok
}
