// Package stopwords builds the stopword policy shared by the text
// normalizer and the TF-IDF stop list. The policy is assembled once at
// startup from the built-in French base set plus deployment-specific
// additions and removals, and is read-only afterwards.
package stopwords

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type Policy struct {
	words map[string]struct{}
}

// New builds a policy from the base French set, extended with additions and
// pruned by removals. All entries are compared in normalized form (lower
// case, diacritics stripped), so "numérique" and "numerique" name the same
// stopword.
func New(additions, removals []string) *Policy {
	words := make(map[string]struct{}, len(frenchBase)+len(additions))
	for _, w := range frenchBase {
		words[Normalize(w)] = struct{}{}
	}
	for _, w := range additions {
		words[Normalize(w)] = struct{}{}
	}
	for _, w := range removals {
		delete(words, Normalize(w))
	}
	return &Policy{words: words}
}

// Contains reports whether word is a stopword. The argument is normalized
// before lookup.
func (p *Policy) Contains(word string) bool {
	_, ok := p.words[Normalize(word)]
	return ok
}

// Words returns the normalized stopword set, sorted, for use as a TF-IDF
// stop list.
func (p *Policy) Words() []string {
	out := make([]string, 0, len(p.words))
	for w := range p.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases word and strips its diacritics.
func Normalize(word string) string {
	lowered := strings.ToLower(strings.TrimSpace(word))
	stripped, _, err := transform.String(stripDiacritics, lowered)
	if err != nil {
		return lowered
	}
	return stripped
}
