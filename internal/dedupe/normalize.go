package dedupe

import (
	"strings"
	"unicode"
)

// NormalizedPage is the canonical comparable form of one document page:
// its 0-based index and the set of lowercased, punctuation-stripped word
// tokens extracted from it. TokenCount is the set cardinality; repeated
// words on a page collapse before counting, so "more complete" always
// means "more distinct words".
type NormalizedPage struct {
	Index      int
	Tokens     map[string]struct{}
	TokenCount int
}

// NormalizePage converts raw extracted page text into a NormalizedPage.
// A page with no extractable text yields an empty token set; that is
// valid input, not an error.
func NormalizePage(index int, raw string) NormalizedPage {
	tokens := make(map[string]struct{})
	for _, field := range strings.Fields(raw) {
		tok := normalizeToken(field)
		if tok == "" {
			continue
		}
		tokens[tok] = struct{}{}
	}
	return NormalizedPage{Index: index, Tokens: tokens, TokenCount: len(tokens)}
}

// normalizeToken lowercases a word and drops runes that are neither letters
// nor digits. Pure punctuation reduces to the empty string and is discarded
// by the caller.
func normalizeToken(word string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
