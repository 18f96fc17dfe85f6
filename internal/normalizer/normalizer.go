// Package normalizer provides text and skill canonicalization for the
// matching engine. All comparisons in the engine happen over normalized
// tokens, so matching is case- and accent-insensitive.
package normalizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// nonAlphanumericRegex matches sequences of non-alphanumeric characters.
var nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9]+`)

// accentStripper decomposes to NFD and drops combining marks, so that
// "Educação" and "educacao" normalize identically.
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// defaultMinTokenLength is the shortest free-text token worth indexing.
// Shorter tokens are almost always stopword noise ("de", "a", "em").
const defaultMinTokenLength = 3

// Normalize lower-cases, strips diacritics and trims surrounding whitespace.
// It is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	lowered := strings.ToLower(strings.TrimSpace(s))
	stripped, _, err := transform.String(accentStripper, lowered)
	if err != nil {
		// Malformed input is left as-is rather than dropped; the engine
		// must stay total over whatever text callers hand it.
		return lowered
	}
	return stripped
}

// SplitList parses a free-form comma-separated list (e.g. a skills field)
// into normalized tokens. Empty entries are dropped and duplicates collapse,
// preserving first-seen order.
func SplitList(csv string) []string {
	tokens := make([]string, 0)
	seen := make(map[string]struct{})
	for _, part := range strings.Split(csv, ",") {
		token := Normalize(part)
		if token == "" {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		tokens = append(tokens, token)
		seen[token] = struct{}{}
	}
	return tokens
}

// Tokenize converts free text into normalized tokens for the lexical engine:
// lower-cased, accent-stripped, split on non-alphanumeric runs, with tokens
// shorter than 3 characters discarded.
func Tokenize(text string) []string {
	return TokenizeMin(text, defaultMinTokenLength)
}

// TokenizeMin is Tokenize with a caller-chosen minimum token length.
func TokenizeMin(text string, minLength int) []string {
	normalized := Normalize(text)
	split := nonAlphanumericRegex.Split(normalized, -1)

	tokens := make([]string, 0, len(split))
	for _, s := range split {
		if len(s) >= minLength {
			tokens = append(tokens, s)
		}
	}
	return tokens
}

// NormalizeSet normalizes every element of a slice, dropping empties and
// duplicates while preserving first-seen order.
func NormalizeSet(values []string) []string {
	tokens := make([]string, 0, len(values))
	seen := make(map[string]struct{})
	for _, v := range values {
		token := Normalize(v)
		if token == "" {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		tokens = append(tokens, token)
		seen[token] = struct{}{}
	}
	return tokens
}
