// Package textutil provides the text normalization helpers used for
// accent-insensitive comparisons across the catalog.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripAccents removes combining diacritical marks from s: the string is
// decomposed (NFKD) and all combining marks are dropped, so "Café" becomes
// "Cafe". The result of applying it twice equals applying it once.
func StripAccents(s string) string {
	stripper := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(stripper, s)
	if err != nil {
		return s
	}
	return out
}

// CollapseWhitespace trims s and collapses internal runs of whitespace
// into single spaces.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Fold lower-cases s and strips accents. Used to build search keys;
// the uniqueness index folds case only and does NOT use this.
func Fold(s string) string {
	return StripAccents(strings.ToLower(s))
}
