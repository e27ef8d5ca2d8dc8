package mapping

import (
	"strings"
	"unicode"
)

// NormalizeAccountSize canonicalizes a free-text account-size label for tier
// matching: currency symbols, commas and whitespace are stripped and the
// remainder upper-cased, so "$100,000", "100000" and "100 000" all agree.
func NormalizeAccountSize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
		case r == ',' || r == '$' || r == '€' || r == '£':
		default:
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// SanitizeAccountSize produces the legacy lookup slug: lower-cased with each
// non-alphanumeric rune replaced by its own dash, matching how historical
// mapping keys were written ("a__b" becomes "a--b", not "a-b").
func SanitizeAccountSize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('-')
		}
	}
	return b.String()
}
