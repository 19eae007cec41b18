package duygu

import (
	"strings"
	"unicode"
)

// sanitizer maps typographic quote variants onto their plain forms before
// any other normalization.
var tokenSanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'")

// normalizeText lowercases text with Turkish casing rules and strips
// everything that is not a letter, digit or whitespace.
func normalizeText(text string) string {
	text = tokenSanitizer.Replace(text)
	text = strings.ToLowerSpecial(unicode.TurkishCase, text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// splitTokens splits normalized text on whitespace, dropping empty spans.
func splitTokens(text string) []string {
	return strings.Fields(text)
}
