package corpus

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/text/unicode/norm"
)

// Normalize applies NFKC normalization and lowercases.
func Normalize(s string) string {
	return strings.ToLower(norm.NFKC.String(s))
}

// Tokenize splits text into tokens with UAX#29 word segmentation,
// keeping only tokens that start with a letter or a digit.
func Tokenize(s string) []string {
	toks := words.FromString(s)
	var tokens []string
	for toks.Next() {
		t := toks.Value()
		r := []rune(t)
		if len(r) > 0 && (unicode.IsLetter(r[0]) || unicode.IsDigit(r[0])) {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
