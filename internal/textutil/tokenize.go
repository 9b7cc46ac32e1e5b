package textutil

import (
	"strings"
	"unicode"
)

// isWordRune reports whether r belongs inside a token. Letters and numbers
// in any script count, plus underscore, so non-Latin titles tokenize the
// same way Latin ones do.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Tokenize splits text into lowercase word tokens.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)
	return strings.FieldsFunc(lowered, func(r rune) bool {
		return !isWordRune(r)
	})
}

// TokenSet returns the unique word tokens of text.
func TokenSet(text string) map[string]struct{} {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}
