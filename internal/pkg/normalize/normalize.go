// Package normalize canonicalizes person fields before they reach the
// store: names become title case with Portuguese prepositions kept
// lowercase, emails become all lowercase.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prepositions that stay lowercase inside a name ("João da Silva").
// The first word is always capitalized, preposition or not.
var prepositions = map[string]struct{}{
	"de":  {},
	"da":  {},
	"do":  {},
	"das": {},
	"dos": {},
}

// Name title-cases a person's name. Empty input is returned unchanged.
// Idempotent: Name(Name(s)) == Name(s).
func Name(raw string) string {
	if raw == "" {
		return raw
	}

	words := strings.Split(strings.ToLower(raw), " ")
	for i, w := range words {
		if i > 0 {
			if _, ok := prepositions[w]; ok {
				continue
			}
		}
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// Email lowercases the address. No trimming, no shape validation.
func Email(raw string) string {
	return strings.ToLower(raw)
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError && size <= 1 {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}
