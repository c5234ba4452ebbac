package render

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Short words kept lowercase unless they open or close the phrase.
var smallWords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true, "but": true,
	"by": true, "en": true, "for": true, "if": true, "in": true, "nor": true,
	"of": true, "on": true, "or": true, "per": true, "the": true, "to": true,
	"v": true, "vs": true, "via": true,
}

// TitleCase capitalises the first letter of each space-separated word and
// lowercases small words in the middle of the phrase. Letters after the first
// are left untouched, and runs of spaces are preserved.
func TitleCase(s string) string {
	words := strings.Split(s, " ")

	first, last := -1, -1
	for i, w := range words {
		if w == "" {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}

	for i, w := range words {
		if w == "" {
			continue
		}
		lower := strings.ToLower(w)
		if smallWords[lower] && i != first && i != last {
			words[i] = lower
			continue
		}
		// A Caser holds state, so each word gets its own.
		words[i] = cases.Title(language.English, cases.NoLower).String(w)
	}
	return strings.Join(words, " ")
}
