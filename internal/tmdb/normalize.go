package tmdb

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeQuery prepares a user search query for the TMDB search API.
// Accents are stripped so "Léon" and "Leon" hit the same results, and
// whitespace is collapsed. Case is preserved; TMDB search is
// case-insensitive.
func NormalizeQuery(query string) string {
	s := removeAccents(query)
	return strings.Join(strings.Fields(s), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
