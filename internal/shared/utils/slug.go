package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	multiHyphen  = regexp.MustCompile(`-+`)

	// NFD decomposition followed by removal of combining marks folds
	// accented Latin letters to their base character ("é" → "e").
	diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// GenerateSlug derives a URL slug from a display title.
//
// "Novo Projeto Incrível!" → "novo-projeto-incrivel"
// "Café & Co."             → "cafe-co"
//
// The result contains only [a-z0-9-], with no leading, trailing or
// doubled hyphens. The derivation is deterministic and idempotent:
// GenerateSlug(GenerateSlug(s)) == GenerateSlug(s).
func GenerateSlug(input string) string {
	// Step 1: fold diacritics to ASCII
	ascii := RemoveDiacritics(input)

	// Step 2: lowercase
	lower := strings.ToLower(ascii)

	// Step 3: spaces become hyphens so word boundaries survive step 4
	hyphenated := strings.ReplaceAll(lower, " ", "-")

	// Step 4: drop everything outside [a-z0-9-]
	cleaned := nonSlugChars.ReplaceAllString(hyphenated, "")

	// Step 5: collapse hyphen runs, trim the edges
	normalized := multiHyphen.ReplaceAllString(cleaned, "-")

	return strings.Trim(normalized, "-")
}

// RemoveDiacritics strips combining marks from Latin text.
func RemoveDiacritics(input string) string {
	out, _, err := transform.String(diacriticStripper, input)
	if err != nil {
		return input
	}
	return out
}
