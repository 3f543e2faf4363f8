package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
	slugPattern      = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// polishToASCII maps Polish diacritics to their base characters, so
// "Japońska sztuka ikebany" slugs to "japonska-sztuka-ikebany".
var polishToASCII = map[rune]rune{
	'ą': 'a', 'ć': 'c', 'ę': 'e', 'ł': 'l', 'ń': 'n',
	'ó': 'o', 'ś': 's', 'ź': 'z', 'ż': 'z',
	'Ą': 'A', 'Ć': 'C', 'Ę': 'E', 'Ł': 'L', 'Ń': 'N',
	'Ó': 'O', 'Ś': 'S', 'Ź': 'Z', 'Ż': 'Z',
}

// GenerateSlug builds a URL-safe slug from a title.
func GenerateSlug(input string) string {
	ascii := RemoveDiacritics(input)
	lower := strings.ToLower(ascii)
	hyphenated := strings.ReplaceAll(lower, " ", "-")

	cleaned := slugInvalidChars.ReplaceAllString(hyphenated, "")
	normalized := slugHyphenRuns.ReplaceAllString(cleaned, "-")

	return strings.Trim(normalized, "-")
}

// IsValidSlug reports whether s is a well-formed slug: lowercase
// alphanumerics separated by single hyphens.
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// RemoveDiacritics replaces Polish diacritics with base characters.
// Other runes pass through unchanged.
func RemoveDiacritics(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		if replacement, ok := polishToASCII[r]; ok {
			result = append(result, replacement)
		} else {
			result = append(result, r)
		}
	}
	return string(result)
}
