package export

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SanitizeSlug turns user-typed tag text into a term slug: lowercase,
// accents removed, runs of anything other than letters, digits, '_' and
// '-' collapsed to a single '-', surrounding dashes trimmed.
func SanitizeSlug(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, _ = transform.String(t, strings.ToLower(strings.TrimSpace(s)))

	var b strings.Builder
	dash := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
			dash = false
		case !dash:
			b.WriteRune('-')
			dash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// parseSlugs splits a comma separated tag list into sanitized, non-empty slugs.
func parseSlugs(raw string) []string {
	var slugs []string
	for _, part := range strings.Split(raw, ",") {
		if slug := SanitizeSlug(part); slug != "" {
			slugs = append(slugs, slug)
		}
	}
	return slugs
}
