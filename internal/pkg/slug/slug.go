// Package slug derives URL-safe path segments from display names.
// City slugs are never stored: they are recomputed from city names at
// taxonomy build time, so Make must stay total, deterministic and
// idempotent for the lifetime of published URLs.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Make normalizes a display name into a slug. The steps run in order:
// NFD-decompose and drop combining marks, replace "&" with "and",
// strip apostrophes, lowercase, collapse every run of remaining
// non-alphanumeric characters to a single hyphen and trim the edges.
// Make(Make(s)) == Make(s) for any input.
func Make(name string) string {
	s := norm.NFD.String(name)
	s = strings.Map(dropCombining, s)
	s = strings.ReplaceAll(s, "&", "and")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "’", "")

	var b strings.Builder
	b.Grow(len(s))
	hyphenPending := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if hyphenPending && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphenPending = false
			b.WriteRune(r)
			continue
		}
		hyphenPending = true
	}

	return b.String()
}

func dropCombining(r rune) rune {
	if unicode.Is(unicode.Mn, r) {
		return -1
	}
	return r
}
