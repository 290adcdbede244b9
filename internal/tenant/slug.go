// internal/tenant/slug.go
//
// Slug derivation.
//
// Rules
// -----
// 1. Lower-case everything.
// 2. Convert any run of non-[a-z0-9] characters to one "-".  That
//    strips spaces, punctuation, emoji, and non-ASCII.
// 3. Collapse consecutive "-" to a single "-".
// 4. Trim leading / trailing "-".
// 5. If the result is empty, return "tenant".
//
// Notes
// -----
// • No Unicode transliteration; company names are English-only for now.
// • Slugs are max 100 runes.

package tenant

import "strings"

// Slug converts a company name to its lower-kebab ASCII slug.
func Slug(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastWasDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastWasDash = false
		default:
			if !lastWasDash {
				b.WriteRune('-')
				lastWasDash = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "tenant"
	}
	if len(slug) > 100 {
		slug = slug[:100]
		slug = strings.TrimRight(slug, "-")
	}
	return slug
}
