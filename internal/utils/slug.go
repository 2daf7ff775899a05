package utils

import (
	"strings"
	"unicode"
)

// Slugify converts a title into a lowercase, dash-separated URL segment.
// The output matches the slugs stored alongside services, blogs, and events.
func Slugify(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	prevDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		case r == '&':
			if !prevDash {
				b.WriteByte('-')
			}
			b.WriteString("and-")
			prevDash = true
		case r == '\'':
			// apostrophes vanish rather than becoming dashes
		case unicode.IsSpace(r), r == '-', r == '/', r == '_':
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
