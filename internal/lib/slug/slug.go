package slug

import (
	"strings"
	"unicode"
)

// Make derives a URL-safe slug from a title: letters and digits are
// lowercased, every other run of characters collapses into a single hyphen.
// The result is stable for a given title.
func Make(title string) string {
	var b strings.Builder
	pending := false

	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(unicode.ToLower(r))

			continue
		}

		pending = true
	}

	return b.String()
}
