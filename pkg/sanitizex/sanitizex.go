package sanitizex

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// CleanSingleLine normalizes Unicode (NFC, so decomposed Hangul collapses to
// its composed form), strips control characters, trims the ends and squeezes
// internal whitespace to a single ASCII space. Meant for one-line fields:
// names, emails, codes.
func CleanSingleLine(s string) string {
	if s == "" {
		return ""
	}

	s = norm.NFC.String(s)
	s = strings.Map(func(r rune) rune {
		if r == '\u007f' || unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	s = strings.TrimSpace(s)

	var b strings.Builder
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !space {
				b.WriteByte(' ')
				space = true
			}
			continue
		}
		b.WriteRune(r)
		space = false
	}
	return b.String()
}
