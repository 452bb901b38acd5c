package inkbridge

import "strings"

// Sanitize strips the Unicode bidirectional formatting code points that the
// native renderer cannot display: the embedding/override range
// U+202A..U+202E and the isolate range U+2066..U+2069. Every other rune,
// including non-ASCII text, passes through unchanged.
//
// Sanitize is pure, never fails, and is idempotent.
func Sanitize(s string) string {
	if !strings.ContainsFunc(s, isBidiControl) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isBidiControl(r) {
			return -1
		}
		return r
	}, s)
}

func isBidiControl(r rune) bool {
	return (r >= 0x202A && r <= 0x202E) || (r >= 0x2066 && r <= 0x2069)
}
