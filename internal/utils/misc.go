package utils

import (
	"strconv"
	"strings"
)

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }

// FormatCoordinate renders a coordinate as its shortest exact decimal
// string. Address deduplication matches on these strings verbatim, so the
// formatting must stay stable: "33.5" and "33.50" are different addresses.
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Slugify lowercases s and collapses every non-alphanumeric run into a
// single dash. Callers append a timestamp suffix for uniqueness.
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
