// Package util holds small shared helpers with no domain dependencies.
package util

import "strings"

// Slugify lowercases s, replaces runs of non-alphanumeric characters with a
// single hyphen, and trims leading and trailing hyphens. The result is safe
// for use as a URL path segment.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false

			continue
		}

		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimRight(b.String(), "-")
}
