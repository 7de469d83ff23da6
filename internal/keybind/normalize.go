package keybind

import "strings"

// Normalize lowercases an album name and splits it into alphanumeric words.
// Characters outside ASCII letters, digits, and whitespace are dropped.
// An empty or fully non-alphanumeric name yields an empty slice.
func Normalize(name string) []string {
	var b strings.Builder
	b.Grow(len(name))

	for _, r := range strings.TrimSpace(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r == ' ', r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		}
	}

	return strings.Fields(b.String())
}
