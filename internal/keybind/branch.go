package keybind

import "strings"

// degenerateRepeat is the length of the placeholder candidate generated for
// single-letter album names. The placeholder is intentionally unattractive:
// it survives allocation only when nothing competes with it.
const degenerateRepeat = 10

// Branches produces the ranked candidate keybindings for one album, derived
// from its normalized words. The first candidate is the most preferred;
// a candidate's index is its priority round. The slice may be empty.
//
// Policy by word count:
//   - zero words: no candidates
//   - one single-letter word: the letter repeated ten times (placeholder)
//   - one longer word: the word itself
//   - two words: prefix(first, k) + second, for k = 1..len(first)
//   - three or more: prefix(first, k) + abbreviated middle + last word,
//     where the middle abbreviation grows with k
func Branches(words []string) []string {
	switch len(words) {
	case 0:
		return nil

	case 1:
		w := words[0]
		if len(w) == 1 {
			return []string{strings.Repeat(w, degenerateRepeat)}
		}
		return []string{w}

	case 2:
		first, last := words[0], words[1]
		out := make([]string, 0, len(first))
		for k := 1; k <= len(first); k++ {
			out = append(out, first[:k]+last)
		}
		return out

	default:
		first := words[0]
		last := words[len(words)-1]
		middle := words[1 : len(words)-1]

		out := make([]string, 0, len(first))
		for k := 1; k <= len(first); k++ {
			out = append(out, first[:k]+middleAbbrev(middle, k)+last)
		}
		return out
	}
}

// middleAbbrev abbreviates the middle words of a 3+ word name. Longer first
// word prefixes earn a fuller middle: k=1 keeps only initials, k=2 lets the
// final middle word contribute two letters, k>=3 keeps the middle verbatim.
func middleAbbrev(middle []string, k int) string {
	var b strings.Builder

	switch {
	case k == 1:
		for _, w := range middle {
			b.WriteByte(w[0])
		}

	case k == 2:
		if len(middle) == 1 {
			b.WriteString(headLetters(middle[0], 2))
			break
		}
		for _, w := range middle[:len(middle)-1] {
			b.WriteByte(w[0])
		}
		b.WriteString(headLetters(middle[len(middle)-1], 2))

	default:
		for _, w := range middle {
			b.WriteString(w)
		}
	}

	return b.String()
}

// headLetters returns the first n bytes of w, or all of w if shorter.
// Words are ASCII by construction (see Normalize).
func headLetters(w string, n int) string {
	if len(w) < n {
		return w
	}
	return w[:n]
}
