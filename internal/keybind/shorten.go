package keybind

import "sort"

// ShortenAll trims each branch of a resolved round toward the shortest
// length that keeps the working set prefix-free, both internally and against
// the values committed in earlier rounds.
//
// Each iteration takes the longest live branches and tries to drop their
// last character. A branch whose one-shorter form would equal, extend, or be
// extended by any other branch under consideration is finalized at its
// current length; otherwise it shrinks and stays eligible. The loop ends
// when every live branch is one character long or everything is finalized.
// Re-running on an already-minimal set is a no-op.
func ShortenAll(resolved map[string]Claim, committed []string) map[string]Claim {
	type entry struct {
		branch string
		claim  Claim
		final  bool
	}

	entries := make([]*entry, 0, len(resolved))
	for b, c := range resolved {
		entries = append(entries, &entry{branch: b, claim: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].branch < entries[j].branch
	})

	conflicts := func(cand string, self *entry) bool {
		for _, o := range entries {
			if o == self {
				continue
			}
			if inPrefixRelation(cand, o.branch) {
				return true
			}
		}
		for _, v := range committed {
			if inPrefixRelation(cand, v) {
				return true
			}
		}
		return false
	}

	for {
		maxLen := 0
		for _, e := range entries {
			if !e.final && len(e.branch) > maxLen {
				maxLen = len(e.branch)
			}
		}
		if maxLen <= 1 {
			break
		}

		for _, e := range entries {
			if e.final || len(e.branch) != maxLen {
				continue
			}
			cand := e.branch[:maxLen-1]
			if conflicts(cand, e) {
				e.final = true
				continue
			}
			e.branch = cand
		}
	}

	out := make(map[string]Claim, len(entries))
	for _, e := range entries {
		c := e.claim
		c.Branch = e.branch
		out[e.branch] = c
	}
	return out
}
