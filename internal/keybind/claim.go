package keybind

import (
	"sort"
	"strings"

	"github.com/dshills/photokeys/internal/catalog"
)

// alphabet is the character set keybindings draw from, in the order tried
// when an antecedent branch needs a distinguishing suffix.
const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Claim is one album's bid for a branch during a priority round.
type Claim struct {
	Branch   string
	Album    catalog.AlbumID
	Priority int
}

// ResolveConflicts filters one round's claims down to an unambiguous,
// prefix-safe set, keyed by final branch string.
//
// A branch claimed by more than one album is awarded to nobody; all its
// claimants stay unassigned for a later round. A claim that equals, or
// extends, a value committed in an earlier round is dropped outright (no
// suffix can repair it). A claim whose branch is a proper prefix of another
// live branch or of a committed value is disambiguated by appending the
// first alphabet character that removes every prefix relation; if all 36
// fail, the claim is dropped.
//
// Claims are processed in lexicographic branch order, which makes the
// outcome deterministic and guarantees a prefix is handled before any of
// its extensions.
func ResolveConflicts(claims []Claim, committed []string) map[string]Claim {
	group := make(map[string][]Claim, len(claims))
	for _, c := range claims {
		group[c.Branch] = append(group[c.Branch], c)
	}

	branches := make([]string, 0, len(group))
	for b, cs := range group {
		if len(cs) != 1 {
			continue // contested: nobody wins this round
		}
		if blockedByCommitted(b, committed) {
			continue
		}
		branches = append(branches, b)
	}
	sort.Strings(branches)

	// form tracks the current shape of every live branch; antecedents are
	// rewritten in place so later branches see the updated set.
	form := make(map[string]string, len(branches))
	for _, b := range branches {
		form[b] = b
	}

	resolved := make(map[string]Claim, len(branches))
	for _, b := range branches {
		claim := group[b][0]

		if !isAntecedent(b, b, form, committed) {
			resolved[b] = claim
			continue
		}

		alt, ok := disambiguate(b, form, committed)
		if !ok {
			delete(form, b)
			continue
		}
		form[b] = alt
		claim.Branch = alt
		resolved[alt] = claim
	}

	return resolved
}

// blockedByCommitted reports whether branch can never coexist with the
// already-committed values: either it equals one, or extends one. A branch
// that is merely a proper prefix of a committed value is repairable and is
// not blocked.
func blockedByCommitted(branch string, committed []string) bool {
	for _, v := range committed {
		if strings.HasPrefix(branch, v) {
			return true
		}
	}
	return false
}

// isAntecedent reports whether candidate (the current form of orig) is a
// proper prefix of any other live branch or of a committed value.
func isAntecedent(orig, candidate string, form map[string]string, committed []string) bool {
	for o, f := range form {
		if o == orig {
			continue
		}
		if len(f) > len(candidate) && strings.HasPrefix(f, candidate) {
			return true
		}
	}
	for _, v := range committed {
		if len(v) > len(candidate) && strings.HasPrefix(v, candidate) {
			return true
		}
	}
	return false
}

// disambiguate extends branch by one character so it no longer collides
// with any live branch or committed value in either prefix direction.
func disambiguate(branch string, form map[string]string, committed []string) (string, bool) {
	for i := 0; i < len(alphabet); i++ {
		cand := branch + string(alphabet[i])
		if clashes(branch, cand, form, committed) {
			continue
		}
		return cand, true
	}
	return "", false
}

// clashes reports whether candidate conflicts with any live branch other
// than orig, or with any committed value: equality or a prefix relation in
// either direction.
func clashes(orig, candidate string, form map[string]string, committed []string) bool {
	for o, f := range form {
		if o == orig {
			continue
		}
		if inPrefixRelation(candidate, f) {
			return true
		}
	}
	for _, v := range committed {
		if inPrefixRelation(candidate, v) {
			return true
		}
	}
	return false
}

// inPrefixRelation reports whether a equals b or either is a prefix of the
// other.
func inPrefixRelation(a, b string) bool {
	return strings.HasPrefix(a, b) || strings.HasPrefix(b, a)
}
