package keybind

import (
	"sort"

	"github.com/dshills/photokeys/internal/catalog"
)

// MaxRounds bounds the number of allocation passes. Albums whose every
// candidate loses through this many rounds are left without a binding;
// callers must treat the absent-entry state as normal (such albums remain
// reachable through text search).
const MaxRounds = 10

// Allocate computes the keybinding table for an album set. The computation
// is pure and deterministic: the same ids and names always produce the same
// table.
func Allocate(albums []catalog.Album) Table {
	return AllocateWithPins(albums, nil)
}

// AllocateWithPins seeds the table with externally pinned bindings before
// running allocation. Pinned albums are excluded from the rounds and their
// values constrain every later assignment exactly like committed branches.
// Pins are assumed valid (lowercase alphanumeric, mutually prefix-free);
// see the script package for validation.
func AllocateWithPins(albums []catalog.Album, pins Table) Table {
	assigned := make(Table, len(albums))
	for id, b := range pins {
		assigned[id] = b
	}

	candidates := make(map[catalog.AlbumID][]string, len(albums))
	var remaining []catalog.AlbumID

	for _, a := range catalog.SortByID(albums) {
		if _, ok := assigned[a.ID]; ok {
			continue
		}
		cands := Branches(Normalize(a.Name))
		if len(cands) == 0 {
			continue // nameless album: no candidates, ever
		}
		candidates[a.ID] = cands
		remaining = append(remaining, a.ID)
	}

	// Each round is an explicit fold over (assigned, remaining): claims go
	// through conflict resolution and shortening, winners are committed,
	// losers carry over to the next round with their next candidate.
	for round := 0; round < MaxRounds && len(remaining) > 0; round++ {
		claims := make([]Claim, 0, len(remaining))
		more := false
		for _, id := range remaining {
			cands := candidates[id]
			if round < len(cands) {
				claims = append(claims, Claim{Branch: cands[round], Album: id, Priority: round})
			}
			if round+1 < len(cands) {
				more = true
			}
		}
		if len(claims) == 0 {
			if !more {
				break // every unassigned album has run out of candidates
			}
			continue
		}

		resolved := ResolveConflicts(claims, assigned.Values())
		resolved = ShortenAll(resolved, assigned.Values())
		if len(resolved) == 0 {
			continue
		}

		branches := make([]string, 0, len(resolved))
		for b := range resolved {
			branches = append(branches, b)
		}
		sort.Strings(branches)

		won := make(map[catalog.AlbumID]bool, len(resolved))
		for _, b := range branches {
			c := resolved[b]
			assigned[c.Album] = b
			won[c.Album] = true
		}

		next := make([]catalog.AlbumID, 0, len(remaining))
		for _, id := range remaining {
			if !won[id] {
				next = append(next, id)
			}
		}
		remaining = next
	}

	return assigned
}
