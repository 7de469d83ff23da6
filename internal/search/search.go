// Package search provides fuzzy album-name matching.
//
// Albums that end up without a keybinding (empty names, exhausted allocation
// rounds) are still reachable: the UI falls back to a text search over album
// names, scored so that word-boundary and prefix matches rank first.
package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/dshills/photokeys/internal/catalog"
)

// Result is one matched album with scoring information.
type Result struct {
	// Album is the matched album.
	Album catalog.Album

	// Score ranks the match; higher is better.
	Score int

	// Matches holds the rune indices of matched characters in the album
	// name, for highlight rendering.
	Matches []int
}

// Weights tunes the scoring of a match.
type Weights struct {
	// Base is the starting score for any complete match.
	Base int

	// Consecutive is added per adjacent matched character pair.
	Consecutive int

	// WordBoundary is added per match at the start of a word.
	WordBoundary int

	// Prefix is added when the first match is the first character.
	Prefix int

	// GapPenalty is subtracted per unmatched character between matches.
	GapPenalty int

	// LeadingPenalty is subtracted per character before the first match.
	LeadingPenalty int
}

// DefaultWeights returns the standard scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Base:           100,
		Consecutive:    20,
		WordBoundary:   15,
		Prefix:         25,
		GapPenalty:     2,
		LeadingPenalty: 1,
	}
}

// Matcher scores albums against free-text queries. Matching is
// case-insensitive; every query character must appear in order in the name.
type Matcher struct {
	weights Weights
}

// NewMatcher creates a matcher with the given weights.
func NewMatcher(w Weights) *Matcher {
	return &Matcher{weights: w}
}

// Match returns albums matching query, best first. Ties break on album name
// then ID so results are stable across runs. An empty query returns the
// first limit albums unscored. limit <= 0 means no limit.
func (m *Matcher) Match(query string, albums []catalog.Album, limit int) []Result {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return m.unscored(albums, limit)
	}

	queryRunes := []rune(query)
	results := make([]Result, 0, len(albums))

	for _, a := range albums {
		score, matches := m.matchAlbum(queryRunes, a.Name)
		if score > 0 {
			results = append(results, Result{Album: a, Score: score, Matches: matches})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].Album.Name != results[j].Album.Name {
			return results[i].Album.Name < results[j].Album.Name
		}
		return results[i].Album.ID < results[j].Album.ID
	})

	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}
	return results
}

// matchAlbum scans name left to right for the query characters in order.
// Returns 0 when any query character is missing.
func (m *Matcher) matchAlbum(queryRunes []rune, name string) (int, []int) {
	if name == "" {
		return 0, nil
	}

	nameRunes := []rune(name)
	lowered := []rune(strings.ToLower(name))

	matches := make([]int, 0, len(queryRunes))
	queryIdx := 0
	for i := 0; i < len(lowered) && queryIdx < len(queryRunes); i++ {
		if lowered[i] == queryRunes[queryIdx] {
			matches = append(matches, i)
			queryIdx++
		}
	}
	if queryIdx != len(queryRunes) {
		return 0, nil
	}

	return m.score(nameRunes, matches), matches
}

// score applies the weights to a complete match.
func (m *Matcher) score(nameRunes []rune, matches []int) int {
	w := m.weights
	score := w.Base

	for i := 1; i < len(matches); i++ {
		if matches[i] == matches[i-1]+1 {
			score += w.Consecutive
		}
	}

	for _, idx := range matches {
		if isWordStart(nameRunes, idx) {
			score += w.WordBoundary
		}
	}

	if matches[0] == 0 {
		score += w.Prefix
	} else {
		score -= matches[0] * w.LeadingPenalty
	}

	if len(matches) > 1 {
		gap := matches[len(matches)-1] - matches[0] - len(matches) + 1
		if gap > 0 {
			score -= gap * w.GapPenalty
		}
	}

	if score < 1 {
		score = 1
	}
	return score
}

// isWordStart reports whether the rune at idx begins a word: the name start,
// or a character following whitespace or punctuation.
func isWordStart(runes []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	prev := runes[idx-1]
	return unicode.IsSpace(prev) || unicode.IsPunct(prev)
}

func (m *Matcher) unscored(albums []catalog.Album, limit int) []Result {
	count := len(albums)
	if limit > 0 && limit < count {
		count = limit
	}
	results := make([]Result, count)
	for i := 0; i < count; i++ {
		results[i] = Result{Album: albums[i]}
	}
	return results
}
