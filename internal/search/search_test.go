package search

import (
	"testing"

	"github.com/dshills/photokeys/internal/catalog"
)

func testAlbums() []catalog.Album {
	return []catalog.Album{
		{ID: "a1", Name: "Family Photos"},
		{ID: "a2", Name: "Family Videos"},
		{ID: "a3", Name: "Garden"},
		{ID: "a4", Name: "Vacation 2024"},
		{ID: "a5", Name: "Feral Cats"},
	}
}

func TestMatcherFindsSubsequences(t *testing.T) {
	m := NewMatcher(DefaultWeights())

	tests := []struct {
		name    string
		query   string
		wantIDs []catalog.AlbumID
	}{
		{"exact word", "garden", []catalog.AlbumID{"a3"}},
		{"case-insensitive", "GARDEN", []catalog.AlbumID{"a3"}},
		{"digits", "2024", []catalog.AlbumID{"a4"}},
		{"no match", "xyz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Match(tt.query, testAlbums(), 0)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("len(results) = %d, want %d", len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got[i].Album.ID != want {
					t.Errorf("result %d = %q, want %q", i, got[i].Album.ID, want)
				}
			}
		})
	}
}

func TestMatcherRanksPrefixAndBoundaryFirst(t *testing.T) {
	m := NewMatcher(DefaultWeights())

	// "fp" only matches "Family Photos", at two word boundaries.
	got := m.Match("fp", testAlbums(), 0)
	if len(got) != 1 {
		t.Fatalf("len(results) = %d, want 1 (%v)", len(got), got)
	}
	if got[0].Album.ID != "a1" {
		t.Errorf("top result = %q, want a1", got[0].Album.ID)
	}

	// "fa" matches Family twice and Feral Cats ("f", then "a" in Cats);
	// the consecutive word-prefix match must outrank the scattered one.
	got = m.Match("fa", testAlbums(), 0)
	if len(got) < 3 {
		t.Fatalf("len(results) = %d, want >= 3", len(got))
	}
	if got[len(got)-1].Album.ID != "a5" {
		t.Errorf("last result = %q, want a5 (scattered match ranks last)", got[len(got)-1].Album.ID)
	}
}

func TestMatcherDeterministicTies(t *testing.T) {
	m := NewMatcher(DefaultWeights())

	first := m.Match("family", testAlbums(), 0)
	for i := 0; i < 10; i++ {
		again := m.Match("family", testAlbums(), 0)
		if len(again) != len(first) {
			t.Fatalf("run %d: len = %d, want %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j].Album.ID != first[j].Album.ID {
				t.Fatalf("run %d: result %d = %q, want %q", i, j, again[j].Album.ID, first[j].Album.ID)
			}
		}
	}
}

func TestMatcherEmptyQueryAndLimit(t *testing.T) {
	m := NewMatcher(DefaultWeights())

	got := m.Match("", testAlbums(), 2)
	if len(got) != 2 {
		t.Errorf("len(results) = %d, want 2", len(got))
	}
	for _, r := range got {
		if r.Score != 0 {
			t.Errorf("empty query score = %d, want 0", r.Score)
		}
	}

	got = m.Match("a", testAlbums(), 1)
	if len(got) != 1 {
		t.Errorf("len(results) = %d, want 1 with limit", len(got))
	}
}

func TestMatcherMatchIndices(t *testing.T) {
	m := NewMatcher(DefaultWeights())

	got := m.Match("fp", []catalog.Album{{ID: "a1", Name: "Family Photos"}}, 0)
	if len(got) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(got))
	}
	want := []int{0, 7}
	if len(got[0].Matches) != 2 || got[0].Matches[0] != want[0] || got[0].Matches[1] != want[1] {
		t.Errorf("Matches = %v, want %v", got[0].Matches, want)
	}
}
