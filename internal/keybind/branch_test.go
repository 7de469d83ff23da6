package keybind

import "testing"

func TestBranches(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  []string
	}{
		{
			name:  "no words",
			words: nil,
			want:  nil,
		},
		{
			name:  "single letter becomes placeholder",
			words: []string{"a"},
			want:  []string{"aaaaaaaaaa"},
		},
		{
			name:  "single word is sole candidate",
			words: []string{"garden"},
			want:  []string{"garden"},
		},
		{
			name:  "two words grow the first-word prefix",
			words: []string{"general", "photos"},
			want: []string{
				"gphotos", "gephotos", "genphotos", "genephotos",
				"generphotos", "generaphotos", "generalphotos",
			},
		},
		{
			name:  "three words abbreviate the middle",
			words: []string{"summer", "beach", "trip"},
			want: []string{
				"sbtrip",          // k=1: middle initial only
				"subetrip",        // k=2: two letters of the middle word
				"sumbeachtrip",    // k>=3: middle verbatim
				"summbeachtrip",
				"summebeachtrip",
				"summerbeachtrip",
			},
		},
		{
			name:  "four words take one initial per middle word",
			words: []string{"new", "york", "city", "trips"},
			want: []string{
				"nyctrips",         // k=1: initials of both middle words
				"neycitrips",       // k=2: last middle word contributes two letters
				"newyorkcitytrips", // k=3: middle verbatim
			},
		},
		{
			name:  "single-letter first word caps prefix growth",
			words: []string{"a", "b", "c"},
			want:  []string{"abc"},
		},
		{
			name:  "short middle word survives the two-letter ask",
			words: []string{"go", "x", "lang"},
			want:  []string{"gxlang", "goxlang"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Branches(tt.words)
			if !equalStrings(got, tt.want) {
				t.Errorf("Branches(%v) = %v, want %v", tt.words, got, tt.want)
			}
		})
	}
}

func TestBranchesPriorityOrder(t *testing.T) {
	// Shorter prefixes of the first word come first: priority 0 is the
	// most aggressive abbreviation.
	got := Branches([]string{"family", "photos"})
	if len(got) != 6 {
		t.Fatalf("len(Branches) = %d, want 6", len(got))
	}
	for i := 1; i < len(got); i++ {
		if len(got[i]) < len(got[i-1]) {
			t.Errorf("candidate %d (%q) shorter than candidate %d (%q)", i, got[i], i-1, got[i-1])
		}
	}
}
