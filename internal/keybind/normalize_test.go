package keybind

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single word", "Animals", []string{"animals"}},
		{"two words", "Family Photos", []string{"family", "photos"}},
		{"punctuation stripped", "Vacation: 2024!", []string{"vacation", "2024"}},
		{"mixed case and padding", "  GeNeRaL  VIDEOS ", []string{"general", "videos"}},
		{"tabs and newlines split", "a\tb\nc", []string{"a", "b", "c"}},
		{"digits kept", "Best of 2023", []string{"best", "of", "2023"}},
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"punctuation only", "***!!!", nil},
		{"non-ascii dropped", "Café Photos", []string{"caf", "photos"}},
		{"emoji dropped", "Trip 🏖 Pics", []string{"trip", "pics"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if !equalStrings(got, tt.want) {
				t.Errorf("Normalize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// equalStrings compares element-wise, treating nil and empty as equal.
func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
