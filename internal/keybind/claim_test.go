package keybind

import (
	"testing"
)

func TestResolveConflictsUniqueClaims(t *testing.T) {
	claims := []Claim{
		{Branch: "animals", Album: "a1", Priority: 0},
		{Branch: "family", Album: "a2", Priority: 0},
	}

	resolved := ResolveConflicts(claims, nil)

	if len(resolved) != 2 {
		t.Fatalf("len(resolved) = %d, want 2", len(resolved))
	}
	if got := resolved["animals"].Album; got != "a1" {
		t.Errorf("resolved[animals].Album = %q, want a1", got)
	}
	if got := resolved["family"].Album; got != "a2" {
		t.Errorf("resolved[family].Album = %q, want a2", got)
	}
}

func TestResolveConflictsContestedBranch(t *testing.T) {
	// Two albums claiming the identical branch: neither wins this round.
	claims := []Claim{
		{Branch: "aaaaaaaaaa", Album: "a1", Priority: 0},
		{Branch: "aaaaaaaaaa", Album: "a2", Priority: 0},
		{Branch: "family", Album: "a3", Priority: 0},
	}

	resolved := ResolveConflicts(claims, nil)

	if len(resolved) != 1 {
		t.Fatalf("len(resolved) = %d, want 1", len(resolved))
	}
	if _, ok := resolved["family"]; !ok {
		t.Errorf("uncontested claim missing from resolved set")
	}
}

func TestResolveConflictsPrefixAntecedent(t *testing.T) {
	claims := []Claim{
		{Branch: "g", Album: "a1", Priority: 0},
		{Branch: "general", Album: "a2", Priority: 0},
	}

	resolved := ResolveConflicts(claims, nil)

	if len(resolved) != 2 {
		t.Fatalf("len(resolved) = %d, want 2", len(resolved))
	}
	// The antecedent grows a distinguishing suffix; "a" is the first
	// alphabet character that removes the prefix relation.
	if got := resolved["ga"].Album; got != "a1" {
		t.Errorf("resolved[ga].Album = %q, want a1", got)
	}
	if got := resolved["general"].Album; got != "a2" {
		t.Errorf("resolved[general].Album = %q, want a2", got)
	}
	assertPrefixFree(t, resolvedBranches(resolved))
}

func TestResolveConflictsAntecedentChain(t *testing.T) {
	claims := []Claim{
		{Branch: "g", Album: "a1", Priority: 0},
		{Branch: "ge", Album: "a2", Priority: 0},
		{Branch: "general", Album: "a3", Priority: 0},
	}

	resolved := ResolveConflicts(claims, nil)

	if len(resolved) != 3 {
		t.Fatalf("len(resolved) = %d, want 3", len(resolved))
	}
	assertPrefixFree(t, resolvedBranches(resolved))
	for branch, c := range resolved {
		if c.Branch != branch {
			t.Errorf("claim %q carries branch %q, want key and claim in agreement", branch, c.Branch)
		}
	}
}

func TestResolveConflictsAgainstCommitted(t *testing.T) {
	tests := []struct {
		name      string
		claim     Claim
		committed []string
		wantKeys  []string
	}{
		{
			name:      "claim equal to committed is dropped",
			claim:     Claim{Branch: "f", Album: "a1"},
			committed: []string{"f"},
			wantKeys:  nil,
		},
		{
			name:      "claim extending committed is dropped",
			claim:     Claim{Branch: "generalvideos", Album: "a1"},
			committed: []string{"g"},
			wantKeys:  nil,
		},
		{
			name:      "claim prefixing committed is disambiguated",
			claim:     Claim{Branch: "g", Album: "a1"},
			committed: []string{"general"},
			wantKeys:  []string{"ga"},
		},
		{
			name:      "unrelated claim kept",
			claim:     Claim{Branch: "family", Album: "a1"},
			committed: []string{"general"},
			wantKeys:  []string{"family"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := ResolveConflicts([]Claim{tt.claim}, tt.committed)
			if len(resolved) != len(tt.wantKeys) {
				t.Fatalf("len(resolved) = %d, want %d", len(resolved), len(tt.wantKeys))
			}
			for _, k := range tt.wantKeys {
				if _, ok := resolved[k]; !ok {
					t.Errorf("resolved missing branch %q (have %v)", k, resolvedBranches(resolved))
				}
			}
		})
	}
}

func TestResolveConflictsDeterministic(t *testing.T) {
	claims := []Claim{
		{Branch: "g", Album: "a1"},
		{Branch: "ge", Album: "a2"},
		{Branch: "gen", Album: "a3"},
		{Branch: "general", Album: "a4"},
	}

	first := ResolveConflicts(claims, nil)
	for i := 0; i < 20; i++ {
		again := ResolveConflicts(claims, nil)
		if len(again) != len(first) {
			t.Fatalf("run %d: len = %d, want %d", i, len(again), len(first))
		}
		for k, v := range first {
			if again[k] != v {
				t.Fatalf("run %d: resolved[%q] = %+v, want %+v", i, k, again[k], v)
			}
		}
	}
}

func resolvedBranches(resolved map[string]Claim) []string {
	out := make([]string, 0, len(resolved))
	for b := range resolved {
		out = append(out, b)
	}
	return out
}
