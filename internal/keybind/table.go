package keybind

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/photokeys/internal/catalog"
)

// Table maps albums to their assigned keybindings. A valid table is
// prefix-free: no binding is a prefix of another, so incremental matching
// is always unambiguous. Albums without a usable binding are simply absent.
//
// Tables are rebuilt wholesale on every album-set change and must be treated
// as immutable snapshots by consumers.
type Table map[catalog.AlbumID]string

// Binding returns the keybinding for an album, if one was assigned.
func (t Table) Binding(id catalog.AlbumID) (string, bool) {
	b, ok := t[id]
	return b, ok
}

// Len returns the number of assigned bindings.
func (t Table) Len() int {
	return len(t)
}

// IDs returns the assigned album IDs in sorted order.
func (t Table) IDs() []catalog.AlbumID {
	ids := make([]catalog.AlbumID, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Values returns the assigned bindings in sorted order.
func (t Table) Values() []string {
	values := make([]string, 0, len(t))
	for _, b := range t {
		values = append(values, b)
	}
	sort.Strings(values)
	return values
}

// Clone returns an independent copy of the table.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for id, b := range t {
		out[id] = b
	}
	return out
}

// Validate checks the table's correctness contract: every binding is
// non-empty lowercase alphanumeric, bindings are pairwise distinct, and no
// binding is a prefix of another.
func (t Table) Validate() error {
	values := t.Values()

	for _, v := range values {
		if !isLowerAlnum(v) {
			return fmt.Errorf("binding %q: must match [a-z0-9]+", v)
		}
	}

	// Sorted order puts any prefix immediately before its extensions, and
	// duplicates adjacent, so one pass over neighbors covers both checks.
	for i := 1; i < len(values); i++ {
		if values[i] == values[i-1] {
			return fmt.Errorf("binding %q: assigned twice", values[i])
		}
		if strings.HasPrefix(values[i], values[i-1]) {
			return fmt.Errorf("binding %q is a prefix of %q", values[i-1], values[i])
		}
	}

	return nil
}

func isLowerAlnum(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
