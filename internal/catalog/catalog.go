// Package catalog defines the album catalog boundary.
//
// The engine never talks to a photo server itself. A Source supplies album
// snapshots; everything downstream treats a snapshot as immutable and
// recomputes derived state (the keybinding table) wholesale when a new
// snapshot arrives.
package catalog

import (
	"context"
	"sort"
)

// AlbumID uniquely identifies an album within the catalog.
type AlbumID string

// Album is one album as reported by the catalog.
type Album struct {
	// ID is the stable identifier; names may change between snapshots.
	ID AlbumID

	// Name is the display name at snapshot time.
	Name string

	// AssetCount is the number of assets in the album. Carried through
	// for display; the keybinding engine does not order by it.
	AssetCount int
}

// Source supplies album snapshots.
type Source interface {
	// Albums returns the current album set. The returned slice is owned
	// by the caller.
	Albums(ctx context.Context) ([]Album, error)
}

// SortByID returns a copy of albums ordered by ID. Processing albums in
// ID order keeps every downstream computation deterministic.
func SortByID(albums []Album) []Album {
	out := make([]Album, len(albums))
	copy(out, albums)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}
