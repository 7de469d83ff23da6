package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// JSONSource reads albums from a JSON export of the photo server.
//
// Two layouts are accepted: a bare array of album objects, or an object with
// an "albums" array. Each album object carries "id", "name" (or "albumName"),
// and "assetCount".
type JSONSource struct {
	path string
}

// NewJSONSource creates a source reading from the given file path.
func NewJSONSource(path string) *JSONSource {
	return &JSONSource{path: path}
}

// Albums implements Source.
func (s *JSONSource) Albums(ctx context.Context) ([]Album, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading album export %s: %w", s.path, err)
	}

	return ParseExport(data)
}

// ParseExport parses an album export document.
func ParseExport(data []byte) ([]Album, error) {
	root := gjson.ParseBytes(data)
	if root.IsObject() {
		root = root.Get("albums")
	}
	if !root.IsArray() {
		return nil, fmt.Errorf("album export: expected an array or an object with an %q array", "albums")
	}

	var albums []Album
	var parseErr error

	root.ForEach(func(_, entry gjson.Result) bool {
		id := entry.Get("id").String()
		if id == "" {
			parseErr = fmt.Errorf("album export: entry missing %q", "id")
			return false
		}

		name := entry.Get("name")
		if !name.Exists() {
			name = entry.Get("albumName")
		}

		albums = append(albums, Album{
			ID:         AlbumID(id),
			Name:       name.String(),
			AssetCount: int(entry.Get("assetCount").Int()),
		})
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}
	return albums, nil
}
