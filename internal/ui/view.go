package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/photokeys/internal/app"
	"github.com/dshills/photokeys/internal/catalog"
)

// bindingColumn is the width reserved for the keybinding column.
const bindingColumn = 12

func (u *UI) render() {
	u.screen.Clear()
	width, height := u.screen.Size()

	u.drawHeader(width)
	u.drawRows(width, height)
	u.drawStatus(width, height)

	u.screen.Show()
}

func (u *UI) drawHeader(width int) {
	title := "PhotoKeys"
	switch u.app.Mode() {
	case app.ModeKeybind:
		title += " — keybinding"
	case app.ModeSearch:
		title += " — search"
	}
	u.drawText(0, 0, styleHeader, truncate(title, width))
}

// drawRows renders the album list. In search mode the rows follow result
// order; otherwise snapshot (ID) order.
func (u *UI) drawRows(width, height int) {
	albums := u.visibleAlbums()
	table := u.app.Table()

	maxAssets := 0
	for _, a := range albums {
		if a.AssetCount > maxAssets {
			maxAssets = a.AssetCount
		}
	}

	// Rows fill between the header and the two status lines.
	maxRows := height - 3
	if maxRows < 0 {
		maxRows = 0
	}
	if len(albums) > maxRows {
		albums = albums[:maxRows]
	}

	for i, album := range albums {
		y := i + 1

		binding, bound := table.Binding(album.ID)
		if bound {
			u.drawText(1, y, styleBinding, truncate(binding, bindingColumn-1))
		} else {
			u.drawText(1, y, styleDim, "—")
		}

		rowStyle := styleDefault
		if u.cfg.HeatColors {
			rowStyle = heatStyle(album.AssetCount, maxAssets)
		}
		name := truncate(album.Name, width-bindingColumn-9)
		u.drawText(bindingColumn, y, rowStyle, name)

		count := fmt.Sprintf("%6d", album.AssetCount)
		u.drawText(width-8, y, styleDim, count)
	}
}

func (u *UI) visibleAlbums() []catalog.Album {
	if u.app.Mode() != app.ModeSearch {
		return u.app.Albums()
	}
	results := u.app.SearchResults(0)
	albums := make([]catalog.Album, len(results))
	for i, r := range results {
		albums[i] = r.Album
	}
	return albums
}

func (u *UI) drawStatus(width, height int) {
	if height < 2 {
		return
	}
	promptY := height - 2
	helpY := height - 1

	switch u.app.Mode() {
	case app.ModeKeybind:
		prompt := "keys: " + u.app.Partial()
		u.drawText(0, promptY, styleTyped, truncate(prompt, width))
		if u.cfg.ShowHints {
			if next := u.app.NextAvailable(); len(next) > 0 {
				hint := "next:"
				for _, c := range next {
					hint += " " + string(c)
				}
				u.drawText(len(prompt)+2, promptY, styleDim, truncate(hint, width-len(prompt)-2))
			}
		}

	case app.ModeSearch:
		u.drawText(0, promptY, styleTyped, truncate("/"+u.app.SearchQuery(), width))
	}

	// A pending status message takes over the help line until the next
	// keystroke clears it.
	if u.status != "" {
		u.drawText(0, helpY, u.statusStyle, truncate(u.status, width))
		return
	}
	u.drawText(0, helpY, styleDim, truncate("type a binding · / search · esc cancel · q quit", width))
}

// drawText writes s starting at (x, y), clipping at the screen edge.
func (u *UI) drawText(x, y int, style tcell.Style, s string) {
	width, height := u.screen.Size()
	if y < 0 || y >= height {
		return
	}
	for _, r := range s {
		if x >= width {
			return
		}
		u.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
