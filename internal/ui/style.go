package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

var (
	styleDefault = tcell.StyleDefault
	styleHeader  = tcell.StyleDefault.Bold(true)
	styleBinding = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleTyped   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleDim     = tcell.StyleDefault.Dim(true)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Heat endpoints for asset-count tinting: sparse albums render cool,
// crowded ones warm.
var (
	heatCold = colorful.Color{R: 0.45, G: 0.62, B: 0.81}
	heatHot  = colorful.Color{R: 0.86, G: 0.32, B: 0.25}
)

// heatStyle tints a row by how full the album is relative to the largest
// album in the snapshot.
func heatStyle(count, max int) tcell.Style {
	if max <= 0 {
		return styleDefault
	}
	t := float64(count) / float64(max)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	c := heatCold.BlendHcl(heatHot, t).Clamped()
	r, g, b := c.RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

// truncate shortens s to at most width terminal cells, ending with an
// ellipsis when anything was cut. Width is measured per grapheme cluster,
// not per byte, so names with wide or combining characters stay aligned.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}

	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > width-1 {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	b.WriteString("…")
	return b.String()
}
