package main

import (
	"github.com/mattn/go-runewidth"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/internal/config"
)

// ellipsis counts as one cell regardless of locale.
var narrow = &runewidth.Condition{StrictEmojiNeutral: true}

// drawLabels writes each widget's label at the top-left of its content area,
// truncated to fit.
func drawLabels(s grid.Surface, l *grid.Layout, widgets []config.Widget) {
	for _, w := range widgets {
		if w.Label == "" {
			continue
		}
		area := l.SpanRect(w.Span()).Intersect(l.Region)
		if area.IsEmpty() {
			continue
		}
		x := area.X
		for _, r := range narrow.Truncate(w.Label, area.Width, "…") {
			s.SetRune(x, area.Y, r)
			x += grid.RuneWidth(r)
		}
	}
}
