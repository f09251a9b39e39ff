package grid

import (
	"github.com/go-logr/logr"

	"github.com/grindlemire/go-grid/internal/layout"
	"github.com/grindlemire/go-grid/internal/occlusion"
)

// Grid lays out weighted columns and rows over a drawing region and draws
// the lines between them, leaving out lines that pass beneath widgets
// spanning several cells.
//
// Configuration changes mark the grid dirty. Layout recomputes boundaries and
// occlusion only when the grid is dirty or the region differs from the last
// one; Render always redraws from that result.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	columns []Dimension
	rows    []Dimension
	widgets []Rect
	border  BorderStyle
	logger  logr.Logger

	dirty    bool
	cache    *Layout
	computes int
}

// New creates a Grid with single-line borders and applies opts.
func New(opts ...Option) *Grid {
	g := &Grid{
		border: BorderSingle,
		logger: logr.Discard(),
		dirty:  true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetColumns replaces the column dimensions, left to right.
func (g *Grid) SetColumns(dims ...Dimension) {
	g.columns = normalize(dims)
	g.dirty = true
}

// SetRows replaces the row dimensions, top to bottom.
func (g *Grid) SetRows(dims ...Dimension) {
	g.rows = normalize(dims)
	g.dirty = true
}

// AddWidget registers a widget covering span, given in grid cells. Spans may
// overlap and may extend past the grid; they are clipped when laid out.
func (g *Grid) AddWidget(span Rect) {
	g.widgets = append(g.widgets, span)
	g.dirty = true
}

// ClearWidgets removes every registered widget span.
func (g *Grid) ClearWidgets() {
	if len(g.widgets) == 0 {
		return
	}
	g.widgets = nil
	g.dirty = true
}

// SetBorder selects the glyph set used by Render. It does not affect layout.
func (g *Grid) SetBorder(border BorderStyle) {
	g.border = border
}

// SetLogger replaces the logger used to report recomputation.
func (g *Grid) SetLogger(logger logr.Logger) {
	g.logger = logger
}

// Columns returns a copy of the column dimensions.
func (g *Grid) Columns() []Dimension {
	return append([]Dimension(nil), g.columns...)
}

// Rows returns a copy of the row dimensions.
func (g *Grid) Rows() []Dimension {
	return append([]Dimension(nil), g.rows...)
}

// Widgets returns a copy of the registered widget spans.
func (g *Grid) Widgets() []Rect {
	return append([]Rect(nil), g.widgets...)
}

// Border returns the glyph set used by Render.
func (g *Grid) Border() BorderStyle {
	return g.border
}

// Dirty reports whether the next Layout call recomputes regardless of region.
func (g *Grid) Dirty() bool {
	return g.dirty
}

// Invalidate forces the next Layout call to recompute.
func (g *Grid) Invalidate() {
	g.dirty = true
}

// Layout returns the layout of the grid over region, recomputing it only if
// the configuration changed or region differs from the previous call.
// The returned Layout is shared with the grid and must not be modified.
func (g *Grid) Layout(region Rect) *Layout {
	if !g.dirty && g.cache != nil && g.cache.Region == region {
		return g.cache
	}

	cols := layout.Boundaries(g.columns, region.X, region.Width)
	rows := layout.Boundaries(g.rows, region.Y, region.Height)
	points := occlusion.Build(len(cols), len(rows), g.widgets)

	g.cache = &Layout{
		Region:  region,
		Columns: cols,
		Rows:    rows,
		points:  points,
	}
	g.dirty = false
	g.computes++

	if log := g.logger.V(1); log.Enabled() {
		log.Info("recomputed grid layout",
			"region", region,
			"columns", cols,
			"rows", rows,
			"widgets", len(g.widgets),
			"occluded", points.Occluded())
	}
	return g.cache
}

// Render draws the grid lines and junctions over region onto s. Cells
// outside region and cells inside widgets are never written.
func (g *Grid) Render(region Rect, s Surface) {
	l := g.Layout(region)
	if g.border == BorderNone {
		return
	}
	clipped := clipSurface{s: s, clip: region}
	drawLines(l, clipped, g.border)
	drawJunctions(l, clipped, g.border)
}

func normalize(dims []Dimension) []Dimension {
	out := make([]Dimension, len(dims))
	for i, d := range dims {
		out[i] = d.Normalize()
	}
	return out
}
