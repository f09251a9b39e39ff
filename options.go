package grid

import "github.com/go-logr/logr"

// Option configures a Grid.
type Option func(*Grid)

// WithColumns sets the column dimensions, left to right.
func WithColumns(dims ...Dimension) Option {
	return func(g *Grid) {
		g.SetColumns(dims...)
	}
}

// WithRows sets the row dimensions, top to bottom.
func WithRows(dims ...Dimension) Option {
	return func(g *Grid) {
		g.SetRows(dims...)
	}
}

// WithWidgets registers widget spans in grid cells.
func WithWidgets(spans ...Rect) Option {
	return func(g *Grid) {
		for _, s := range spans {
			g.AddWidget(s)
		}
	}
}

// WithBorder selects the glyph set. The default is BorderSingle.
func WithBorder(border BorderStyle) Option {
	return func(g *Grid) {
		g.border = border
	}
}

// WithLogger sets the logger used to report layout recomputation at V(1).
func WithLogger(logger logr.Logger) Option {
	return func(g *Grid) {
		g.logger = logger
	}
}
