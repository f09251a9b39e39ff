// Package grid lays out character-cell user interfaces on a weighted grid
// and draws the box-drawing lines between its cells.
//
// Columns and rows are [Dimension] values: a minimum size plus a weight.
// Every column and row reserves one cell for its leading grid line and its
// minimum size; the space left in the drawing region is shared out by weight.
// Widgets claim rectangular spans of grid cells; grid lines that would cross
// a widget's interior are left out so the widget reads as one area.
//
//	g := grid.New(
//		grid.WithColumns(grid.NewDimension(0, 3), grid.NewDimension(2, 1)),
//		grid.WithRows(grid.Repeat(4, grid.Weighted(1))...),
//	)
//	g.AddWidget(grid.NewRect(0, 1, 2, 2))
//	buf := grid.NewBuffer(20, 10)
//	g.Render(buf.Rect(), buf)
//
// Layout results are cached between calls with the same region and
// configuration, see [Grid.Layout]. Drawing goes through the [Surface]
// interface; [Buffer] is an in-memory implementation and [ScreenSurface]
// adapts a tcell screen. Widget contents are the caller's business: use
// [Layout.SpanRect] to find where a widget should draw.
package grid
