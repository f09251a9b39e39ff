package grid

import "github.com/grindlemire/go-grid/internal/occlusion"

// Layout is the computed geometry of a Grid over one drawing region.
type Layout struct {
	// Region is the drawing region the layout was computed for.
	Region Rect

	// Columns holds the x coordinate of every vertical grid line, including
	// the outer borders. It has one entry more than there are columns.
	Columns []int

	// Rows holds the y coordinate of every horizontal grid line.
	Rows []int

	points *occlusion.Map
}

// Visible reports whether the intersection of vertical line col and
// horizontal line row exists and is not hidden by a widget.
func (l *Layout) Visible(col, row int) bool {
	return l.points.Visible(col, row)
}

// Occluded returns the number of intersections hidden by widgets.
func (l *Layout) Occluded() int {
	return l.points.Occluded()
}

// Point returns the absolute coordinate of an intersection. The indices are
// not range checked.
func (l *Layout) Point(col, row int) Point {
	return Point{X: l.Columns[col], Y: l.Rows[row]}
}

// Junction returns which neighbouring intersections of (col, row) are
// visible, and hence which line segments meet there.
func (l *Layout) Junction(col, row int) Junction {
	var j Junction
	if l.Visible(col, row-1) {
		j |= JunctionUp
	}
	if l.Visible(col, row+1) {
		j |= JunctionDown
	}
	if l.Visible(col-1, row) {
		j |= JunctionLeft
	}
	if l.Visible(col+1, row) {
		j |= JunctionRight
	}
	return j
}

// SpanRect returns the area between the grid lines enclosing span, given in
// grid cells, where a widget draws its content. The span is clipped to the
// grid; an empty Rect is returned when nothing remains.
func (l *Layout) SpanRect(span Rect) Rect {
	span = span.Intersect(l.points.Cells())
	if span.IsEmpty() {
		return Rect{}
	}
	x := l.Columns[span.X] + 1
	y := l.Rows[span.Y] + 1
	return Rect{
		X:      x,
		Y:      y,
		Width:  l.Columns[span.Right()] - x,
		Height: l.Rows[span.Bottom()] - y,
	}
}

// CellRect returns the content area of a single grid cell.
func (l *Layout) CellRect(col, row int) Rect {
	return l.SpanRect(NewRect(col, row, 1, 1))
}
