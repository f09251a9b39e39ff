package occlusion

import "github.com/grindlemire/go-grid/internal/layout"

// Map is a dense grid of intersection points, visible unless occluded.
type Map struct {
	cols     int
	rows     int
	occluded []bool
}

// New creates a Map with cols x rows intersection points, all visible.
// Negative sizes are treated as zero.
func New(cols, rows int) *Map {
	cols = max(cols, 0)
	rows = max(rows, 0)
	return &Map{
		cols:     cols,
		rows:     rows,
		occluded: make([]bool, cols*rows),
	}
}

// Build creates a Map for the given point counts with every span occluded.
func Build(cols, rows int, spans []layout.Rect) *Map {
	m := New(cols, rows)
	for _, s := range spans {
		m.Occlude(s)
	}
	return m
}

// Cols returns the number of intersection points along x.
func (m *Map) Cols() int {
	return m.cols
}

// Rows returns the number of intersection points along y.
func (m *Map) Rows() int {
	return m.rows
}

// idx converts (col, row) to a flat index.
// Returns -1 if out of bounds.
func (m *Map) idx(col, row int) int {
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return -1
	}
	return row*m.cols + col
}

// Visible reports whether the point exists and is not occluded.
func (m *Map) Visible(col, row int) bool {
	i := m.idx(col, row)
	return i >= 0 && !m.occluded[i]
}

// Cells returns the grid area in cells. There is one cell fewer than points
// along each axis.
func (m *Map) Cells() layout.Rect {
	return layout.NewRect(0, 0, max(m.cols-1, 0), max(m.rows-1, 0))
}

// Occlude hides every point strictly inside span, given in grid cells.
// The span is clipped to the grid first; spans one cell wide or tall have
// no interior points and change nothing. Reports whether any point was
// inside the clipped span.
func (m *Map) Occlude(span layout.Rect) bool {
	span = span.Intersect(m.Cells())
	if span.Width <= 1 || span.Height <= 1 {
		return false
	}
	for row := span.Y + 1; row < span.Bottom(); row++ {
		for col := span.X + 1; col < span.Right(); col++ {
			m.occluded[row*m.cols+col] = true
		}
	}
	return true
}

// Occluded returns the number of hidden points.
func (m *Map) Occluded() int {
	n := 0
	for _, o := range m.occluded {
		if o {
			n++
		}
	}
	return n
}
