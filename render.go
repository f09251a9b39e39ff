package grid

// clipSurface drops writes outside clip.
type clipSurface struct {
	s    Surface
	clip Rect
}

func (c clipSurface) SetRune(x, y int, r rune) {
	if c.clip.Contains(x, y) {
		c.s.SetRune(x, y, r)
	}
}

// drawLines fills the cells between every pair of adjacent visible
// intersections with a line segment.
func drawLines(l *Layout, s Surface, border BorderStyle) {
	h := border.Horizontal()
	for row, y := range l.Rows {
		for col := 0; col+1 < len(l.Columns); col++ {
			if !l.Visible(col, row) || !l.Visible(col+1, row) {
				continue
			}
			for x := l.Columns[col] + 1; x < l.Columns[col+1]; x++ {
				s.SetRune(x, y, h)
			}
		}
	}

	v := border.Vertical()
	for col, x := range l.Columns {
		for row := 0; row+1 < len(l.Rows); row++ {
			if !l.Visible(col, row) || !l.Visible(col, row+1) {
				continue
			}
			for y := l.Rows[row] + 1; y < l.Rows[row+1]; y++ {
				s.SetRune(x, y, v)
			}
		}
	}
}

// drawJunctions writes the junction glyph at every visible intersection.
func drawJunctions(l *Layout, s Surface, border BorderStyle) {
	for row, y := range l.Rows {
		for col, x := range l.Columns {
			if !l.Visible(col, row) {
				continue
			}
			s.SetRune(x, y, border.Glyph(l.Junction(col, row)))
		}
	}
}
