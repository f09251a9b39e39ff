package grid

import "strings"

// Buffer is an in-memory 2D grid of cells implementing Surface.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// Ensure Buffer implements Surface.
var _ Surface = (*Buffer)(nil)

// NewBuffer creates a grid of the specified dimensions filled with spaces.
func NewBuffer(width, height int) *Buffer {
	width = max(width, 0)
	height = max(height, 0)

	cells := make([]Cell, width*height)
	blank := NewCell(' ')
	for i := range cells {
		cells[i] = blank
	}

	return &Buffer{
		cells:  cells,
		width:  width,
		height: height,
	}
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at position (x, y).
// Returns an empty Cell if the position is out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.cells[i]
}

// SetCell sets the cell at position (x, y).
// Does nothing if the position is out of bounds.
func (b *Buffer) SetCell(x, y int, c Cell) {
	i := b.idx(x, y)
	if i < 0 {
		return
	}
	b.cells[i] = c
}

// SetRune sets a rune at position (x, y).
// Handles wide characters by setting continuation cells and clears any wide
// character it overlaps.
func (b *Buffer) SetRune(x, y int, r rune) {
	if b.idx(x, y) < 0 {
		return
	}

	width := RuneWidth(r)
	current := b.Cell(x, y)

	if current.IsContinuation() {
		b.clearWideCharAt(x, y)
	}
	if current.Width == 2 && x+1 < b.width {
		b.SetCell(x+1, y, NewCell(' '))
	}

	if width == 2 {
		if x+1 >= b.width {
			// A wide char at the last column can't fit.
			b.SetCell(x, y, NewCell(' '))
			return
		}
		if next := b.Cell(x+1, y); next.Width == 2 || next.IsContinuation() {
			b.clearWideCharAt(x+1, y)
		}
	}

	b.SetCell(x, y, Cell{Rune: r, Width: uint8(width)})
	if width == 2 {
		b.SetCell(x+1, y, Cell{})
	}
}

// clearWideCharAt clears the wide character that includes position (x, y).
func (b *Buffer) clearWideCharAt(x, y int) {
	cell := b.Cell(x, y)
	blank := NewCell(' ')

	if cell.IsContinuation() {
		if x > 0 {
			b.SetCell(x-1, y, blank)
		}
		b.SetCell(x, y, blank)
	} else if cell.Width == 2 {
		b.SetCell(x, y, blank)
		if x+1 < b.width {
			b.SetCell(x+1, y, blank)
		}
	}
}

// SetString writes s starting at (x, y), truncated to maxWidth display cells
// and to the buffer edge. Returns the display width written.
func (b *Buffer) SetString(x, y int, s string, maxWidth int) int {
	if y < 0 || y >= b.height || maxWidth <= 0 {
		return 0
	}
	s = narrow.Truncate(s, maxWidth, "")

	curX := x
	for _, r := range s {
		width := RuneWidth(r)
		if curX+width > b.width {
			break
		}
		if curX >= 0 {
			b.SetRune(curX, y, r)
		}
		curX += width
	}
	return curX - x
}

// Clear resets every cell to a space.
func (b *Buffer) Clear() {
	blank := NewCell(' ')
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// String renders the buffer to a string, one line per row.
// Continuation cells (from wide characters) are skipped.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		b.writeRow(&sb, y)
		if y < b.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// StringTrimmed returns the buffer content with trailing spaces removed from each line.
func (b *Buffer) StringTrimmed() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		var line strings.Builder
		b.writeRow(&line, y)
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < b.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

func (b *Buffer) writeRow(sb *strings.Builder, y int) {
	for x := 0; x < b.width; x++ {
		cell := b.cells[y*b.width+x]
		if cell.IsContinuation() {
			continue
		}
		if cell.Rune == 0 {
			sb.WriteRune(' ')
		} else {
			sb.WriteRune(cell.Rune)
		}
	}
}

// Resize changes the buffer dimensions, preserving content where possible.
// Content in the overlapping region is preserved; new areas are cleared.
func (b *Buffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	if width == b.width && height == b.height {
		return
	}

	next := NewBuffer(width, height)
	copyWidth := min(width, b.width)
	copyHeight := min(height, b.height)
	for y := 0; y < copyHeight; y++ {
		copy(next.cells[y*width:y*width+copyWidth], b.cells[y*b.width:y*b.width+copyWidth])
	}

	*b = *next
}
