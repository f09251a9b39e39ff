package grid

import "github.com/mattn/go-runewidth"

// Cell represents a single character cell of a Buffer.
// Wide characters (CJK, emoji) occupy two cells; the first cell holds
// the rune, the second is marked as a continuation.
type Cell struct {
	Rune  rune  // The character (0 for continuation cells)
	Width uint8 // Display width (1 or 2; 0 for continuation)
}

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune) Cell {
	return Cell{Rune: r, Width: uint8(RuneWidth(r))}
}

// IsContinuation returns true if this cell is a continuation of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// IsEmpty returns true if this cell is blank.
func (c Cell) IsEmpty() bool {
	return c.Rune == 0 || c.Rune == ' '
}

// narrow measures runes as a non East Asian terminal does, so ambiguous
// box-drawing characters always take one cell regardless of locale.
var narrow = &runewidth.Condition{StrictEmojiNeutral: true}

// RuneWidth returns the display width of a rune in terminal cells, 1 or 2.
// Zero-width and control runes still take one cell.
func RuneWidth(r rune) int {
	w := narrow.RuneWidth(r)
	switch {
	case w < 1:
		return 1
	case w > 2:
		return 2
	default:
		return w
	}
}
