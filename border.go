package grid

import (
	"fmt"
	"strings"
)

// BorderStyle represents different styles of grid lines.
type BorderStyle int

const (
	// BorderNone draws no grid lines at all.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┼, etc.)
	BorderSingle
	// BorderDouble uses double-line box-drawing characters (═, ║, ╬, etc.)
	BorderDouble
	// BorderRounded uses single lines with rounded corners (╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses thick/heavy box-drawing characters (━, ┃, ╋, etc.)
	BorderThick
)

var borderNames = map[BorderStyle]string{
	BorderNone:    "none",
	BorderSingle:  "single",
	BorderDouble:  "double",
	BorderRounded: "rounded",
	BorderThick:   "thick",
}

// String returns the lowercase name of the style.
func (b BorderStyle) String() string {
	if name, ok := borderNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// ParseBorderStyle returns the style with the given name. The empty string
// selects BorderSingle.
func ParseBorderStyle(name string) (BorderStyle, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return BorderSingle, nil
	}
	for style, n := range borderNames {
		if n == name {
			return style, nil
		}
	}
	return BorderNone, fmt.Errorf("unknown border style %q (expected none, single, double, rounded, or thick)", name)
}

// Junction records which of a grid point's four neighbours it connects to.
type Junction uint8

const (
	JunctionUp Junction = 1 << iota
	JunctionDown
	JunctionLeft
	JunctionRight

	// JunctionNone is an isolated point.
	JunctionNone Junction = 0
	// JunctionAll is a full cross.
	JunctionAll = JunctionUp | JunctionDown | JunctionLeft | JunctionRight
)

// junctionTable is indexed by Junction.
type junctionTable [16]rune

var (
	singleJunctions = junctionTable{
		' ', '╵', '╷', '│',
		'╴', '┘', '┐', '┤',
		'╶', '└', '┌', '├',
		'─', '┴', '┬', '┼',
	}
	roundedJunctions = junctionTable{
		' ', '╵', '╷', '│',
		'╴', '╯', '╮', '┤',
		'╶', '╰', '╭', '├',
		'─', '┴', '┬', '┼',
	}
	// The double set has no half lines, so end caps use full segments.
	doubleJunctions = junctionTable{
		' ', '║', '║', '║',
		'═', '╝', '╗', '╣',
		'═', '╚', '╔', '╠',
		'═', '╩', '╦', '╬',
	}
	thickJunctions = junctionTable{
		' ', '╹', '╻', '┃',
		'╸', '┛', '┓', '┫',
		'╺', '┗', '┏', '┣',
		'━', '┻', '┳', '╋',
	}
)

// Glyph returns the character drawn at a grid point with the given
// connections. BorderNone and unknown styles return a space.
func (b BorderStyle) Glyph(j Junction) rune {
	j &= JunctionAll
	switch b {
	case BorderSingle:
		return singleJunctions[j]
	case BorderRounded:
		return roundedJunctions[j]
	case BorderDouble:
		return doubleJunctions[j]
	case BorderThick:
		return thickJunctions[j]
	default:
		return ' '
	}
}

// Horizontal returns the character for a horizontal line segment.
func (b BorderStyle) Horizontal() rune {
	return b.Glyph(JunctionLeft | JunctionRight)
}

// Vertical returns the character for a vertical line segment.
func (b BorderStyle) Vertical() rune {
	return b.Glyph(JunctionUp | JunctionDown)
}
