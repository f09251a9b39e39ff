package grid

import "github.com/gdamore/tcell/v2"

// ScreenSurface draws onto a tcell screen with a fixed style.
type ScreenSurface struct {
	Screen tcell.Screen
	Style  tcell.Style
}

// Ensure ScreenSurface implements Surface.
var _ Surface = ScreenSurface{}

// NewScreenSurface wraps screen using the default style.
func NewScreenSurface(screen tcell.Screen) ScreenSurface {
	return ScreenSurface{Screen: screen, Style: tcell.StyleDefault}
}

// SetRune sets the content of one screen cell.
func (s ScreenSurface) SetRune(x, y int, r rune) {
	s.Screen.SetContent(x, y, r, nil, s.Style)
}

// Region returns the whole screen as a drawing region.
func (s ScreenSurface) Region() Rect {
	w, h := s.Screen.Size()
	return NewRect(0, 0, w, h)
}
