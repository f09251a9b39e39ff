package main

import (
	"os"

	"golang.org/x/term"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// defaultSize fills in unset dimensions from the terminal on stdout, or the
// classic 80x24 when stdout is not a terminal.
func defaultSize(width, height int) (int, int) {
	if width > 0 && height > 0 {
		return width, height
	}
	tw, th := fallbackWidth, fallbackHeight
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
			tw, th = w, h
		}
	}
	if width <= 0 {
		width = tw
	}
	if height <= 0 {
		height = th
	}
	return width, height
}
