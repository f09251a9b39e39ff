package grid

// Surface is a character grid the engine draws onto, addressed by absolute
// cell coordinates. Writes outside the surface must be ignored.
type Surface interface {
	SetRune(x, y int, r rune)
}

// SurfaceFunc adapts a function to the Surface interface.
type SurfaceFunc func(x, y int, r rune)

// SetRune calls f(x, y, r).
func (f SurfaceFunc) SetRune(x, y int, r rune) {
	f(x, y, r)
}
