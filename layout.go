// layout.go re-exports geometry and dimension types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package grid

import "github.com/grindlemire/go-grid/internal/layout"

// Rect represents a rectangle with position and dimensions. It is used both
// for drawing regions (surface cells) and widget spans (grid cells).
type Rect = layout.Rect

// Point represents an x/y coordinate.
type Point = layout.Point

// Dimension is one column or row: a minimum size and a weight for sharing
// the remaining space.
type Dimension = layout.Dimension

// MaxCells is the largest accepted size, weight or coordinate magnitude.
const MaxCells = layout.MaxCells

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// NewDimension creates a Dimension, clamping both values to [0, MaxCells].
func NewDimension(minSize, weight int) Dimension {
	return layout.NewDimension(minSize, weight)
}

// Fixed returns a Dimension that never grows beyond size.
func Fixed(size int) Dimension {
	return layout.NewDimension(size, 0)
}

// Weighted returns a Dimension with no minimum that takes weight shares of
// the remaining space.
func Weighted(weight int) Dimension {
	return layout.NewDimension(0, weight)
}

// Repeat returns n copies of d.
func Repeat(n int, d Dimension) []Dimension {
	out := make([]Dimension, max(n, 0))
	for i := range out {
		out[i] = d
	}
	return out
}
