package layout

// MaxCells is the largest magnitude accepted for sizes, weights and
// coordinates. Inputs beyond it are clamped on entry so that intermediate
// weight arithmetic stays far inside int64.
const MaxCells = 1<<16 - 1

// Dimension describes one column or row: the minimum number of content cells
// it always receives, and its share of any remaining space.
type Dimension struct {
	Min    int
	Weight int
}

// NewDimension returns a Dimension with minSize and weight clamped to [0, MaxCells].
func NewDimension(minSize, weight int) Dimension {
	return Dimension{Min: Clamp(minSize), Weight: Clamp(weight)}
}

// Normalize returns d with both fields clamped to [0, MaxCells].
func (d Dimension) Normalize() Dimension {
	return NewDimension(d.Min, d.Weight)
}

// Reserved returns the cells a dimension takes before any weighted space is
// handed out: its leading border line plus its minimum size.
func (d Dimension) Reserved() int {
	return 1 + d.Min
}

// Clamp limits n to [0, MaxCells].
func Clamp(n int) int {
	switch {
	case n < 0:
		return 0
	case n > MaxCells:
		return MaxCells
	default:
		return n
	}
}
