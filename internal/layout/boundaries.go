package layout

import "fmt"

// Taken returns the cells dims need before any weighted space is handed
// out: a leading border and the minimum size for each dimension, plus the
// trailing border.
func Taken(dims []Dimension) int {
	taken := 1
	for _, d := range dims {
		taken += d.Normalize().Reserved()
	}
	return taken
}

// Extra returns the weighted cells each dimension receives when dims are laid
// out over length cells.
func Extra(dims []Dimension, length int) []int {
	weights := make([]int, len(dims))
	for i, d := range dims {
		weights[i] = d.Normalize().Weight
	}
	remaining := Clamp(length) - Taken(dims)
	extra := Distribute(weights, remaining)

	if remaining > 0 {
		sum := 0
		for _, e := range extra {
			if e < 0 {
				panic(fmt.Sprintf("layout: negative extra %d", e))
			}
			sum += e
		}
		if sum != remaining && sum != 0 {
			panic(fmt.Sprintf("layout: distributed %d of %d cells", sum, remaining))
		}
	}
	return extra
}

// Boundaries returns the coordinate of every grid line along one axis when
// dims are laid out over length cells starting at start.
//
// The result always has len(dims)+1 entries. The first is start; each
// dimension then advances by its border cell, its minimum and its extra
// cells. When the weights absorb all remaining space the last entry is
// start+length-1, the final cell of the span. When length is too small for
// the minimums, dimensions keep their minimums and the trailing boundary may
// lie beyond start+length; clipping is left to the renderer. With no
// dimensions the single boundary is start.
func Boundaries(dims []Dimension, start, length int) []int {
	extra := Extra(dims, length)

	out := make([]int, len(dims)+1)
	out[0] = start
	for i, d := range dims {
		out[i+1] = out[i] + d.Normalize().Reserved() + extra[i]
	}
	return out
}
