// Package layout implements the weighted space allocation behind the grid engine.
//
// Each column or row is a [Dimension]: a minimum size plus a proportional
// weight. [Boundaries] reserves one border cell and the minimum size for every
// dimension, then spreads the remaining cells across dimensions by weight
// using a largest-remainder distribution ([Distribute]). The result is the
// absolute coordinate of every grid line along one axis.
//
// Types are re-exported through the root grid package for public consumption.
package layout
