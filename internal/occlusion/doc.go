// Package occlusion tracks which grid intersection points are hidden by
// widgets spanning several grid cells.
//
// Points are addressed by (column boundary, row boundary). A point is
// occluded when it lies strictly inside a widget span; points on the span's
// own outline stay visible so the grid lines around the widget are drawn.
package occlusion
