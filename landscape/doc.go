// Package landscape models a rectangular raster of cells as an implicit graph.
//
// What:
//
//   - Grid is an arena of Rows×Columns cells addressed by 0-based Location.
//   - Each cell is either active (eligible for disturbance) or inactive
//     (water, non-forest, outside the study area). The mask is fixed once built.
//   - Adjacency is never stored: NeighborOf applies a relative Offset on demand
//     and reports ok=false for out-of-bounds or inactive targets.
//   - Distance returns the Euclidean distance between two cells scaled by the
//     physical CellLength.
//
// Complexity:
//
//   - New / FromMask:   O(R×C) time and memory.
//   - CellAt, NeighborOf, Index, LocationOf, Distance: O(1).
//   - ActiveLocations:  O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid:      rows or columns is zero.
//   - ErrNonRectangular: mask rows have differing lengths.
//   - ErrBadCellLength:  cell length is not a positive finite number.
package landscape
