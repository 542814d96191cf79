// Package zone holds the per-cell outbreak classification for one timestep.
//
// A Map is the explicit mutable table that the spread engine writes into and
// that downstream mortality/severity collaborators read afterwards. It is
// owned by the caller and passed by reference; there is no package-level
// state.
//
// Lifecycle of a cell's Zone across timesteps:
//
//	None ──spread──▶ NewZone ──Advance──▶ LastZone ──Advance──▶ None
//
// Patches groups NewZone cells into 4- or 8-connected components with a
// breadth-first scan, for reporting outbreak fragmentation.
//
// Complexity:
//
//   - Get, Set:          O(1).
//   - Count, Advance:    O(R×C).
//   - Patches:           O(R×C×d), d = 4 or 8.
package zone
