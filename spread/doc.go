// Package spread grows the outbreak zone from a list of epicenters over the
// implicit grid graph of a landscape.
//
// What
//
//   - FixedRadius: each epicenter stamps NewZone onto every active cell its
//     dispersal kernel reaches in a single hop. No traversal.
//   - Percolation: breadth-first flood fill per epicenter. A dequeued cell is
//     claimed as NewZone; each active kernel neighbour that is neither claimed
//     nor pending is enqueued when its distance to the fill's epicenter (not
//     to the dequeued cell) is ≤ DispersalRate × timestepLength. A fill
//     whose epicenter is already NewZone claims and expands nothing.
//   - Epicenters are processed in input order and share one zone.Map: a cell
//     claimed by an earlier epicenter is never re-expanded by a later one, so
//     the first claim wins and a repeated call with the same input changes
//     nothing.
//
// Every epicenter is checked before the zone map is touched; a single
// inactive or out-of-bounds epicenter fails the whole call without mutation.
// An empty epicenter list is a no-op.
//
// Complexity (K = kernel size, Z = cells claimed)
//
//   - FixedRadius: O(E×K) for E epicenters.
//   - Percolation: O(Z×K) time; O(R×C) for the per-call pending stamps.
//
// Options
//
//   - WithContext(ctx): cancellation, checked once per dequeue.
//   - WithOnClaim(fn):  called for every newly claimed cell with the index
//     of the epicenter whose fill claimed it.
//
// Errors
//
//   - ErrAgentNil, ErrGridNil, ErrZonesNil for nil inputs.
//   - ErrShapeMismatch if the zone map and grid differ in size.
//   - ErrTimestepLength for timestepLength < 1.
//   - ErrEpicenterInactive wrapping the first bad epicenter.
//   - agent.ErrUnknownTemplate for a template with no handler.
//   - ErrOptionViolation for invalid options; ctx.Err() on cancellation.
package spread
