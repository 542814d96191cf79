// Package signals exposes the per-cell values the epicenter selector reads.
//
// The values themselves are produced by ecological sub-models outside this
// module (site vulnerability, BDA severity, disturbance history). Provider is
// the read-only contract; Layers is a dense, slice-backed implementation that
// callers fill directly or load through csvio.
package signals
