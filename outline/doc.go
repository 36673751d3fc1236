// Package outline vectorizes the borders of a labeled spherical raster:
// it turns per-cell region labels into closed polygon loops tracing each
// region's boundary.
//
// What:
//
//   - Trace runs the four-stage pipeline over a skymap.Raster:
//     1. Vertex deduplication — bit-identical cell corners collapse into
//     a stable, indexed vertex table (VertexSet); no tolerance here.
//     2. Boundary-edge extraction — every cell side is paired with its
//     twin in the neighboring cell; sides separating differing labels
//     are kept, grouped under each region they touch.
//     3. Line assembly — a greedy walk chains one region's edges into
//     maximal open polylines, each edge consumed exactly once.
//     4. Loop closure — a two-phase fixed-point iteration (close
//     self-meeting chains, splice chain pairs at matching endpoints)
//     at escalating angular tolerances, until every chain becomes a
//     closed loop or the escalation is exhausted.
//   - CanonicalCycle gives loops a rotation- and direction-independent
//     signature for set-wise comparison.
//
// Why:
//
//   - Sky-survey reporting: draw region footprints as vector overlays on
//     projection plots instead of shading raster cells.
//   - Deduplicated output: a shared border between two regions is the
//     same vertex cycle in both regions' loop sets, traversed in
//     opposite directions.
//
// Determinism: all tie-breaks are explicit — cells ascending, sides in
// corner order, edges by ascending table index, chain pairs outer/inner
// ascending with first-match splicing — so two runs (with any Workers
// setting) produce identical loops.
//
// Complexity:
//
//   - Trace: O(N·c) shared stages + O(E²) per region
//     (N cells, c corners per cell, E boundary edges of one region).
//   - CanonicalCycle: O(n).
//
// Options:
//
//   - Options.Tolerances:    ascending degrees, 0 first; empty derives
//     DefaultTolerances(raster.Scale()).
//   - Options.MaxIterations: fixed-point bound per tolerance level.
//   - Options.Workers:       concurrent regions (output-invariant).
//   - Options.Logger:        optional slog warning sink.
//
// Errors:
//
//   - ErrNilRaster:        Trace(nil, ...).
//   - ErrBadTolerance:     negative or non-ascending tolerance sequence.
//   - ErrUnpairedSide:     a cell side with no matching neighbor side.
//   - ErrSideMultiplicity: a cell side claimed by more than two cells.
//
// A boundary that cannot fully close is NOT an error: the region's result
// reports Stabilized=false and keeps the open chains as diagnostics.
package outline
